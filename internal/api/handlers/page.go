package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/pwmlab/internal/chart"
	"github.com/RMahshie/pwmlab/internal/content"
	"github.com/RMahshie/pwmlab/internal/pwm"
)

// PageHandler renders the lesson page with the demonstration at a given duty cycle
type PageHandler struct {
	tmpl      *template.Template
	lesson    *content.Lesson
	renderer  chart.Renderer
	frequency float64
}

type pageData struct {
	Lesson     *content.Lesson
	DutyCycle  int
	Frequency  float64
	MinDuty    int
	MaxDuty    int
	Brightness pwm.Brightness
	BulbStyle  template.CSS
	IconStyle  template.CSS
	Chart      template.HTML
}

// NewPageHandler creates a new page handler
func NewPageHandler(tmpl *template.Template, lesson *content.Lesson, renderer chart.Renderer, frequency float64) *PageHandler {
	return &PageHandler{
		tmpl:      tmpl,
		lesson:    lesson,
		renderer:  renderer,
		frequency: frequency,
	}
}

// ServeHTTP renders the page. An absent or invalid duty_cycle shows the default.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dutyCycle := parseDutyCycle(r.URL.Query().Get("duty_cycle"))

	brightness, err := pwm.BrightnessFor(dutyCycle)
	if err != nil {
		log.Error().Err(err).Int("dutyCycle", dutyCycle).Msg("Brightness computation failed")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	svg, err := h.renderer.Render(dutyCycle, h.frequency)
	if err != nil {
		log.Error().Err(err).Int("dutyCycle", dutyCycle).Msg("Chart rendering failed")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	data := pageData{
		Lesson:     h.lesson,
		DutyCycle:  dutyCycle,
		Frequency:  h.frequency,
		MinDuty:    pwm.MinDutyCycle,
		MaxDuty:    pwm.MaxDutyCycle,
		Brightness: brightness,
		BulbStyle:  template.CSS(brightness.BulbStyle()),
		IconStyle:  template.CSS(brightness.IconStyle()),
		Chart:      template.HTML(svg),
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		log.Error().Err(err).Msg("Page template execution failed")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func parseDutyCycle(raw string) int {
	if raw == "" {
		return pwm.DefaultDutyCycle
	}
	d, err := strconv.Atoi(raw)
	if err != nil || pwm.ValidateDutyCycle(d) != nil {
		return pwm.DefaultDutyCycle
	}
	return d
}
