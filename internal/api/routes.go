package api

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/RMahshie/pwmlab/internal/api/handlers"
	"github.com/RMahshie/pwmlab/internal/chart"
	"github.com/RMahshie/pwmlab/internal/content"
	"github.com/RMahshie/pwmlab/pkg/models"
)

// Version is reported by the health endpoint and the OpenAPI document.
const Version = "1.0.0"

// RegisterRoutes sets up the page, static assets and all API routes
func RegisterRoutes(router chi.Router, api huma.API, renderer chart.Renderer, lesson *content.Lesson, page *template.Template, static fs.FS, frequency float64) {
	// Initialize handlers
	waveformHandler := handlers.NewWaveformHandler(renderer, frequency)
	lessonHandler := handlers.NewLessonHandler(lesson)
	pageHandler := handlers.NewPageHandler(page, lesson, renderer, frequency)

	// Page and assets
	router.Method(http.MethodGet, "/", pageHandler)
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = Version
		resp.Body.Time = time.Now()
		return resp, nil
	})

	// Register waveform routes
	huma.Register(api, huma.Operation{
		OperationID: "getWaveform",
		Method:      http.MethodGet,
		Path:        "/api/waveform",
		Summary:     "Get PWM waveform",
		Description: "Returns the sampled square wave for a duty cycle and frequency, with the LED brightness",
		Tags:        []string{"Waveform"},
	}, waveformHandler.GetWaveform)

	huma.Register(api, huma.Operation{
		OperationID: "getBrightness",
		Method:      http.MethodGet,
		Path:        "/api/brightness",
		Summary:     "Get LED brightness",
		Description: "Returns the brightness indicator state for a duty cycle",
		Tags:        []string{"Waveform"},
	}, waveformHandler.GetBrightness)

	huma.Register(api, huma.Operation{
		OperationID: "getChart",
		Method:      http.MethodGet,
		Path:        "/api/chart",
		Summary:     "Get waveform chart",
		Description: "Returns the waveform drawn as an SVG line chart",
		Tags:        []string{"Waveform"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "SVG chart",
				Content: map[string]*huma.MediaType{
					"image/svg+xml": {},
				},
			},
		},
	}, waveformHandler.GetChart)

	// Register lesson routes
	huma.Register(api, huma.Operation{
		OperationID: "getLesson",
		Method:      http.MethodGet,
		Path:        "/api/lesson",
		Summary:     "Get lesson content",
		Description: "Returns the explanatory text, analogies, applications and comparison table",
		Tags:        []string{"Lesson"},
	}, lessonHandler.GetLesson)
}
