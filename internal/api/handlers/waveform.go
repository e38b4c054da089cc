package handlers

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/pwmlab/internal/chart"
	"github.com/RMahshie/pwmlab/internal/pwm"
	"github.com/RMahshie/pwmlab/pkg/models"
)

const chartCacheControl = "public, max-age=86400"

// WaveformHandler handles waveform, brightness and chart requests
type WaveformHandler struct {
	renderer         chart.Renderer
	defaultFrequency float64
}

// NewWaveformHandler creates a new waveform handler
func NewWaveformHandler(renderer chart.Renderer, defaultFrequency float64) *WaveformHandler {
	return &WaveformHandler{
		renderer:         renderer,
		defaultFrequency: defaultFrequency,
	}
}

// GetWaveform returns the sampled waveform with its per-cycle figures
func (h *WaveformHandler) GetWaveform(ctx context.Context, req *models.GetWaveformRequest) (*models.GetWaveformResponse, error) {
	frequency, err := h.frequency(req.Frequency)
	if err != nil {
		return nil, invalidInput(err)
	}

	wave, err := pwm.Generate(req.DutyCycle, frequency)
	if err != nil {
		return nil, invalidInput(err)
	}
	brightness, err := pwm.BrightnessFor(req.DutyCycle)
	if err != nil {
		return nil, invalidInput(err)
	}

	log.Debug().Int("dutyCycle", req.DutyCycle).Float64("frequency", frequency).Int("high", wave.HighCount()).Msg("Generated waveform")
	return &models.GetWaveformResponse{
		Body: models.GetWaveformResponseBody{
			DutyCycle:   req.DutyCycle,
			Frequency:   frequency,
			TotalPoints: len(wave),
			CycleLength: pwm.CycleLength(frequency),
			HighPoints:  pwm.HighPoints(req.DutyCycle, frequency),
			MeanValue:   wave.Mean(),
			Samples:     wave,
			Brightness:  brightness,
		},
	}, nil
}

// GetBrightness returns the LED indicator state, derived from the duty cycle alone
func (h *WaveformHandler) GetBrightness(ctx context.Context, req *models.GetBrightnessRequest) (*models.GetBrightnessResponse, error) {
	brightness, err := pwm.BrightnessFor(req.DutyCycle)
	if err != nil {
		return nil, invalidInput(err)
	}
	return &models.GetBrightnessResponse{Body: brightness}, nil
}

// GetChart returns the waveform drawn as an SVG line chart
func (h *WaveformHandler) GetChart(ctx context.Context, req *models.GetChartRequest) (*models.GetChartResponse, error) {
	frequency, err := h.frequency(req.Frequency)
	if err != nil {
		return nil, invalidInput(err)
	}

	svg, err := h.renderer.Render(req.DutyCycle, frequency)
	if err != nil {
		return nil, invalidInput(err)
	}

	return &models.GetChartResponse{
		ContentType:  "image/svg+xml",
		CacheControl: chartCacheControl,
		Body:         svg,
	}, nil
}

// frequency resolves the query value; 0 selects the configured default.
func (h *WaveformHandler) frequency(requested float64) (float64, error) {
	switch {
	case requested == 0:
		return h.defaultFrequency, nil
	case math.IsNaN(requested) || math.IsInf(requested, 0):
		return 0, fmt.Errorf("%w: got %v", pwm.ErrInvalidFrequency, requested)
	case requested < 0 || requested > pwm.MaxFrequency:
		return 0, fmt.Errorf("%w: got %v, want at most %v", pwm.ErrInvalidFrequency, requested, pwm.MaxFrequency)
	}
	return requested, nil
}

// invalidInput maps generator argument errors to 400 and anything else to 500
func invalidInput(err error) error {
	if errors.Is(err, pwm.ErrInvalidDutyCycle) || errors.Is(err, pwm.ErrInvalidFrequency) {
		return huma.Error400BadRequest(err.Error(), err)
	}
	log.Error().Err(err).Msg("Waveform generation failed")
	return huma.Error500InternalServerError("Failed to generate waveform", err)
}
