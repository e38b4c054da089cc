package handlers

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/pwmlab/internal/pwm"
	"github.com/RMahshie/pwmlab/pkg/models"
)

// MockRenderer implements chart.Renderer for testing
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(dutyCycle int, frequency float64) ([]byte, error) {
	args := m.Called(dutyCycle, frequency)
	svg, _ := args.Get(0).([]byte)
	return svg, args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestGetWaveform(t *testing.T) {
	tests := []struct {
		name       string
		input      models.GetWaveformRequest
		wantFreq   float64
		wantHigh   int
		wantStatus int
	}{
		{
			name:     "default frequency",
			input:    models.GetWaveformRequest{DutyCycle: 50},
			wantFreq: 5,
			wantHigh: 50,
		},
		{
			name:     "explicit frequency",
			input:    models.GetWaveformRequest{DutyCycle: 25, Frequency: 10},
			wantFreq: 10,
			wantHigh: 30,
		},
		{
			name:     "fully on",
			input:    models.GetWaveformRequest{DutyCycle: 100, Frequency: 3},
			wantFreq: 3,
			wantHigh: 100,
		},
		{
			name:       "duty cycle out of range",
			input:      models.GetWaveformRequest{DutyCycle: 101},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative frequency",
			input:      models.GetWaveformRequest{DutyCycle: 50, Frequency: -1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "frequency above sample count",
			input:      models.GetWaveformRequest{DutyCycle: 50, Frequency: 101},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "infinite frequency",
			input:      models.GetWaveformRequest{DutyCycle: 50, Frequency: math.Inf(1)},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRenderer := &MockRenderer{}
			handler := NewWaveformHandler(mockRenderer, pwm.DefaultFrequency)

			resp, err := handler.GetWaveform(context.Background(), &tt.input)

			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			body := resp.Body
			assert.Equal(t, tt.input.DutyCycle, body.DutyCycle)
			assert.Equal(t, tt.wantFreq, body.Frequency)
			assert.Equal(t, pwm.TotalPoints, body.TotalPoints)
			assert.Len(t, body.Samples, pwm.TotalPoints)
			assert.Equal(t, tt.wantHigh, pwm.Waveform(body.Samples).HighCount())
			assert.Equal(t, tt.input.DutyCycle, body.Brightness.Level)
			assert.Equal(t, pwm.CycleLength(tt.wantFreq), body.CycleLength)

			// The waveform endpoint never needs a chart.
			mockRenderer.AssertExpectations(t)
		})
	}
}

func TestGetBrightness(t *testing.T) {
	handler := NewWaveformHandler(&MockRenderer{}, pwm.DefaultFrequency)

	for _, duty := range []int{0, 29, 30, 70, 71, 100} {
		resp, err := handler.GetBrightness(context.Background(), &models.GetBrightnessRequest{DutyCycle: duty})
		require.NoError(t, err)
		assert.Equal(t, duty, resp.Body.Level)
		assert.Equal(t, pwm.Label(duty), resp.Body.Label)
	}

	_, err := handler.GetBrightness(context.Background(), &models.GetBrightnessRequest{DutyCycle: -5})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestGetChart(t *testing.T) {
	tests := []struct {
		name       string
		input      models.GetChartRequest
		mockSetup  func(*MockRenderer)
		wantStatus int
	}{
		{
			name:  "uses default frequency",
			input: models.GetChartRequest{DutyCycle: 40},
			mockSetup: func(m *MockRenderer) {
				m.On("Render", 40, 5.0).Return([]byte("<svg/>"), nil)
			},
		},
		{
			name:  "passes explicit frequency",
			input: models.GetChartRequest{DutyCycle: 40, Frequency: 4},
			mockSetup: func(m *MockRenderer) {
				m.On("Render", 40, 4.0).Return([]byte("<svg/>"), nil)
			},
		},
		{
			name:  "generator rejects input",
			input: models.GetChartRequest{DutyCycle: 400},
			mockSetup: func(m *MockRenderer) {
				m.On("Render", 400, 5.0).Return(nil, fmt.Errorf("render: %w", pwm.ErrInvalidDutyCycle))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "unexpected failure",
			input: models.GetChartRequest{DutyCycle: 40},
			mockSetup: func(m *MockRenderer) {
				m.On("Render", 40, 5.0).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRenderer := &MockRenderer{}
			tt.mockSetup(mockRenderer)
			handler := NewWaveformHandler(mockRenderer, pwm.DefaultFrequency)

			resp, err := handler.GetChart(context.Background(), &tt.input)

			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, "image/svg+xml", resp.ContentType)
				assert.Equal(t, []byte("<svg/>"), resp.Body)
				assert.NotEmpty(t, resp.CacheControl)
			}
			mockRenderer.AssertExpectations(t)
		})
	}
}

func TestWaveformRoutes_Validation(t *testing.T) {
	_, api := humatest.New(t)
	mockRenderer := &MockRenderer{}
	mockRenderer.On("Render", 50, 5.0).Return([]byte("<svg/>"), nil)
	handler := NewWaveformHandler(mockRenderer, pwm.DefaultFrequency)

	huma.Get(api, "/api/waveform", handler.GetWaveform)
	huma.Get(api, "/api/brightness", handler.GetBrightness)
	huma.Get(api, "/api/chart", handler.GetChart)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{path: "/api/waveform", wantStatus: http.StatusOK},
		{path: "/api/waveform?duty_cycle=0", wantStatus: http.StatusOK},
		{path: "/api/waveform?duty_cycle=100&frequency=2.5", wantStatus: http.StatusOK},
		{path: "/api/waveform?duty_cycle=101", wantStatus: http.StatusUnprocessableEntity},
		{path: "/api/waveform?duty_cycle=-1", wantStatus: http.StatusUnprocessableEntity},
		{path: "/api/waveform?duty_cycle=abc", wantStatus: http.StatusUnprocessableEntity},
		{path: "/api/waveform?frequency=-2", wantStatus: http.StatusBadRequest},
		{path: "/api/waveform?frequency=500", wantStatus: http.StatusBadRequest},
		{path: "/api/waveform?frequency=Inf", wantStatus: http.StatusBadRequest},
		{path: "/api/waveform?frequency=-Inf", wantStatus: http.StatusBadRequest},
		{path: "/api/waveform?frequency=NaN", wantStatus: http.StatusBadRequest},
		{path: "/api/chart?frequency=Inf", wantStatus: http.StatusBadRequest},
		{path: "/api/brightness?duty_cycle=80", wantStatus: http.StatusOK},
		{path: "/api/brightness?duty_cycle=200", wantStatus: http.StatusUnprocessableEntity},
		{path: "/api/chart", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := api.Get(tt.path)
			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
		})
	}
}

func TestWaveformRoutes_DefaultDutyCycle(t *testing.T) {
	_, api := humatest.New(t)
	handler := NewWaveformHandler(&MockRenderer{}, pwm.DefaultFrequency)
	huma.Get(api, "/api/waveform", handler.GetWaveform)

	resp := api.Get("/api/waveform")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"duty_cycle":50`)
	assert.Contains(t, resp.Body.String(), `"cycle_length":20`)
	assert.Contains(t, resp.Body.String(), `"label":"Medium Brightness"`)
}

func TestWaveformRoutes_NonFiniteFrequency(t *testing.T) {
	_, api := humatest.New(t)
	mockRenderer := &MockRenderer{}
	handler := NewWaveformHandler(mockRenderer, pwm.DefaultFrequency)
	huma.Get(api, "/api/waveform", handler.GetWaveform)
	huma.Get(api, "/api/chart", handler.GetChart)

	for _, path := range []string{"/api/waveform?frequency=Inf", "/api/chart?frequency=-Inf"} {
		t.Run(path, func(t *testing.T) {
			resp := api.Get(path)
			require.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Contains(t, resp.Body.String(), pwm.ErrInvalidFrequency.Error())
		})
	}

	// Rejected before any chart is drawn.
	mockRenderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}
