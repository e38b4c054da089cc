package models

import (
	"github.com/RMahshie/pwmlab/internal/pwm"
)

// GetWaveformRequest represents a request for a sampled PWM waveform
type GetWaveformRequest struct {
	DutyCycle int     `query:"duty_cycle" minimum:"0" maximum:"100" default:"50" doc:"Percentage of each cycle the signal is on"`
	Frequency float64 `query:"frequency" doc:"Cycles across the sampled window, at most 100; 0 or omitted uses the server default"`
}

// GetWaveformResponseBody is the body of the waveform response
type GetWaveformResponseBody struct {
	DutyCycle   int            `json:"duty_cycle" doc:"Requested duty cycle"`
	Frequency   float64        `json:"frequency" doc:"Cycles across the sampled window"`
	TotalPoints int            `json:"total_points" doc:"Number of samples"`
	CycleLength float64        `json:"cycle_length" doc:"Samples per cycle"`
	HighPoints  float64        `json:"high_points" doc:"On samples per cycle"`
	MeanValue   float64        `json:"mean_value" doc:"Average sample value across the window"`
	Samples     []pwm.Sample   `json:"samples" doc:"Samples ordered by time; value is 0 (off) or 100 (on)"`
	Brightness  pwm.Brightness `json:"brightness" doc:"LED brightness indicator state"`
}

// GetWaveformResponse represents a sampled PWM waveform
type GetWaveformResponse struct {
	Body GetWaveformResponseBody
}

// GetBrightnessRequest represents a request for the LED brightness at a duty cycle
type GetBrightnessRequest struct {
	DutyCycle int `query:"duty_cycle" minimum:"0" maximum:"100" default:"50" doc:"Percentage of each cycle the signal is on"`
}

// GetBrightnessResponse represents the LED brightness indicator state
type GetBrightnessResponse struct {
	Body pwm.Brightness
}

// GetChartRequest represents a request for a rendered waveform chart
type GetChartRequest struct {
	DutyCycle int     `query:"duty_cycle" minimum:"0" maximum:"100" default:"50" doc:"Percentage of each cycle the signal is on"`
	Frequency float64 `query:"frequency" doc:"Cycles across the sampled window, at most 100; 0 or omitted uses the server default"`
}

// GetChartResponse is an SVG document written as-is
type GetChartResponse struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	Body         []byte
}
