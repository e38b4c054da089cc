// Package pwm models a pulse width modulated square wave for charting.
package pwm

import (
	"errors"
	"fmt"
	"math"
)

const (
	// TotalPoints is the number of samples in every generated waveform.
	TotalPoints = 100

	// DefaultFrequency is the number of cycles that fit in the sampled window.
	DefaultFrequency = 5.0

	// MaxFrequency is the densest frequency that still samples every cycle.
	MaxFrequency = 100.0

	// DefaultDutyCycle is the slider position shown before any interaction.
	DefaultDutyCycle = 50

	MinDutyCycle = 0
	MaxDutyCycle = 100

	// High and Low are the two sample levels.
	High = 100
	Low  = 0
)

var (
	ErrInvalidDutyCycle = errors.New("duty cycle must be between 0 and 100")
	ErrInvalidFrequency = errors.New("frequency must be a positive finite number")
)

// Sample is the signal level at one simulated time step.
type Sample struct {
	Time  int `json:"time"`
	Value int `json:"value"`
}

// Waveform is an ordered run of samples; index equals Sample.Time.
type Waveform []Sample

// CycleLength returns the number of samples per repeating cycle.
func CycleLength(frequency float64) float64 {
	return TotalPoints / frequency
}

// HighPoints returns the number of "on" samples per cycle, rounded half away from zero.
func HighPoints(dutyCycle int, frequency float64) float64 {
	return math.Round(float64(dutyCycle) / 100 * CycleLength(frequency))
}

// Generate builds the sampled square wave for the given duty cycle and frequency.
// A frequency that does not divide TotalPoints leaves a truncated final cycle.
func Generate(dutyCycle int, frequency float64) (Waveform, error) {
	if err := Validate(dutyCycle, frequency); err != nil {
		return nil, err
	}

	cycleLength := CycleLength(frequency)
	highPoints := HighPoints(dutyCycle, frequency)

	out := make(Waveform, TotalPoints)
	for i := range out {
		value := Low
		if dutyCycle == MaxDutyCycle || math.Mod(float64(i), cycleLength) < highPoints {
			value = High
		}
		out[i] = Sample{Time: i, Value: value}
	}
	return out, nil
}

// Validate reports whether the inputs can produce a well-formed waveform.
func Validate(dutyCycle int, frequency float64) error {
	if err := ValidateDutyCycle(dutyCycle); err != nil {
		return err
	}
	if frequency <= 0 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidFrequency, frequency)
	}
	return nil
}

// ValidateDutyCycle checks the duty cycle is a percentage.
func ValidateDutyCycle(dutyCycle int) error {
	if dutyCycle < MinDutyCycle || dutyCycle > MaxDutyCycle {
		return fmt.Errorf("%w: got %d", ErrInvalidDutyCycle, dutyCycle)
	}
	return nil
}

// HighCount returns how many samples are at the high level.
func (w Waveform) HighCount() int {
	n := 0
	for _, s := range w {
		if s.Value == High {
			n++
		}
	}
	return n
}

// Mean returns the average sample value, i.e. the effective output level.
func (w Waveform) Mean() float64 {
	if len(w) == 0 {
		return 0
	}
	sum := 0
	for _, s := range w {
		sum += s.Value
	}
	return float64(sum) / float64(len(w))
}
