package pwm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrightnessFor_LevelTracksDutyCycle(t *testing.T) {
	for duty := MinDutyCycle; duty <= MaxDutyCycle; duty++ {
		b, err := BrightnessFor(duty)
		require.NoError(t, err)
		assert.Equal(t, duty, b.Level)
		assert.LessOrEqual(t, b.Opacity, 1.0)
		assert.LessOrEqual(t, b.GlowAlpha, 1.0)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, b.Color)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		dutyCycle int
		want      string
	}{
		{0, LabelDim},
		{29, LabelDim},
		{30, LabelMedium},
		{50, LabelMedium},
		{70, LabelMedium},
		{71, LabelBright},
		{100, LabelBright},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.dutyCycle), "duty %d", tt.dutyCycle)
	}
}

func TestBrightnessFor_Glow(t *testing.T) {
	b, err := BrightnessFor(50)
	require.NoError(t, err)

	assert.InDelta(t, 0.6, b.Opacity, 1e-9)
	assert.Equal(t, 25.0, b.GlowBlur)
	assert.Equal(t, 10.0, b.GlowSpread)
	assert.InDelta(t, 0.7, b.GlowAlpha, 1e-9)
	assert.Equal(t, 1.5, b.FilterBrightness)
	assert.Equal(t, 0.5, b.TextShadowAlpha)

	off, err := BrightnessFor(0)
	require.NoError(t, err)
	assert.Equal(t, "#fef08a", off.Color)
	assert.Equal(t, 0.0, off.GlowBlur)

	full, err := BrightnessFor(100)
	require.NoError(t, err)
	assert.Equal(t, "#facc15", full.Color)
	assert.Equal(t, 1.0, full.Opacity)
	assert.Equal(t, 1.0, full.GlowAlpha)
}

func TestBrightnessFor_Invalid(t *testing.T) {
	_, err := BrightnessFor(150)
	assert.ErrorIs(t, err, ErrInvalidDutyCycle)
}

func TestBrightness_Styles(t *testing.T) {
	b, err := BrightnessFor(50)
	require.NoError(t, err)

	assert.Contains(t, b.BulbStyle(), "box-shadow: 0 0 25px 10px rgba(250, 204, 21, 0.7)")
	assert.Contains(t, b.BulbStyle(), "opacity: 0.6")
	assert.Equal(t, "filter: brightness(1.5); text-shadow: 0 0 16.67px rgba(250, 204, 21, 0.5)", b.IconStyle())
}

func TestMustHex(t *testing.T) {
	assert.Equal(t, "#fef08a", mustHex("#fef08a").Hex())
	assert.Panics(t, func() { mustHex("fef08a") })
	assert.Panics(t, func() { mustHex("#xyzxyz") })
}
