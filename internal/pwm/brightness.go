package pwm

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Brightness labels shown next to the slider.
const (
	LabelDim    = "Dim"
	LabelMedium = "Medium Brightness"
	LabelBright = "Bright"
)

var (
	unlitColor = mustHex("#fef08a")
	litColor   = mustHex("#facc15")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("pwm: invalid colour " + s + ": " + err.Error())
	}
	return c
}

// Brightness describes how the simulated LED looks at a duty cycle.
// Level always equals the duty cycle: the LED averages the pulses.
type Brightness struct {
	Level            int     `json:"level"`
	Label            string  `json:"label"`
	Opacity          float64 `json:"opacity"`
	GlowBlur         float64 `json:"glow_blur"`
	GlowSpread       float64 `json:"glow_spread"`
	GlowAlpha        float64 `json:"glow_alpha"`
	FilterBrightness float64 `json:"filter_brightness"`
	TextShadowBlur   float64 `json:"text_shadow_blur"`
	TextShadowAlpha  float64 `json:"text_shadow_alpha"`
	Color            string  `json:"color"`
}

// BrightnessFor maps a duty cycle to the brightness indicator state.
func BrightnessFor(dutyCycle int) (Brightness, error) {
	if err := ValidateDutyCycle(dutyCycle); err != nil {
		return Brightness{}, err
	}

	level := float64(dutyCycle) / 100
	return Brightness{
		Level:            dutyCycle,
		Label:            Label(dutyCycle),
		Opacity:          math.Min(level+0.1, 1),
		GlowBlur:         float64(dutyCycle) / 2,
		GlowSpread:       float64(dutyCycle) / 5,
		GlowAlpha:        math.Min(level+0.2, 1),
		FilterBrightness: 1 + level,
		TextShadowBlur:   float64(dutyCycle) / 3,
		TextShadowAlpha:  level,
		Color:            unlitColor.BlendLab(litColor, level).Clamped().Hex(),
	}, nil
}

// Label names the perceived brightness band for a duty cycle.
func Label(dutyCycle int) string {
	switch {
	case dutyCycle < 30:
		return LabelDim
	case dutyCycle > 70:
		return LabelBright
	default:
		return LabelMedium
	}
}

// BulbStyle is the inline CSS for the glowing bulb disc.
func (b Brightness) BulbStyle() string {
	return fmt.Sprintf("background-color: %s; box-shadow: 0 0 %gpx %gpx rgba(250, 204, 21, %g); opacity: %g",
		b.Color, b.GlowBlur, b.GlowSpread, round2(b.GlowAlpha), round2(b.Opacity))
}

// IconStyle is the inline CSS for the bulb icon inside the disc.
func (b Brightness) IconStyle() string {
	return fmt.Sprintf("filter: brightness(%g); text-shadow: 0 0 %gpx rgba(250, 204, 21, %g)",
		round2(b.FilterBrightness), round2(b.TextShadowBlur), round2(b.TextShadowAlpha))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
