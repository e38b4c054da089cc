// Package chart draws PWM waveforms as standalone SVG line charts.
package chart

import (
	"bytes"
	"fmt"
	"math"

	"github.com/RMahshie/pwmlab/internal/pwm"
)

// Colours and sizes follow the page's chart styling.
const (
	gridColor   = "#cbd5e1"
	axisColor   = "#94a3b8"
	seriesColor = "#3b82f6"
	labelColor  = "#475569"

	marginTop    = 10
	marginRight  = 10
	marginBottom = 40
	marginLeft   = 50

	xTickStep = 20
	yTickStep = 25
)

// Size is the pixel size of the SVG viewBox.
type Size struct {
	Width  int
	Height int
}

// DefaultSize matches the 16rem-tall chart panel on the page.
var DefaultSize = Size{Width: 640, Height: 256}

// WriteSVG renders the waveform into an SVG document with a fixed [0, 100] value axis.
func WriteSVG(buf *bytes.Buffer, wave pwm.Waveform, dutyCycle int, frequency float64, size Size) {
	plotW := float64(size.Width - marginLeft - marginRight)
	plotH := float64(size.Height - marginTop - marginBottom)

	lastTime := len(wave) - 1
	if lastTime < 1 {
		lastTime = 1
	}
	x := func(t int) float64 {
		return marginLeft + float64(t)/float64(lastTime)*plotW
	}
	y := func(v int) float64 {
		return marginTop + (1-float64(v)/pwm.High)*plotH
	}

	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-labelledby="pwm-title pwm-desc" class="pwm-chart">`,
		size.Width, size.Height)
	fmt.Fprintf(buf, `<title id="pwm-title">PWM waveform at %d%% duty cycle</title>`, dutyCycle)
	fmt.Fprintf(buf, `<desc id="pwm-desc">%.4g samples per cycle, %g of them on, %.4g cycles across %d samples</desc>`,
		pwm.CycleLength(frequency), pwm.HighPoints(dutyCycle, frequency), frequency, len(wave))

	buf.WriteString(`<style>.pwm-run .pwm-dot{visibility:hidden}.pwm-run:hover .pwm-dot{visibility:visible}</style>`)

	// Grid
	fmt.Fprintf(buf, `<g stroke="%s" stroke-dasharray="3 3" stroke-width="1">`, gridColor)
	for t := 0; t <= lastTime; t += xTickStep {
		fmt.Fprintf(buf, `<line x1="%.2f" y1="%d" x2="%.2f" y2="%.2f"/>`, x(t), marginTop, x(t), marginTop+plotH)
	}
	for v := pwm.Low; v <= pwm.High; v += yTickStep {
		fmt.Fprintf(buf, `<line x1="%d" y1="%.2f" x2="%.2f" y2="%.2f"/>`, marginLeft, y(v), marginLeft+plotW, y(v))
	}
	buf.WriteString(`</g>`)

	// Axes
	fmt.Fprintf(buf, `<g stroke="%s" stroke-width="1">`, axisColor)
	fmt.Fprintf(buf, `<line x1="%d" y1="%.2f" x2="%.2f" y2="%.2f"/>`, marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)
	fmt.Fprintf(buf, `<line x1="%d" y1="%d" x2="%d" y2="%.2f"/>`, marginLeft, marginTop, marginLeft, marginTop+plotH)
	buf.WriteString(`</g>`)

	// Tick labels
	fmt.Fprintf(buf, `<g fill="%s" font-size="12" font-family="sans-serif">`, labelColor)
	for t := 0; t <= lastTime; t += xTickStep {
		fmt.Fprintf(buf, `<text x="%.2f" y="%.2f" text-anchor="middle">%d</text>`, x(t), marginTop+plotH+16, t)
	}
	for v := pwm.Low; v <= pwm.High; v += yTickStep {
		fmt.Fprintf(buf, `<text x="%d" y="%.2f" text-anchor="end" dominant-baseline="middle">%d</text>`, marginLeft-6, y(v), v)
	}
	buf.WriteString(`</g>`)

	// Axis titles
	fmt.Fprintf(buf, `<g fill="%s" font-size="14" font-family="sans-serif">`, labelColor)
	fmt.Fprintf(buf, `<text x="%.2f" y="%d" text-anchor="middle">Time</text>`, marginLeft+plotW/2, size.Height-4)
	fmt.Fprintf(buf, `<text transform="translate(14 %.2f) rotate(-90)" text-anchor="middle">Voltage</text>`, marginTop+plotH/2)
	buf.WriteString(`</g>`)

	// Series
	fmt.Fprintf(buf, `<polyline fill="none" stroke="%s" stroke-width="3" stroke-linejoin="round" points="`, seriesColor)
	for i, s := range wave {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.2f,%.2f", x(s.Time), y(s.Value))
	}
	buf.WriteString(`"/>`)

	// Hover regions, one per run of equal samples
	half := plotW / float64(lastTime) / 2
	for _, r := range runsOf(wave) {
		x0 := math.Max(marginLeft, x(r.start)-half)
		x1 := math.Min(marginLeft+plotW, x(r.end)+half)
		fmt.Fprintf(buf, `<g class="pwm-run"><title>%s: %s</title>`, r.span(), stateName(r.value))
		fmt.Fprintf(buf, `<rect x="%.2f" y="%d" width="%.2f" height="%.2f" fill="transparent"/>`, x0, marginTop, x1-x0, plotH)
		fmt.Fprintf(buf, `<circle class="pwm-dot" cx="%.2f" cy="%.2f" r="5" fill="%s" stroke="#fff" stroke-width="2"/>`,
			x(r.start), y(r.value), seriesColor)
		buf.WriteString(`</g>`)
	}

	buf.WriteString(`</svg>`)
}

// run is a stretch of consecutive samples at the same level.
type run struct {
	start, end int
	value      int
}

func (r run) span() string {
	if r.start == r.end {
		return fmt.Sprintf("Time %d", r.start)
	}
	return fmt.Sprintf("Time %d-%d", r.start, r.end)
}

func runsOf(wave pwm.Waveform) []run {
	var out []run
	for _, s := range wave {
		if n := len(out); n > 0 && out[n-1].value == s.Value {
			out[n-1].end = s.Time
			continue
		}
		out = append(out, run{start: s.Time, end: s.Time, value: s.Value})
	}
	return out
}

func stateName(value int) string {
	if value == pwm.High {
		return "On"
	}
	return "Off"
}
