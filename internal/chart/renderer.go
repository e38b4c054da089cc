package chart

import (
	"bytes"
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/pwmlab/internal/pwm"
)

// Renderer turns (duty cycle, frequency) pairs into SVG charts.
type Renderer interface {
	Render(dutyCycle int, frequency float64) ([]byte, error)
}

// CachedRenderer is a Renderer backed by a ristretto cache.
type CachedRenderer struct {
	cache *ristretto.Cache[string, []byte]
	size  Size
}

// RendererConfig holds configuration for the chart renderer
type RendererConfig struct {
	Size Size
	// MaxCost bounds the cache by the total bytes of stored SVG documents.
	MaxCost int64
}

// NewRenderer creates a renderer that memoises charts in a ristretto cache.
// Waveforms are pure functions of their inputs so entries never go stale.
func NewRenderer(cfg RendererConfig) (*CachedRenderer, error) {
	if cfg.MaxCost <= 0 {
		return nil, fmt.Errorf("chart cache max cost must be positive, got %d", cfg.MaxCost)
	}
	if cfg.Size.Width <= marginLeft+marginRight || cfg.Size.Height <= marginTop+marginBottom {
		return nil, fmt.Errorf("chart size %dx%d leaves no room for the plot", cfg.Size.Width, cfg.Size.Height)
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 10_000,
		MaxCost:     cfg.MaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chart cache: %w", err)
	}

	return &CachedRenderer{cache: cache, size: cfg.Size}, nil
}

// Render returns the SVG chart for the inputs, from cache when possible.
// The returned slice is shared and must not be modified.
func (r *CachedRenderer) Render(dutyCycle int, frequency float64) ([]byte, error) {
	key := cacheKey(dutyCycle, frequency)
	if svg, ok := r.cache.Get(key); ok {
		return svg, nil
	}

	wave, err := pwm.Generate(dutyCycle, frequency)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	WriteSVG(&buf, wave, dutyCycle, frequency, r.size)
	svg := buf.Bytes()

	if !r.cache.Set(key, svg, int64(len(svg))) {
		log.Debug().Str("key", key).Msg("Chart cache rejected entry")
	}
	return svg, nil
}

// Wait blocks until pending cache writes are applied.
func (r *CachedRenderer) Wait() {
	r.cache.Wait()
}

// Close releases the cache's background goroutines.
func (r *CachedRenderer) Close() {
	r.cache.Close()
}

func cacheKey(dutyCycle int, frequency float64) string {
	return fmt.Sprintf("%d@%g", dutyCycle, frequency)
}
