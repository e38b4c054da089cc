package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/pwmlab/internal/api"
	"github.com/RMahshie/pwmlab/internal/chart"
	"github.com/RMahshie/pwmlab/internal/config"
	"github.com/RMahshie/pwmlab/internal/content"
	"github.com/RMahshie/pwmlab/web"
)

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	configureLogger(cfg)

	renderer, err := chart.NewRenderer(chart.RendererConfig{
		Size:    chart.DefaultSize,
		MaxCost: cfg.Chart.CacheMaxCost,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create chart renderer")
	}
	defer renderer.Close()

	lesson, err := content.Load(cfg.Content.ImageBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load lesson content")
	}

	page, err := web.PageTemplate()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse page template")
	}

	router := api.NewRouter(api.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Frequency:      cfg.PWM.Frequency,
		Renderer:       renderer,
		Lesson:         lesson,
		Page:           page,
		Static:         web.Static(),
	})

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Server.Env).Msg("Starting PWM Lab server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// configureLogger sets the global level and uses the console writer during development
func configureLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("level", cfg.Log.Level).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDev() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
