package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/RMahshie/pwmlab/internal/pwm"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	PWM     PWMConfig
	Chart   ChartConfig
	Content ContentConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Env             string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// PWMConfig holds waveform defaults
type PWMConfig struct {
	Frequency float64
}

// ChartConfig holds chart renderer configuration
type ChartConfig struct {
	CacheMaxCost int64
}

// ContentConfig holds lesson content configuration
type ContentConfig struct {
	ImageBaseURL string
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:8080,http://localhost:5173")
	v.SetDefault("SHUTDOWN_TIMEOUT", "30s")
	v.SetDefault("PWM_FREQUENCY", 5.0)
	v.SetDefault("CHART_CACHE_MAX_COST", 8<<20)
	v.SetDefault("IMAGE_BASE_URL", "https://space.coze.cn/api/coze_space/gen_image?image_size=square&prompt=")

	// Environment variables override .env file values
	v.AutomaticEnv()

	env := v.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	// Read .env file for the current environment (ignore error if it doesn't exist)
	v.SetConfigName(".env." + env)
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read .env.%s: %w", env, err)
		}
	}

	var config Config
	config.Server.Port = v.GetString("PORT")
	config.Server.Env = env
	config.Server.AllowedOrigins = splitList(v.GetString("ALLOWED_ORIGINS"))
	config.Server.ShutdownTimeout = v.GetDuration("SHUTDOWN_TIMEOUT")
	config.Log.Level = v.GetString("LOG_LEVEL")
	config.PWM.Frequency = v.GetFloat64("PWM_FREQUENCY")
	config.Chart.CacheMaxCost = v.GetInt64("CHART_CACHE_MAX_COST")
	config.Content.ImageBaseURL = v.GetString("IMAGE_BASE_URL")

	if err := config.validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("env", config.Server.Env).
		Str("port", config.Server.Port).
		Strs("allowed_origins", config.Server.AllowedOrigins).
		Float64("pwm_frequency", config.PWM.Frequency).
		Msg("Configuration loaded")

	return &config, nil
}

// IsDev reports whether the server runs in the local development environment.
func (c *Config) IsDev() bool {
	return c.Server.Env == "dev"
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.PWM.Frequency <= 0 || c.PWM.Frequency > pwm.MaxFrequency {
		return fmt.Errorf("PWM_FREQUENCY must be in (0, %v], got %v", pwm.MaxFrequency, c.PWM.Frequency)
	}
	if c.Chart.CacheMaxCost <= 0 {
		return fmt.Errorf("CHART_CACHE_MAX_COST must be positive, got %d", c.Chart.CacheMaxCost)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
