package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	Analyzer AnalyzerConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Debug reports whether debug-level logging is enabled.
func (l LogConfig) Debug() bool {
	return strings.EqualFold(l.Level, "debug")
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AnalyzerConfig holds snippet interpreter settings.
type AnalyzerConfig struct {
	// Filename is the name snippets are parsed under.
	Filename string `mapstructure:"filename"`
	// MaxSteps bounds execution; 0 leaves it unbounded.
	MaxSteps uint64 `mapstructure:"max_steps"`
}

// Load reads configuration from environment variables with the CODECHECK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CODECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":5501")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "0s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:5501,http://127.0.0.1:5501,http://localhost:3000,http://127.0.0.1:3000")

	// Analyzer defaults
	v.SetDefault("analyzer.filename", "<snippet>")
	v.SetDefault("analyzer.max_steps", 0)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "CODECHECK_SERVER_PORT",
		"server.read_timeout":     "CODECHECK_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "CODECHECK_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout": "CODECHECK_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":      "CODECHECK_SERVER_ENVIRONMENT",
		"log.level":               "CODECHECK_LOG_LEVEL",
		"log.format":              "CODECHECK_LOG_FORMAT",
		"cors.allowed_origins":    "CODECHECK_CORS_ALLOWED_ORIGINS",
		"analyzer.filename":       "CODECHECK_ANALYZER_FILENAME",
		"analyzer.max_steps":      "CODECHECK_ANALYZER_MAX_STEPS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if CODECHECK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CODECHECK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Analyzer = AnalyzerConfig{
		Filename: v.GetString("analyzer.filename"),
		MaxSteps: v.GetUint64("analyzer.max_steps"),
	}

	return cfg, nil
}
