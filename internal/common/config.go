package common

import (
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for finstruct
type Config struct {
	Logging  LoggingConfig  `toml:"logging"`
	Server   ServerConfig   `toml:"server"`
	Analysis AnalysisConfig `toml:"analysis"`
	Output   OutputConfig   `toml:"output"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MaxUploadMB int    `toml:"max_upload_mb"`
}

// Address returns host:port for the listener
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BodyLimit returns the upload limit in echo's size notation
func (c *ServerConfig) BodyLimit() string {
	if c.MaxUploadMB <= 0 {
		return "10M"
	}
	return strconv.Itoa(c.MaxUploadMB) + "M"
}

// AnalysisConfig holds pipeline configuration
type AnalysisConfig struct {
	VocabularyPath      string `toml:"vocabulary_path"` // empty uses the embedded vocabulary
	MaxTrendSeries      int    `toml:"max_trend_series"`
	FallbackTrendSeries int    `toml:"fallback_trend_series"`
}

// OutputConfig holds rendering configuration
type OutputConfig struct {
	Pretty      bool `toml:"pretty"`
	ChartWidth  int  `toml:"chart_width"`
	ChartHeight int  `toml:"chart_height"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			MaxUploadMB: 10,
		},
		Analysis: AnalysisConfig{
			MaxTrendSeries:      5,
			FallbackTrendSeries: 3,
		},
		Output: OutputConfig{
			ChartWidth:  900,
			ChartHeight: 400,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if level := os.Getenv("FINSTRUCT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("FINSTRUCT_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}

	if host := os.Getenv("FINSTRUCT_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("FINSTRUCT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if limit := os.Getenv("FINSTRUCT_MAX_UPLOAD_MB"); limit != "" {
		if mb, err := strconv.Atoi(limit); err == nil && mb > 0 {
			config.Server.MaxUploadMB = mb
		}
	}

	if path := os.Getenv("FINSTRUCT_VOCABULARY"); path != "" {
		config.Analysis.VocabularyPath = path
	}
}
