// Package config provides the configuration schema and loader for the
// Voicelink audio CLI. Configuration is optional: every field has a
// built-in default and command-line flags override file values.
package config

import "github.com/Voicelink-AI/voicelink-core/pkg/vad"

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure, typically loaded from a YAML
// file using [Load] or [LoadFromReader].
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	LogLevel LogLevel       `yaml:"log_level"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// AnalysisConfig holds the default detector parameters applied when the
// corresponding flags are not given.
type AnalysisConfig struct {
	// FrameMs is the analysis frame duration in milliseconds.
	FrameMs int `yaml:"frame_ms"`

	// Threshold is the fixed detector's energy threshold.
	Threshold float64 `yaml:"threshold"`

	// Sensitivity is the adaptive detector's stddev multiplier.
	Sensitivity float64 `yaml:"sensitivity"`
}

// MetricsConfig configures the optional Prometheus scrape endpoint.
type MetricsConfig struct {
	// ListenAddr is the TCP address to serve /metrics on (e.g. ":9090").
	// Empty disables the endpoint.
	ListenAddr string `yaml:"listen_addr"`
}

// Default returns a Config populated with the engine defaults.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			FrameMs:     vad.DefaultFrameMs,
			Threshold:   vad.DefaultThreshold,
			Sensitivity: vad.DefaultSensitivity,
		},
		LogLevel: LogInfo,
	}
}
