// Package config loads the settings shared by the event tools: logging,
// the poll loop and the capture log. Values come from defaults, then an
// optional YAML file, then OVR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config captures every adjustable knob.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envPrefix:"OVR_LOG_"`
	Poll    PollConfig    `yaml:"poll" envPrefix:"OVR_POLL_"`
	Capture CaptureConfig `yaml:"capture" envPrefix:"OVR_CAPTURE_"`

	// Source indicates where the configuration originated (defaults or a file path).
	Source string `yaml:"-"`
}

// LoggingConfig defines log verbosity and formatting.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// PollConfig drives the event pump.
type PollConfig struct {
	Interval         time.Duration `yaml:"interval" env:"INTERVAL"`
	MaxEventsPerTick int           `yaml:"max_events_per_tick" env:"MAX_EVENTS_PER_TICK"`
}

// CaptureConfig controls the event log writer.
type CaptureConfig struct {
	Path         string `yaml:"path" env:"PATH"`
	Compression  string `yaml:"compression" env:"COMPRESSION"`
	BlockRecords int    `yaml:"block_records" env:"BLOCK_RECORDS"`
}

// Default returns the baseline configuration used when no overrides are supplied.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Poll: PollConfig{
			Interval:         11 * time.Millisecond,
			MaxEventsPerTick: 64,
		},
		Capture: CaptureConfig{
			Compression:  "zstd",
			BlockRecords: 256,
		},
		Source: "<defaults>",
	}
}

// Load builds the configuration. An empty path skips the file step.
func Load(path string) (Config, error) {
	cfg := Default()

	if p := strings.TrimSpace(path); p != "" {
		file, err := os.Open(p)
		if err != nil {
			return cfg, fmt.Errorf("open config file %q: %w", p, err)
		}
		defer file.Close()
		if err := decodeYAML(file, &cfg); err != nil {
			return cfg, fmt.Errorf("config file %q: %w", p, err)
		}
		cfg.Source = p
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decodeYAML rejects keys the Config does not know. An empty document
// leaves cfg untouched.
func decodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate ensures essential configuration values are present and sensible.
func (c Config) Validate() error {
	if _, err := NormalizeLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := NormalizeFormat(c.Logging.Format); err != nil {
		return err
	}
	if c.Poll.Interval <= 0 {
		return errors.New("poll.interval must be positive")
	}
	if c.Poll.MaxEventsPerTick <= 0 {
		return errors.New("poll.max_events_per_tick must be positive")
	}
	if _, err := NormalizeCompression(c.Capture.Compression); err != nil {
		return err
	}
	if c.Capture.BlockRecords <= 0 || c.Capture.BlockRecords > 0xFFFF {
		return errors.New("capture.block_records must be between 1 and 65535")
	}
	return nil
}

// NormalizeLogLevel validates and lowercases known logging levels.
func NormalizeLogLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return "info", nil
	case "debug":
		return "debug", nil
	case "warn", "warning":
		return "warn", nil
	case "error":
		return "error", nil
	default:
		return "", fmt.Errorf("unsupported log level %q", level)
	}
}

// NormalizeFormat validates and canonicalizes logging format identifiers.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return "json", nil
	case "console", "text":
		return "text", nil
	default:
		return "", fmt.Errorf("unsupported log format %q", format)
	}
}

// NormalizeCompression accepts "none" and "zstd".
func NormalizeCompression(c string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(c)) {
	case "", "none", "off":
		return "none", nil
	case "zstd":
		return "zstd", nil
	default:
		return "", fmt.Errorf("unsupported capture compression %q", c)
	}
}
