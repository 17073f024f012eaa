package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options is the tool configuration, usually read from a YAML file.
type Options struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// Color controls ANSI output: auto (terminal only), always, never.
	Color string `yaml:"color,omitempty"`

	// Metrics prints scope cache counters after a run.
	Metrics bool `yaml:"metrics,omitempty"`
}

// DefaultOptions returns the options used when no file is given.
func DefaultOptions() *Options {
	return &Options{LogLevel: DefaultLogLevel, Color: DefaultColorMode}
}

// LoadOptions reads and parses an options file.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options %s: %w", path, err)
	}
	return ParseOptions(data, path)
}

// ParseOptions parses options from bytes, filling defaults.
// The path argument is used only for error messages.
func ParseOptions(data []byte, path string) (*Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parsing options %s: %w", path, err)
	}
	if opts.LogLevel == "" {
		opts.LogLevel = DefaultLogLevel
	}
	if opts.Color == "" {
		opts.Color = DefaultColorMode
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Validate checks field values.
func (o *Options) Validate() error {
	if _, err := ParseLevel(o.LogLevel); err != nil {
		return err
	}
	switch o.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", o.Color)
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
	}
}
