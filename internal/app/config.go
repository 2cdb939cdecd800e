package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/clustersort/internal/config"
	"github.com/specialistvlad/clustersort/internal/fsutil"
	"github.com/specialistvlad/clustersort/internal/table"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string
	Marker    string // header substring locating the cluster column
	Suffix    string // appended to the input stem to name the output
	Reverse   bool
	Quiet     bool // no popularity reports
	Color     bool

	LogFormat string
	LogLevel  string
	LogFile   string
}

// DefaultConfig returns the built-in defaults. InputPath is left empty.
func DefaultConfig() Config {
	return Config{
		Marker:    table.DefaultMarker,
		Suffix:    fsutil.DefaultSuffix,
		LogFormat: "text",
		LogLevel:  "error",
	}
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.Marker == "" {
		return nil, errors.New("marker cannot be empty")
	}
	if cfg.Suffix == "" {
		return nil, errors.New("suffix cannot be empty")
	}
	if strings.ContainsAny(cfg.Suffix, `/\`) {
		return nil, fmt.Errorf("suffix %q must not contain a path separator", cfg.Suffix)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}

// Apply overlays every setting present in m onto c.
func (c *Config) Apply(m *config.Model) {
	if m == nil {
		return
	}
	setString(&c.Marker, m.Marker)
	setString(&c.Suffix, m.Suffix)
	setBool(&c.Reverse, m.Reverse)
	setBool(&c.Quiet, m.Quiet)
	setBool(&c.Color, m.Color)
	setString(&c.LogLevel, m.LogLevel)
	setString(&c.LogFormat, m.LogFormat)
	setString(&c.LogFile, m.LogFile)
}

// OutputPath is where the relabeled table is written.
func (c *Config) OutputPath() string {
	return fsutil.DerivedPath(c.InputPath, c.Suffix)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
