// Package yamlconfig provides the YAML implementation of config.Loader.
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/clustersort/internal/config"
	"github.com/specialistvlad/clustersort/internal/ctxlog"
)

// Loader reads settings files written in YAML.
type Loader struct{}

// NewLoader creates a new YAML settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileConfig struct {
	Marker    *string `yaml:"marker"`
	Suffix    *string `yaml:"suffix"`
	Reverse   *bool   `yaml:"reverse"`
	Quiet     *bool   `yaml:"quiet"`
	Color     *bool   `yaml:"color"`
	LogLevel  *string `yaml:"log_level"`
	LogFormat *string `yaml:"log_format"`
	LogFile   *string `yaml:"log_file"`
}

// Load reads and decodes the YAML settings file at path. Unknown keys are
// an error.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	model := &config.Model{
		Marker:    cfg.Marker,
		Suffix:    cfg.Suffix,
		Reverse:   cfg.Reverse,
		Quiet:     cfg.Quiet,
		Color:     cfg.Color,
		LogLevel:  cfg.LogLevel,
		LogFormat: cfg.LogFormat,
		LogFile:   cfg.LogFile,
	}
	logger.Debug("YAML loading complete.", "keys", model.Keys())
	return model, nil
}
