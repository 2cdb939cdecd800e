package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/specialistvlad/clustersort/internal/config"
	"github.com/specialistvlad/clustersort/internal/ctxlog"
	"github.com/specialistvlad/clustersort/internal/fsutil"
	"github.com/specialistvlad/clustersort/internal/table"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot lists every attribute a settings file may set. Unknown
// attributes are rejected by the decoder.
type fileRoot struct {
	Marker    *string `hcl:"marker,optional"`
	Suffix    *string `hcl:"suffix,optional"`
	Reverse   *bool   `hcl:"reverse,optional"`
	Quiet     *bool   `hcl:"quiet,optional"`
	Color     *bool   `hcl:"color,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
	LogFile   *string `hcl:"log_file,optional"`
}

// Load parses and decodes the HCL settings file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := &config.Model{
		Marker:    root.Marker,
		Suffix:    root.Suffix,
		Reverse:   root.Reverse,
		Quiet:     root.Quiet,
		Color:     root.Color,
		LogLevel:  root.LogLevel,
		LogFormat: root.LogFormat,
		LogFile:   root.LogFile,
	}
	logger.Debug("HCL loading complete.", "keys", model.Keys())
	return model, nil
}

// evalContext exposes the built-in defaults as `defaults.marker` and
// `defaults.suffix`, plus a few string functions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"marker": cty.StringVal(table.DefaultMarker),
				"suffix": cty.StringVal(fsutil.DefaultSuffix),
			}),
		},
		Functions: map[string]function.Function{
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"format": stdlib.FormatFunc,
		},
	}
}
