package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/specialistvlad/clustersort/internal/app"
	"github.com/specialistvlad/clustersort/internal/config"
	"github.com/specialistvlad/clustersort/internal/hcl"
	"github.com/specialistvlad/clustersort/internal/yamlconfig"
)

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Values are resolved as built-in defaults, then the settings file named by
// --config, then every flag set explicitly on the command line.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	defaults := app.DefaultConfig()
	flagSet := flag.NewFlagSet("clustersort", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
clustersort - Relabel DataWarrior clusters by popularity.

The most populous cluster becomes label 1, the next one 2, and so on. Rows are
written grouped by their new label to FILE's name with its extension replaced
by the output suffix, e.g. example.txt -> example_sort.txt, which DataWarrior
opens directly.

Usage:
  clustersort [options] FILE

Arguments:
  FILE
    DataWarrior cluster list exported as a tab-separated .txt file.

Options:
`)
		flagSet.PrintDefaults()
	}

	reverseFlag := flagSet.BoolP("reverse", "r", false, "Assign the least populous cluster the lowest label.")
	configFlag := flagSet.StringP("config", "c", "", "Settings file (.hcl, .yaml or .yml).")
	markerFlag := flagSet.String("marker", defaults.Marker, "Header text identifying the cluster column.")
	suffixFlag := flagSet.String("suffix", defaults.Suffix, "Suffix replacing the input's extension in the output name.")
	quietFlag := flagSet.BoolP("quiet", "q", false, "Do not print the cluster popularity reports.")
	colorFlag := flagSet.Bool("color", false, "Highlight report titles with terminal colors.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logFileFlag := flagSet.String("log-file", "", "Also append log records to this file.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	switch flagSet.NArg() {
	case 0:
		slog.Debug("No input file provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	case 1:
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("expected one input file, got %d", flagSet.NArg())}
	}

	cfg := defaults
	cfg.InputPath = flagSet.Arg(0)
	slog.Debug("Input path determined.", "path", cfg.InputPath)

	if *configFlag != "" {
		model, err := loadSettings(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
		}
		cfg.Apply(model)
	}

	if flagSet.Changed("reverse") {
		cfg.Reverse = *reverseFlag
	}
	if flagSet.Changed("marker") {
		cfg.Marker = *markerFlag
	}
	if flagSet.Changed("suffix") {
		cfg.Suffix = *suffixFlag
	}
	if flagSet.Changed("quiet") {
		cfg.Quiet = *quietFlag
	}
	if flagSet.Changed("color") {
		cfg.Color = *colorFlag
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = *logLevelFlag
	}
	if flagSet.Changed("log-format") {
		cfg.LogFormat = *logFormatFlag
	}
	if flagSet.Changed("log-file") {
		cfg.LogFile = *logFileFlag
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}

// loaderFor picks the settings loader matching the file extension.
func loaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlconfig.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported settings file %s: use .hcl, .yaml or .yml", path)
	}
}

func loadSettings(path string) (*config.Model, error) {
	loader, err := loaderFor(path)
	if err != nil {
		return nil, err
	}
	return loader.Load(context.Background(), path)
}
