package app

import (
	"io"
	"log/slog"
	"os"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	logFile *os.File
}

// NewApp is the constructor for the main application. Reports go to outW
// and log records to logW, plus the configured log file when there is one.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	a := &App{outW: outW, config: cfg}

	if cfg.LogFile != "" {
		f, err := openLogFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		a.logFile = f
		logW = io.MultiWriter(logW, f)
	}

	a.logger = newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	a.logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)
	return a, nil
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
