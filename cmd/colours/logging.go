package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colourgrid/internal/config"
)

// logOutput receives the logs of commands running outside the TUI.
var logOutput io.Writer = os.Stderr

// newLogger returns a logger writing to logOutput.
func newLogger() *log.Logger {
	return log.NewWithOptions(logOutput, log.Options{
		ReportTimestamp: true,
		Prefix:          "colours",
	})
}

// newFileLogger returns a logger writing to the --log file, or one that
// discards everything when no file was given. The alternate screen owns the
// terminal while the animation runs.
func newFileLogger() (*log.Logger, func() error, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "colours",
		Level:           log.DebugLevel,
	})
	return logger, f.Close, nil
}

// loadConfig loads the config and logs every value replaced by a default.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, replaced, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	for _, key := range replaced {
		logger.Warn("invalid config value replaced by default", "key", key)
	}
	return cfg, nil
}
