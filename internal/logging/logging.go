// Package logging builds the zap logger shared by every folio component.
// The TUI owns the terminal, so interactive sessions log to a file; the
// HTTP and export commands log to stderr.
package logging

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Josepavese/folio/internal/pkg/sysutil"
)

// Options selects where and how much to log.
type Options struct {
	// File receives the log. Empty means stderr.
	File  string
	Level string
	// Development switches to the console encoder.
	Development bool
}

// New builds a logger for opts.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	if opts.Development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = level > zapcore.DebugLevel

	output := "stderr"
	if opts.File != "" {
		if _, err := sysutil.EnsureDir(filepath.Dir(opts.File)); err != nil {
			return nil, fmt.Errorf("log directory: %w", err)
		}
		output = opts.File
	}
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{output}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Component returns a child logger tagged with a component name.
func Component(l *zap.Logger, name string) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l.Named(name)
}
