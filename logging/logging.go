// Package logging builds the process-wide zap logger.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     = zap.NewNop()
	loggerLock sync.RWMutex
)

// Options controls where and how verbosely the logger writes
type Options struct {
	Debug bool
	// OutputPaths defaults to stderr. The terminal front end points it at a
	// file because the screen is owned by tcell.
	OutputPaths []string
}

// New builds a logger and installs it as the one returned by Provide.
// Debug selects a human-readable console encoder at debug level; otherwise
// JSON at info level.
func New(opts Options) (*zap.Logger, error) {
	outputs := opts.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	level := zap.InfoLevel
	encoding := "json"
	encoderConfig := zap.NewProductionEncoderConfig()
	if opts.Debug {
		level = zap.DebugLevel
		encoding = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      opts.Debug,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    !opts.Debug,
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	Set(l)
	return l, nil
}

// Set replaces the logger returned by Provide
func Set(l *zap.Logger) {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	logger = l
}

// Provide returns the installed logger, or a no-op logger before New runs
func Provide() *zap.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	return logger
}
