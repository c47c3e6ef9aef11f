// Package logging holds the process-wide structured logger used by the
// widget host and the default Lottie engine.
//
// The logger defaults to a no-op so library users opt in explicitly:
//
//	logger, _ := logging.NewDevelopment()
//	defer logger.Sync()
//	logging.SetLogger(logger)
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// L returns the current logger. It is never nil.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the process logger and returns the previous one so
// callers can restore it. Passing nil installs a no-op logger.
func SetLogger(l *zap.Logger) *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	prev := logger
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	return prev
}

// Named returns a child of the current logger scoped to a subsystem.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// New builds a JSON production logger at the given level writing to stderr.
func New(level zapcore.Level) (*zap.Logger, error) {
	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

// NewDevelopment builds a human-readable debug logger.
func NewDevelopment() (*zap.Logger, error) {
	return zap.NewDevelopment()
}
