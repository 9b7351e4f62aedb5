// Package logger provides a shared structured logger for the sync pipeline.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.SugaredLogger
	once sync.Once
)

// Initialize sets up the global logger. Debug enables development encoding
// and debug-level output. Safe to call more than once; only the first call
// takes effect.
func Initialize(debug bool) {
	once.Do(func() {
		var cfg zap.Config
		if debug {
			cfg = zap.NewDevelopmentConfig()
		} else {
			cfg = zap.NewProductionConfig()
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		}

		l, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			// Logging is not optional for a batch job; fall back hard.
			os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
			os.Exit(1)
		}
		log = l.Sugar()
	})
}

// get returns the global logger, initializing it with defaults if needed.
func get() *zap.SugaredLogger {
	if log == nil {
		Initialize(false)
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

// Info logs a message at info level.
func Info(args ...any) { get().Info(args...) }

// Infof logs a formatted message at info level.
func Infof(template string, args ...any) { get().Infof(template, args...) }

// Warn logs a message at warn level.
func Warn(args ...any) { get().Warn(args...) }

// Warnf logs a formatted message at warn level.
func Warnf(template string, args ...any) { get().Warnf(template, args...) }

// Error logs a message at error level.
func Error(args ...any) { get().Error(args...) }

// Errorf logs a formatted message at error level.
func Errorf(template string, args ...any) { get().Errorf(template, args...) }

// Fatalf logs a formatted message at fatal level and exits.
func Fatalf(template string, args ...any) { get().Fatalf(template, args...) }
