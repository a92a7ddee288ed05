// Package logger owns the process-wide zap logger. Subsystems take a named
// child with Named when they are constructed, so every entry carries the
// component that wrote it.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"kernelquest/internal/config"
)

// Log is the root logger. It discards everything until Init runs, so tests
// can construct controllers without any setup.
var Log = zap.NewNop()

// Init builds the root logger from the logging section of config.yaml: a
// terminal core when Console is set and a rotating file core when File is
// set. Both share the level and encoding.
func Init(cfg config.LoggingConfig) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("logging level: %w", err)
	}

	var cores []zapcore.Core
	if cfg.Console {
		enc, err := newEncoder(cfg, cfg.Color)
		if err != nil {
			return err
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level))
	}
	if cfg.File != "" {
		enc, err := newEncoder(cfg, false)
		if err != nil {
			return err
		}
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		})
		cores = append(cores, zapcore.NewCore(enc, sink, level))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return nil
}

// newEncoder returns the console or json encoder named by cfg.Format. Color
// only applies to the console encoding.
func newEncoder(cfg config.LoggingConfig, color bool) (zapcore.Encoder, error) {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeCaller = zapcore.ShortCallerEncoder
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.TimeLayout != "" {
		ec.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeLayout)
	}

	switch cfg.Format {
	case "", "console":
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		if color {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		ec.ConsoleSeparator = " "
		return zapcore.NewConsoleEncoder(ec), nil
	case "json":
		return zapcore.NewJSONEncoder(ec), nil
	default:
		return nil, fmt.Errorf("logging format %q: want console or json", cfg.Format)
	}
}

// Named returns a child of the root logger, e.g. Named("combat"). Call it
// after Init; a child taken earlier keeps discarding.
func Named(name string) *zap.Logger {
	return Log.Named(name)
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}
