// Package obslog builds the *zap.Logger instances used across this
// module. Unlike an agent binary, a library must not install a package
// global logger that every caller inherits; New always returns a fresh
// *zap.Logger for the caller to hold and pass in explicitly (to
// client.Dial, pipeline.New, ...).
package obslog

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger. The zero value logs at info level to
// stdout.
type Options struct {
	Stdout     bool
	Level      zapcore.Level
	Filename   string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

func defaultOptions() Options {
	return Options{Stdout: true, Level: zapcore.InfoLevel}
}

// ParseLevel maps a config-file level string ("debug", "info", "warn",
// "error") to its zapcore.Level, defaulting to info for anything else
// (including the empty string a zero-valued config leaves behind).
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a *zap.Logger per opts. Filename-based rotation is
// delegated to gopkg.in/natefinch/lumberjack.v2, matching
// packetd-packetd's logger/logger.go; Stdout bypasses rotation
// entirely.
func New(opts Options) (*zap.Logger, error) {
	o := defaultOptions()
	if opts.Level != 0 {
		o.Level = opts.Level
	}
	o.Stdout = opts.Stdout || opts.Filename == ""
	o.Filename = opts.Filename
	o.MaxSizeMB = opts.MaxSizeMB
	o.MaxAgeDays = opts.MaxAgeDays
	o.MaxBackups = opts.MaxBackups

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000Z"))
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	var w zapcore.WriteSyncer
	if o.Stdout {
		w = zapcore.AddSync(os.Stdout)
	} else {
		if err := os.MkdirAll(filepath.Dir(o.Filename), 0o755); err != nil {
			return nil, err
		}
		w = zapcore.AddSync(&lumberjack.Logger{
			Filename:   o.Filename,
			MaxSize:    o.MaxSizeMB,
			MaxAge:     o.MaxAgeDays,
			MaxBackups: o.MaxBackups,
			LocalTime:  true,
		})
	}

	core := zapcore.NewCore(encoder, w, o.Level)
	return zap.New(core, zap.AddCaller()), nil
}

// Nop returns a logger that discards everything, for callers that do not
// want logging at all.
func Nop() *zap.Logger { return zap.NewNop() }
