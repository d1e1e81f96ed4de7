package main

import (
	"go.uber.org/zap"

	"github.com/respkv/client/internal/config"
	"github.com/respkv/client/internal/obslog"
)

// buildLogger translates a resolved connection config's Log section into
// a *zap.Logger, converting the config's plain level string (whatever
// --config's YAML or the defaults set in conn.Log.Level) into the
// zapcore.Level obslog.Options expects.
func buildLogger(conn config.Connection) (*zap.Logger, error) {
	return obslog.New(obslog.Options{
		Stdout:     conn.Log.Stdout,
		Level:      obslog.ParseLevel(conn.Log.Level),
		Filename:   conn.Log.Filename,
		MaxSizeMB:  conn.Log.MaxSizeMB,
		MaxAgeDays: conn.Log.MaxAgeDays,
		MaxBackups: conn.Log.MaxBackups,
	})
}
