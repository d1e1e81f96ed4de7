package main

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/respkv/client/internal/config"
)

func TestBuildLoggerHonorsConfiguredLevel(t *testing.T) {
	conn := config.Connection{Log: config.LogOptions{Stdout: true, Level: "debug"}}
	logger, err := buildLogger(conn)
	if err != nil {
		t.Fatalf("buildLogger: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("logger built from log.level=debug should have debug enabled")
	}
}

func TestBuildLoggerHonorsWarnLevel(t *testing.T) {
	conn := config.Connection{Log: config.LogOptions{Stdout: true, Level: "warn"}}
	logger, err := buildLogger(conn)
	if err != nil {
		t.Fatalf("buildLogger: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("logger built from log.level=warn should not have info enabled")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("logger built from log.level=warn should have warn enabled")
	}
}

func TestBuildLoggerHonorsErrorLevel(t *testing.T) {
	conn := config.Connection{
		Network: "tcp",
		Address: "127.0.0.1:0",
		Log:     config.LogOptions{Stdout: true, Level: "error"},
	}
	logger, err := buildLogger(conn)
	if err != nil {
		t.Fatalf("buildLogger: %v", err)
	}
	if logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("logger built from log.level=error should not have warn enabled")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("logger built from log.level=error should have error enabled")
	}
}
