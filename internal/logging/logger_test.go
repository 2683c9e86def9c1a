package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Expected nop logger when no level is configured")
	}
}

func TestLogTabRejected(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogTabRejected("settings", "missing", "Unknown Tab", "no such tab in group")

	entries := logs.FilterMessage("Tab switch rejected").All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("Level = %v, want warn", entries[0].Level)
	}
	fields := entries[0].ContextMap()
	if fields["group"] != "settings" || fields["tab"] != "missing" {
		t.Errorf("Unexpected fields: %v", fields)
	}
}

func TestErrorLogsAtErrorLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	Info("dropped")
	Error("Command failed", zap.String("command", "show"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry at warn or above, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel || entries[0].Message != "Command failed" {
		t.Errorf("Unexpected entry: %v %q", entries[0].Level, entries[0].Message)
	}
}

func TestLogTabSwitchOmitsEmptyControl(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogTabSwitch("settings", "general", "advanced", "")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["control"]; ok {
		t.Error("control field should be omitted for programmatic selection")
	}
}
