package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

type logRecord struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	originalLogger := Logger
	Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	defer func() { Logger = originalLogger }()

	tests := []struct {
		name  string
		fn    func(msg string, args ...any)
		level string
	}{
		{"Info", Info, "INFO"},
		{"Error", Error, "ERROR"},
		{"Warn", Warn, "WARN"},
		{"Debug", Debug, "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.name + " message")

			var rec logRecord
			if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
				t.Fatalf("failed to unmarshal log output: %v", err)
			}
			if rec.Msg != tt.name+" message" {
				t.Errorf("expected msg %q, got %q", tt.name+" message", rec.Msg)
			}
			if rec.Level != tt.level {
				t.Errorf("expected level %q, got %q", tt.level, rec.Level)
			}
		})
	}
}

func TestSetVerbose(t *testing.T) {
	var buf bytes.Buffer

	originalLogger := Logger
	defer func() {
		Logger = originalLogger
		SetVerbose(false)
	}()
	SetOutput(&buf)

	SetVerbose(false)
	Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug output written while not verbose: %q", buf.String())
	}

	SetVerbose(true)
	Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug output missing while verbose: %q", buf.String())
	}
}
