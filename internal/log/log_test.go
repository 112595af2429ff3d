package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_StderrLevels(t *testing.T) {
	var stderr bytes.Buffer

	if err := Init(Options{
		Verbose: false,
		Stderr:  &stderr,
	}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	output := stderr.String()

	// Debug and Info should NOT appear on stderr
	if strings.Contains(output, "debug message") {
		t.Error("debug should not appear on stderr in non-verbose mode")
	}
	if strings.Contains(output, "info message") {
		t.Error("info should not appear on stderr in non-verbose mode")
	}

	// Warn and Error SHOULD appear
	if !strings.Contains(output, "warn message") {
		t.Error("warn should appear on stderr")
	}
	if !strings.Contains(output, "error message") {
		t.Error("error should appear on stderr")
	}
}

func TestInit_Verbose(t *testing.T) {
	var stderr bytes.Buffer

	if err := Init(Options{
		Verbose: true,
		Stderr:  &stderr,
	}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debug("debug message")
	Info("info message")

	output := stderr.String()
	if !strings.Contains(output, "debug message") {
		t.Error("debug should appear on stderr in verbose mode")
	}
	if !strings.Contains(output, "info message") {
		t.Error("info should appear on stderr in verbose mode")
	}
}

func TestInit_JSONFormat(t *testing.T) {
	var stderr bytes.Buffer

	if err := Init(Options{
		JSONFormat: true,
		Stderr:     &stderr,
	}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Warn("structured message", "key", "value")

	output := stderr.String()
	if !strings.Contains(output, `"msg":"structured message"`) {
		t.Errorf("expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("expected JSON attribute, got: %s", output)
	}
}

func TestInit_LevelFromEnv(t *testing.T) {
	tests := []struct {
		env       string
		wantDebug bool
		wantErr   bool
	}{
		{env: "debug", wantDebug: true},
		{env: "DEBUG", wantDebug: true},
		{env: "warn", wantDebug: false},
		{env: "error", wantDebug: false},
		{env: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("BAILEY_LOG_LEVEL", tt.env)

			var stderr bytes.Buffer
			err := Init(Options{Stderr: &stderr})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for invalid level")
				}
				return
			}
			if err != nil {
				t.Fatalf("Init failed: %v", err)
			}

			Debug("debug message")
			got := strings.Contains(stderr.String(), "debug message")
			if got != tt.wantDebug {
				t.Errorf("debug visible = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestInit_FormatFromEnv(t *testing.T) {
	t.Setenv("BAILEY_LOG_FORMAT", "json")

	var stderr bytes.Buffer
	if err := Init(Options{Stderr: &stderr}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Warn("env format message")
	if !strings.Contains(stderr.String(), `"msg":"env format message"`) {
		t.Errorf("expected JSON output via env override, got: %s", stderr.String())
	}
}

func TestInit_InvalidFormatFromEnv(t *testing.T) {
	t.Setenv("BAILEY_LOG_FORMAT", "yaml")

	if err := Init(Options{}); err == nil {
		t.Fatal("expected error for invalid BAILEY_LOG_FORMAT")
	}
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("captured debug")

	if !strings.Contains(buf.String(), "captured debug") {
		t.Errorf("expected captured output, got: %s", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	With("agent", "codex").Info("resolved")

	output := buf.String()
	if !strings.Contains(output, "agent=codex") {
		t.Errorf("expected attached attribute in output, got: %s", output)
	}
}
