package ui

import (
	"bytes"
	"testing"
)

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	Warn("auth file missing")

	if got := buf.String(); got != "Warning: auth file missing\n" {
		t.Errorf("Warn output = %q, want %q", got, "Warning: auth file missing\n")
	}
}

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	Warnf("no credential file found for %s", "codex")

	want := "Warning: no credential file found for codex\n"
	if got := buf.String(); got != want {
		t.Errorf("Warnf output = %q, want %q", got, want)
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	Error("image build failed")

	if got := buf.String(); got != "Error: image build failed\n" {
		t.Errorf("Error output = %q, want %q", got, "Error: image build failed\n")
	}
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	Errorf("unknown agent %q", "claude")

	want := "Error: unknown agent \"claude\"\n"
	if got := buf.String(); got != want {
		t.Errorf("Errorf output = %q, want %q", got, want)
	}
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	Infof("using image %s", "bailey-codex")

	want := "using image bailey-codex\n"
	if got := buf.String(); got != want {
		t.Errorf("Infof output = %q, want %q", got, want)
	}
}

func TestColorCodes(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	if got := Green("ok"); got != "\033[32mok\033[0m" {
		t.Errorf("Green = %q", got)
	}
	if got := Red("bad"); got != "\033[31mbad\033[0m" {
		t.Errorf("Red = %q", got)
	}
	if got := Bold("title"); got != "\033[1mtitle\033[0m" {
		t.Errorf("Bold = %q", got)
	}
}

func TestColorDisabled(t *testing.T) {
	SetColorEnabled(false)

	if got := Yellow("warn"); got != "warn" {
		t.Errorf("Yellow with color disabled = %q, want %q", got, "warn")
	}
	if got := OKTag(); got != "✓" {
		t.Errorf("OKTag with color disabled = %q, want %q", got, "✓")
	}
}
