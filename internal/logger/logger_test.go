package logger

import (
	"bytes"
	"os"
	"testing"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer resetLogger()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("read %d bytes", 42)

	if buf.String() != "[DEBUG] read 42 bytes\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("test message")
	Step("tables", "test message")
	Section("Test")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestStep(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Step("code_blocks", "%d -> %d bytes", 120, 80)

	if buf.String() != "[STEP] code_blocks: 120 -> 80 bytes\n" {
		t.Errorf("unexpected step output: %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Convert")

	if buf.String() != "\n=== Convert ===\n" {
		t.Errorf("unexpected section output: %q", buf.String())
	}
}

func TestInfo(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("wrote %s", "out.docx")

	if buf.String() != "[INFO] wrote out.docx\n" {
		t.Errorf("unexpected info output: %q", buf.String())
	}
}

func TestWarn_AlwaysShown(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Warn("unknown key %q", "foo")

	if buf.String() != "[WARN] unknown key \"foo\"\n" {
		t.Errorf("unexpected warn output: %q", buf.String())
	}
}

func TestSetOutput_Nil(t *testing.T) {
	defer resetLogger()

	SetOutput(nil)
	SetVerbose(true)

	// Must not panic
	Debug("discarded")
}
