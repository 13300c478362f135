package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerboseModeShowsDebugMessages(t *testing.T) {
	buf := new(bytes.Buffer)
	log := &Logger{
		level:  LevelInfo,
		output: buf,
	}

	log.Debug("debug message before verbose")
	if strings.Contains(buf.String(), "debug message before verbose") {
		t.Error("Debug message should not appear at Info level")
	}

	log.SetVerbose(true)

	log.Debug("debug message after verbose")
	if !strings.Contains(buf.String(), "debug message after verbose") {
		t.Error("Debug message should appear when verbose is enabled")
	}
}

func TestQuietModeSuppressesInfoMessages(t *testing.T) {
	buf := new(bytes.Buffer)
	log := &Logger{
		level:  LevelInfo,
		output: buf,
	}

	log.Info("info message before quiet")
	if !strings.Contains(buf.String(), "info message before quiet") {
		t.Error("Info message should appear at Info level")
	}

	buf.Reset()

	log.SetQuiet(true)

	log.Info("info message after quiet")
	if strings.Contains(buf.String(), "info message after quiet") {
		t.Error("Info message should not appear in quiet mode")
	}

	log.Error("error message in quiet mode")
	if !strings.Contains(buf.String(), "error message in quiet mode") {
		t.Error("Error messages should still appear in quiet mode")
	}
}

func TestLevelOrdering(t *testing.T) {
	buf := new(bytes.Buffer)
	log := &Logger{
		level:  LevelWarn,
		output: buf,
	}

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	out := buf.String()
	if strings.Contains(out, "d\n") || strings.Contains(out, "i\n") {
		t.Errorf("messages below Warn should be suppressed, got %q", out)
	}
	if !strings.Contains(out, "w") || !strings.Contains(out, "e") {
		t.Errorf("Warn and Error should be logged, got %q", out)
	}
}
