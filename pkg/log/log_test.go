package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	SetLevel(Notice)
	defer SetLevel(Notice)

	logger := New("test")
	logger.Info("hidden info line")
	logger.Notice("visible notice line")

	out := buf.String()
	if strings.Contains(out, "hidden info line") {
		t.Errorf("Info message should be filtered at Notice level, got %q", out)
	}
	if !strings.Contains(out, "visible notice line") {
		t.Errorf("Expected notice message in output, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("depth %d", 7)
	if !strings.Contains(buf.String(), "depth 7") {
		t.Errorf("Expected debug message after raising verbosity, got %q", buf.String())
	}
}
