package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetLevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stdout)
		SetLevel(Notice)
	}()

	logger := New("test")

	SetLevel(Notice)
	logger.Debugf("suppressed detail %d", 1)
	logger.Noticef("visible message %d", 2)

	out := buf.String()
	if strings.Contains(out, "suppressed detail") {
		t.Fatalf("expected debug output to be filtered at Notice level; got %q", out)
	}
	if !strings.Contains(out, "visible message 2") {
		t.Fatalf("expected notice output at Notice level; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("now visible %d", 3)
	if !strings.Contains(buf.String(), "now visible 3") {
		t.Fatalf("expected debug output at Debug level; got %q", buf.String())
	}

	buf.Reset()
	SetLevel(Info)
	logger.Debug("still suppressed")
	logger.Infof("info message %d", 4)
	out = buf.String()
	if strings.Contains(out, "still suppressed") {
		t.Fatalf("expected debug output to be filtered at Info level; got %q", out)
	}
	if !strings.Contains(out, "info message 4") {
		t.Fatalf("expected info output at Info level; got %q", out)
	}
}
