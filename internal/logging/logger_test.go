// Package logging tests for the structured logger.
package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")

	logger.Info("media imported", map[string]interface{}{"count": 3})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\noutput: %s", err, buf.String())
	}
	if entry["msg"] != "media imported" {
		t.Errorf("msg = %v, want %q", entry["msg"], "media imported")
	}
	if entry["count"] != float64(3) {
		t.Errorf("count = %v, want 3", entry["count"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Debug("noise")
	logger.Info("also noise")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn level, got: %s", buf.String())
	}

	logger.Warn("stored payload looked odd")
	if buf.Len() == 0 {
		t.Error("expected warn output")
	}
}

func TestLoggerErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")

	logger.Error("failed to save media", errors.New("disk full"))

	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("error output missing cause: %s", buf.String())
	}
}

func TestLoggerUnknownLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "shouty")

	logger.Info("still works")
	if buf.Len() == 0 {
		t.Error("unknown level should fall back to info, not drop output")
	}
}

func TestLoggerMergesContextMaps(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")

	logger.Info("merged",
		map[string]interface{}{"a": "1"},
		map[string]interface{}{"b": "2"},
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["a"] != "1" || entry["b"] != "2" {
		t.Errorf("context maps not merged: %v", entry)
	}
}
