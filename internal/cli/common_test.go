package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/danieljhkim/dirstatus/internal/status"
)

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	rec := &status.Record{Path: "/p", Branch: "main", FileStates: map[string]uint64{"M": 2}}

	if err := outputJSON(&buf, rec); err != nil {
		t.Fatalf("outputJSON() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("outputJSON() produced invalid JSON: %v", err)
	}
	if got["path"] != "/p" || got["branch"] != "main" {
		t.Errorf("unexpected JSON: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("expected indented JSON, got %q", buf.String())
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("store unavailable"))

	if got := buf.String(); got != "✗ store unavailable\n" {
		t.Errorf("expected plain error message, got %q", got)
	}
}

func TestPrintError_NoColorForFiles(t *testing.T) {
	// Force colors on globally, as when stdout is a terminal.
	oldNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = oldNoColor }()

	f, err := os.CreateTemp(t.TempDir(), "stderr-*")
	if err != nil {
		t.Fatalf("CreateTemp() error = %v", err)
	}
	defer f.Close()

	PrintError(f, errors.New("store unavailable"))

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Errorf("expected no escape codes in file output, got %q", data)
	}
	if !strings.Contains(string(data), "store unavailable") {
		t.Errorf("expected error message, got %q", data)
	}
}
