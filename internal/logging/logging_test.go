package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuild_ConsoleAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thinkwise.log")
	var console bytes.Buffer

	logger, closer, err := build(Options{Level: "debug", File: path}, zapcore.AddSync(&console))
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("graded", zap.Int("score", 85))
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if !strings.Contains(console.String(), "graded") {
		t.Errorf("console output = %q", console.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &line); err != nil {
		t.Fatalf("file line is not JSON: %v\n%s", err, data)
	}
	if line["msg"] != "graded" || line["score"] != float64(85) {
		t.Errorf("file line = %v", line)
	}
}

func TestBuild_Level(t *testing.T) {
	var console bytes.Buffer
	logger, _, err := build(Options{Level: "warn"}, zapcore.AddSync(&console))
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(console.String(), "hidden") || !strings.Contains(console.String(), "shown") {
		t.Errorf("console output = %q", console.String())
	}

	if _, _, err := build(Options{Level: "loud"}, zapcore.AddSync(&console)); err == nil {
		t.Error("expected error for unknown level")
	}
}
