package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"assetmanifest/internal/config"
	"assetmanifest/internal/logging"
)

func TestNewFromConfigConsole(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer

	logger, err := logging.NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("debug message")
	logger.Info("image manifest written", slog.String("path", "public/raven-assets/manifest.json"), slog.Int("folders", 3))

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Fatalf("debug line should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, " INFO image manifest written path=public/raven-assets/manifest.json folders=3\n") {
		t.Fatalf("unexpected console output: %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Fatalf("expected no ANSI colors for a buffer writer: %q", out)
	}
}

func TestNewFromConfigColorAndFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Color = logging.ColorAlways
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "assetmanifest.log")
	var buf bytes.Buffer

	logger, err := logging.NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Error("write failed")

	if !strings.Contains(buf.String(), "\033[1;91mERROR\033[0m write failed") {
		t.Fatalf("expected colored line on writer, got %q", buf.String())
	}
	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "write failed") {
		t.Fatalf("log file missing message: %q", content)
	}
}

func TestConsoleLoggerComponentAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "images").Warn("odd name", slog.String("name", "a b=c"), logging.Error(errors.New("boom")))

	out := buf.String()
	if !strings.Contains(out, " WARN images: odd name name=\"a b=c\" error=boom") {
		t.Fatalf("unexpected console output: %q", out)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("message with caller")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerColorAlways(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Writer: &buf, Color: logging.ColorAlways})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Error("failed")
	if !strings.Contains(buf.String(), "\033[1;91mERROR\033[0m") {
		t.Fatalf("expected colored level label, got %q", buf.String())
	}
}

func TestJSONLoggerWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger, runID := logging.WithRunID(logger)
	if _, err := uuid.Parse(runID); err != nil {
		t.Fatalf("run id %q is not a uuid: %v", runID, err)
	}
	logger.Info("scan complete", slog.Int("files", 2))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "scan complete" || payload["level"] != "info" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if payload[logging.FieldRunID] != runID {
		t.Fatalf("expected run id %q, got %v", runID, payload[logging.FieldRunID])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", payload)
	}
}

func TestLoggerWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "assetmanifest.log")
	logger, err := logging.New(logging.Options{Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("to file")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Fatalf("log file missing message: %q", content)
	}
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Fatal("nop logger should not be enabled")
	}
	logger.Error("ignored")
}
