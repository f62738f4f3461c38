package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todoboard/internal/config"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "chatty"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todoboard.log")
	log, err := New(config.LogConfig{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("hello file")
	log.Debug("below level")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file missing entry: %s", data)
	}
	if strings.Contains(string(data), "below level") {
		t.Errorf("debug entry written at info level: %s", data)
	}
}
