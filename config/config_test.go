package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"logsense/config"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alt.yaml")
	body := []byte("http_server:\n  port: 9999\nanalysis:\n  long_text_threshold: 1234\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.HTTPServer.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.HTTPServer.Port)
	}
	if cfg.Analysis.LongTextThreshold != 1234 {
		t.Errorf("LongTextThreshold = %d, want 1234", cfg.Analysis.LongTextThreshold)
	}

	// Keys absent from the file keep their defaults.
	if cfg.HTTPServer.Mode != "debug" {
		t.Errorf("Mode = %q, want default %q", cfg.HTTPServer.Mode, "debug")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
