package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestServerConfig_DefaultsWhenEmpty(t *testing.T) {
	c := Empty()
	if c.GetListenAddr() != "0.0.0.0:50051" {
		t.Errorf("unexpected default listen addr: %s", c.GetListenAddr())
	}
	if c.GetMediaRoot() != "." {
		t.Errorf("unexpected default media root: %s", c.GetMediaRoot())
	}
	if c.GetWindowWidth() != 1280 || c.GetWindowHeight() != 720 {
		t.Errorf("unexpected default window size: %dx%d", c.GetWindowWidth(), c.GetWindowHeight())
	}
	if c.GetMaxSubscribers() != 0 {
		t.Errorf("expected unlimited default, got %d", c.GetMaxSubscribers())
	}
	if c.GetDefaultRate() != 1.0 {
		t.Errorf("expected default rate 1.0, got %v", c.GetDefaultRate())
	}
}

func TestLoad_PartialConfigKeepsOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"listen_addr": "127.0.0.1:9000"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.GetListenAddr() != "127.0.0.1:9000" {
		t.Errorf("expected configured listen addr, got %s", c.GetListenAddr())
	}
	if c.GetWindowWidth() != 1280 {
		t.Errorf("expected default window width, got %d", c.GetWindowWidth())
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"window_width": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for window_width=0")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.json"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
