package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"taskport/internal/config"
)

// chdir changes into dir and restores the previous working directory at
// cleanup; it stands in for t.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore chdir %s: %v", prev, err)
		}
	})
}

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Output.Language != "en" {
		t.Fatalf("unexpected default language: %q", cfg.Output.Language)
	}
	if cfg.Output.IncludeCompleted {
		t.Fatal("expected completed tasks excluded by default")
	}
	if !cfg.Output.FlattenSubtasks {
		t.Fatal("expected subtask flattening enabled by default")
	}
	if !cfg.Output.BOM {
		t.Fatal("expected BOM enabled by default")
	}
	if cfg.Output.DefaultFile != "asana_import.csv" {
		t.Fatalf("unexpected default file: %q", cfg.Output.DefaultFile)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "taskport.toml")

	type payload struct {
		Output struct {
			Assignee string `toml:"assignee"`
			Language string `toml:"language"`
		} `toml:"output"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Output.Assignee = "john.doe@example.com"
	custom.Output.Language = "DE"
	custom.Logging.Format = "json"

	encoded, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, encoded, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Output.Assignee != "john.doe@example.com" {
		t.Fatalf("unexpected assignee: %q", cfg.Output.Assignee)
	}
	if cfg.Output.Language != "de" {
		t.Fatalf("expected language normalized to lowercase, got %q", cfg.Output.Language)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging format: %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsUnknownLanguage(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "taskport.toml")
	if err := os.WriteFile(configPath, []byte("[output]\nlanguage = \"fr\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected validation error for unsupported language")
	}
}

func TestLoadRejectsBadAssignee(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "taskport.toml")
	if err := os.WriteFile(configPath, []byte("[output]\nassignee = \"not-an-email\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected validation error for malformed assignee")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "nested", "config.toml")

	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load of sample config failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Output.Language != "en" {
		t.Fatalf("unexpected sample language: %q", cfg.Output.Language)
	}
}
