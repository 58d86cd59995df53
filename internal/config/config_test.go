package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ContentDir != "content/posts" {
		t.Errorf("ContentDir = %q, want default", cfg.ContentDir)
	}
	if cfg.DefaultLanguage() != "en" {
		t.Errorf("DefaultLanguage() = %q, want %q", cfg.DefaultLanguage(), "en")
	}
	if cfg.Dev.Port != 5173 {
		t.Errorf("Dev.Port = %d, want 5173", cfg.Dev.Port)
	}
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	data := `{
		"site": {"title": "My Site", "author": "Jane Doe"},
		"languages": ["de", "en"],
		"dev": {"port": 3000}
	}`
	if err := os.WriteFile(filepath.Join(dir, "portfolio.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Site.Title != "My Site" {
		t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "My Site")
	}
	if cfg.DefaultLanguage() != "de" {
		t.Errorf("DefaultLanguage() = %q, want %q", cfg.DefaultLanguage(), "de")
	}
	if cfg.Dev.Port != 3000 {
		t.Errorf("Dev.Port = %d, want 3000", cfg.Dev.Port)
	}
	if cfg.Dev.Host != "localhost" {
		t.Errorf("Dev.Host = %q, want default host", cfg.Dev.Host)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("OutputDir = %q, want default", cfg.OutputDir)
	}
}

func TestLoad_InvalidLanguage(t *testing.T) {
	dir := t.TempDir()
	data := `{"languages": ["english"]}`
	if err := os.WriteFile(filepath.Join(dir, "portfolio.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected validation error for non-two-letter language")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "portfolio.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
