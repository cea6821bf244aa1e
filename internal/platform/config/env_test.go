package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"CHARACTER_GALLERY_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CHARACTER_GALLERY_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDotEnvSkipsMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), ""); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
}

func TestLoadDotEnvExportsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "CHARACTER_GALLERY_TEST_PORT=9090\nCHARACTER_GALLERY_TEST_DOTENV_ONLY=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	// t.Setenv registers cleanup; Unsetenv lets the file supply the value.
	t.Setenv("CHARACTER_GALLERY_TEST_DOTENV_ONLY", "")
	os.Unsetenv("CHARACTER_GALLERY_TEST_DOTENV_ONLY")
	t.Setenv("CHARACTER_GALLERY_TEST_PORT", "7070")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("CHARACTER_GALLERY_TEST_DOTENV_ONLY"); got != "from-file" {
		t.Fatalf("dotenv value = %q, want %q", got, "from-file")
	}

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 7070 {
		t.Fatalf("expected existing env to win, got %d", cfg.Port)
	}
}

func TestLoadDotEnvRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BAD-KEY=value\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	if err := LoadDotEnv(path); err == nil {
		t.Fatal("expected malformed dotenv error")
	}
}
