package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Van0SS/rag-challenge-2/internal/config"
)

func TestApplyOverrides(t *testing.T) {
	cfg := config.Config{
		PDFDir:        "/env/pdfs",
		PDFMetaPath:   "env-meta.json",
		QuestionsPath: "env-questions.json",
		OutputPath:    "env-answers.json",
		LogLevel:      "info",
	}

	applyOverrides(&cfg, Overrides{
		PDFMetaPath: "flag-meta.json",
		LogLevel:    "debug",
	})

	if cfg.PDFMetaPath != "flag-meta.json" {
		t.Errorf("expected flag override, got %s", cfg.PDFMetaPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected flag override, got %s", cfg.LogLevel)
	}
	// Unset flags leave env values alone.
	if cfg.PDFDir != "/env/pdfs" {
		t.Errorf("expected env value, got %s", cfg.PDFDir)
	}
	if cfg.OutputPath != "env-answers.json" {
		t.Errorf("expected env value, got %s", cfg.OutputPath)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir available")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/Downloads/pdfs", filepath.Join(home, "Downloads/pdfs")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~user/path", "~user/path"}, // only the bare ~ form is expanded
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
