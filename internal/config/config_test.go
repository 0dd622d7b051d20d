package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultMarginV(t *testing.T) {
	cfg := Default()
	if got := cfg.DefaultMarginV(); got != 78 {
		t.Errorf("DefaultMarginV() = %d, want 78", got)
	}
}

func TestMarginV(t *testing.T) {
	cfg := Default()
	tests := []struct {
		percent float64
		want    int
	}{
		{80, 186},
		{90, 78},
		{10, 942},
		{100, -30},
		{0, 1050},
	}

	for _, tt := range tests {
		if got := cfg.MarginV(tt.percent); got != tt.want {
			t.Errorf("MarginV(%v) = %d, want %d", tt.percent, got, tt.want)
		}
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	content := `video:
  width: 1280
  height: 720
font:
  name: Arial
layout:
  default_line_percent: 85
`
	path := filepath.Join(t.TempDir(), "rang.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Default()
	want.Video.Width = 1280
	want.Video.Height = 720
	want.Font.Name = "Arial"
	want.Layout.DefaultLinePercent = 85

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "video: [1, 2"},
		{"zero height", "video:\n  height: 0\n"},
		{"line percent out of range", "layout:\n  default_line_percent: 120\n"},
		{"negative font size", "font:\n  size: -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rang.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
