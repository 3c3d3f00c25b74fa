package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize defaults: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatalf("expected exists=false for missing file at %s", path)
	}
	if cfg.Convert.Quality != defaultQuality {
		t.Fatalf("expected default quality %d, got %d", defaultQuality, cfg.Convert.Quality)
	}
	if cfg.FFmpeg.Preset != defaultFFmpegPreset {
		t.Fatalf("expected default preset, got %q", cfg.FFmpeg.Preset)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[convert]",
		`quality = 80`,
		`image_extensions = ["HEIC", "heic", "heif"]`,
		`video_extensions = [".MOV"]`,
		"[ffmpeg]",
		`preset = "Medium"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected config to be found, exists=%v path=%q", exists, resolved)
	}
	if cfg.Convert.Quality != 80 {
		t.Fatalf("expected quality 80, got %d", cfg.Convert.Quality)
	}
	wantImages := []string{".heic", ".heif"}
	if len(cfg.Convert.ImageExtensions) != len(wantImages) {
		t.Fatalf("expected deduplicated extensions %v, got %v", wantImages, cfg.Convert.ImageExtensions)
	}
	for i, ext := range wantImages {
		if cfg.Convert.ImageExtensions[i] != ext {
			t.Fatalf("expected extension %q at %d, got %v", ext, i, cfg.Convert.ImageExtensions)
		}
	}
	if cfg.Convert.VideoExtensions[0] != ".mov" {
		t.Fatalf("expected lowercased .mov, got %v", cfg.Convert.VideoExtensions)
	}
	if cfg.FFmpeg.Preset != "medium" {
		t.Fatalf("expected lowercased preset, got %q", cfg.FFmpeg.Preset)
	}
}

func TestLoadRejectsQualityOutOfRange(t *testing.T) {
	for _, quality := range []string{"0", "101", "-5"} {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := "[convert]\nquality = " + quality + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, _, _, err := Load(path); err == nil {
			t.Fatalf("expected validation error for quality %s", quality)
		}
	}
}

func TestValidateRejectsUnknownPreset(t *testing.T) {
	cfg := Default()
	cfg.FFmpeg.Preset = "blazing"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestValidateRejectsPathLikeOutputDirName(t *testing.T) {
	cfg := Default()
	cfg.Library.OutputDirName = "../escape"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for path-like output_dir_name")
	}
}

func TestOutputRootFor(t *testing.T) {
	cfg := Default()
	got := cfg.OutputRootFor("/photos/2024")
	want := filepath.Join("/photos/2024", "converted")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Convert.Quality != defaultQuality {
		t.Fatalf("sample quality drifted from default: %d", cfg.Convert.Quality)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := ExpandPath("~/media")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "media") {
		t.Fatalf("expected %q, got %q", filepath.Join(home, "media"), got)
	}
}
