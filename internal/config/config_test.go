package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "naive" {
		t.Errorf("expected algorithm naive, got %s", cfg.Algorithm)
	}
	if cfg.M != 12 || cfg.N != 12 || cfg.K != 12 {
		t.Errorf("expected 12x12x12 default dims, got %dx%dx%d", cfg.M, cfg.N, cfg.K)
	}
	if cfg.Speed <= 0 {
		t.Error("speed should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("cache-blocked")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Algorithm != "tiled" {
		t.Errorf("expected tiled, got %s", cfg.Algorithm)
	}
	if cfg.TileM != 4 {
		t.Errorf("expected tile 4, got %d", cfg.TileM)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		if GetPreset(name) == nil {
			t.Errorf("listed preset %q not resolvable", name)
		}
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.M, cfg.N, cfg.K = 6, 7, 8
	cfg.Algorithm = "tiled"
	cfg.Outer = "kji"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestDims(t *testing.T) {
	cfg := DefaultConfig()
	cfg.M, cfg.N, cfg.K = 2, 3, 4
	d := cfg.Dims()
	if d.M != 2 || d.N != 3 || d.K != 4 {
		t.Errorf("got %v", d)
	}
}
