package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}

	if cfg.Flurry.Sparks != 12 {
		t.Errorf("sparks = %d, want 12", cfg.Flurry.Sparks)
	}
	if cfg.Smoke.SpawnRate != 121 {
		t.Errorf("spawn_rate = %v, want 121", cfg.Smoke.SpawnRate)
	}
	if cfg.Derived.DeathSpeedSq != 25000000 {
		t.Errorf("death speed^2 = %v, want 25000000", cfg.Derived.DeathSpeedSq)
	}
	if cfg.Derived.SpawnInterval != 1.0/121.0 {
		t.Errorf("spawn interval = %v, want 1/121", cfg.Derived.SpawnInterval)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flurry.yaml")
	if err := os.WriteFile(path, []byte("flurry:\n  streams: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Flurry.Streams != 3 {
		t.Errorf("streams = %d, want 3", cfg.Flurry.Streams)
	}
	if cfg.Flurry.Sparks != 12 {
		t.Errorf("sparks = %d, want default 12", cfg.Flurry.Sparks)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero streams", "flurry:\n  streams: 0\n"},
		{"too many streams", "flurry:\n  streams: 13\n"},
		{"negative sparks", "flurry:\n  sparks: -1\n"},
		{"zero spawn rate", "smoke:\n  spawn_rate: 0\n"},
		{"drag above one", "smoke:\n  drag_base: 1.5\n"},
		{"inverted rot speed", "star:\n  min_rot_speed: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Flurry.Streams = 5

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if back.Flurry.Streams != 5 {
		t.Errorf("streams = %d, want 5", back.Flurry.Streams)
	}
}
