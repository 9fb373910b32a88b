package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseGallery(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultGalleryConfig()) {
		t.Errorf("embedded YAML differs from DefaultGalleryConfig()\nyaml: %+v\ncode: %+v", cfg, DefaultGalleryConfig())
	}
}

func TestParseGalleryPartialKeepsDefaults(t *testing.T) {
	data := []byte(`
session:
  duration: 30s
targets:
  danger_chance: 0.5
`)

	cfg, err := ParseGallery(data)
	if err != nil {
		t.Fatalf("ParseGallery() failed: %v", err)
	}

	if cfg.Session.Duration != 30*time.Second {
		t.Errorf("Duration = %s, expected 30s", cfg.Session.Duration)
	}
	if cfg.Targets.DangerChance != 0.5 {
		t.Errorf("DangerChance = %g, expected 0.5", cfg.Targets.DangerChance)
	}
	if cfg.Session.MaxHealth != 3 {
		t.Errorf("MaxHealth should keep default 3, got %d", cfg.Session.MaxHealth)
	}
	if cfg.Projectile.Speed != 10 {
		t.Errorf("Speed should keep default 10, got %g", cfg.Projectile.Speed)
	}
}

func TestParseGalleryRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{"inverted size range", "targets:\n  min_size: 80\n  max_size: 40\n", "INVALID_SIZE_RANGE"},
		{"zero ttl", "targets:\n  min_ttl: 0s\n", "INVALID_TTL_RANGE"},
		{"field too small", "field:\n  width: 50\n", "FIELD_TOO_SMALL"},
		{"no health", "session:\n  max_health: 0\n", "INVALID_HEALTH"},
		{"chance over one", "targets:\n  danger_chance: 1.5\n", "INVALID_DANGER_CHANCE"},
		{"stopped projectile", "projectile:\n  speed: 0\n", "INVALID_SPEED"},
		{"launch above field", "projectile:\n  launch_offset: 400\n", "INVALID_LAUNCH_OFFSET"},
		{"launch below baseline", "projectile:\n  launch_offset: -5\n", "INVALID_LAUNCH_OFFSET"},
		{"negative civilian damage", "scoring:\n  civilian_damage: -1\n", "INVALID_SCORING"},
		{"negative escape damage", "scoring:\n  escape_damage: -2\n", "INVALID_SCORING"},
		{"negative name length", "leaderboard:\n  name_max_len: -1\n", "INVALID_LEADERBOARD"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGallery([]byte(tc.yaml))
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}
}

func TestLoadGalleryCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	if err := os.WriteFile(path, []byte("session:\n  max_health: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGallery(path)
	if err != nil {
		t.Fatalf("LoadGallery() failed: %v", err)
	}
	if cfg.Session.MaxHealth != 5 {
		t.Errorf("MaxHealth = %d, expected 5", cfg.Session.MaxHealth)
	}
}

func TestLoadGalleryMissingCustomPath(t *testing.T) {
	_, err := LoadGallery(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := DefaultGalleryConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := ParseGallery(data)
	if err != nil {
		t.Fatalf("ParseGallery() of marshaled config failed: %v", err)
	}
	if cfg.Session.Duration != time.Minute {
		t.Errorf("Duration = %s, expected 1m0s", cfg.Session.Duration)
	}
}
