package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGallery loads the shooting gallery configuration.
// Search order: customPath -> ~/.gallery/configs/gallery.yaml -> ./configs/gallery.yaml -> embedded default.
// Values missing from a file keep their defaults. The result is validated.
func LoadGallery(customPath string) (GalleryConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GalleryConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseGallery(data)
		if err != nil {
			return GalleryConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("gallery.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseGallery(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/gallery.yaml"); err == nil {
		if cfg, err := ParseGallery(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseGallery(defaultGalleryYAML)
	if err != nil {
		return DefaultGalleryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseGallery decodes YAML over the hardcoded defaults and validates the result.
func ParseGallery(data []byte) (GalleryConfig, error) {
	cfg := DefaultGalleryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GalleryConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GalleryConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c GalleryConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gallery", "configs", filename)
}
