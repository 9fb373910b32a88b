package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/gallery.yaml
var defaultGalleryYAML []byte

// DefaultGalleryConfig returns the default shooting gallery configuration.
func DefaultGalleryConfig() GalleryConfig {
	return GalleryConfig{
		Field: GalleryField{
			Width:      896,
			Height:     384,
			PlayerZone: 0.2,
		},
		Session: GallerySession{
			Duration:          60 * time.Second,
			CountdownInterval: time.Second,
			MaxHealth:         3,
		},
		Targets: GalleryTargets{
			SpawnInterval: 3 * time.Second,
			MinSize:       30,
			MaxSize:       70,
			MinTTL:        time.Second,
			MaxTTL:        3 * time.Second,
			DangerChance:  0.3,
		},
		Projectile: GalleryProjectile{
			Speed:        10,
			LaunchOffset: 20,
		},
		Scoring: GalleryScoring{
			EnemyHit:       10,
			CivilianHit:    -5,
			CivilianDamage: 1,
			EscapeDamage:   1,
		},
		Leaderboard: GalleryLeaderboard{
			Size:       5,
			NameMaxLen: 15,
			Entries: []ScoreSeedItem{
				{Name: "Jason Bourne", Score: 42},
				{Name: "Nicky Parsons", Score: 37},
				{Name: "Pamela Landy", Score: 32},
				{Name: "Aaron Cross", Score: 29},
				{Name: "Alexander Conklin", Score: 25},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGalleryYAML
}
