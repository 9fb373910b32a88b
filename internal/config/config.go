// Package config provides YAML-based game configuration loading for the
// shooting gallery.
package config

import "time"

// GalleryConfig contains all configuration for the shooting gallery.
type GalleryConfig struct {
	Field       GalleryField       `yaml:"field"`
	Session     GallerySession     `yaml:"session"`
	Targets     GalleryTargets     `yaml:"targets"`
	Projectile  GalleryProjectile  `yaml:"projectile"`
	Scoring     GalleryScoring     `yaml:"scoring"`
	Leaderboard GalleryLeaderboard `yaml:"leaderboard"`
}

// GalleryField defines the play-field geometry in field units.
type GalleryField struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	PlayerZone float64 `yaml:"player_zone"` // Fraction of height reserved for the player
}

// SpawnHeight returns the height of the band targets may occupy.
func (f GalleryField) SpawnHeight() float64 {
	return f.Height * (1 - f.PlayerZone)
}

// GallerySession defines session timing and health.
type GallerySession struct {
	Duration          time.Duration `yaml:"duration"`
	CountdownInterval time.Duration `yaml:"countdown_interval"`
	MaxHealth         int           `yaml:"max_health"`
}

// GalleryTargets defines target spawning parameters.
type GalleryTargets struct {
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	MinSize       float64       `yaml:"min_size"`
	MaxSize       float64       `yaml:"max_size"`
	MinTTL        time.Duration `yaml:"min_ttl"`
	MaxTTL        time.Duration `yaml:"max_ttl"`
	DangerChance  float64       `yaml:"danger_chance"`
}

// GalleryProjectile defines projectile motion.
type GalleryProjectile struct {
	Speed        float64 `yaml:"speed"`         // Units per frame, upward
	LaunchOffset float64 `yaml:"launch_offset"` // Distance above the baseline
}

// GalleryScoring defines score and health deltas.
type GalleryScoring struct {
	EnemyHit       int `yaml:"enemy_hit"`
	CivilianHit    int `yaml:"civilian_hit"`
	CivilianDamage int `yaml:"civilian_damage"`
	EscapeDamage   int `yaml:"escape_damage"`
}

// GalleryLeaderboard defines leaderboard capacity and seed entries.
type GalleryLeaderboard struct {
	Size       int             `yaml:"size"`
	NameMaxLen int             `yaml:"name_max_len"`
	Entries    []ScoreSeedItem `yaml:"entries"`
}

// ScoreSeedItem is a leaderboard entry present before any session is played.
type ScoreSeedItem struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}
