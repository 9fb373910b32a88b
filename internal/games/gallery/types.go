// Package gallery implements a timed shooting-gallery game.
// The player moves a sight across the field and fires upward from the baseline.
// Enemy targets score when hit and cost health when they escape; civilian
// targets cost health and score when hit.
package gallery

import (
	"time"

	"github.com/vovakirdan/tui-gallery/internal/core"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusEnded
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason records why a session ended.
type EndReason string

const (
	EndNone     EndReason = ""
	EndTime     EndReason = "time"
	EndHealth   EndReason = "health"
	EndDisposed EndReason = "disposed"
)

// Target is a spawned entity the player may shoot.
type Target struct {
	ID        uint64
	X, Y      float64 // Top-left corner in field units
	Size      float64 // Diameter
	TTL       time.Duration
	Dangerous bool          // Civilian; never changes after spawn
	SpawnedAt time.Duration // Simulated time of spawn
}

// Bounds returns the bounding box of the target.
func (t Target) Bounds() core.Rect {
	return core.NewRect(t.X, t.Y, t.Size, t.Size)
}

// Hitbox returns the circular hit area of the target.
func (t Target) Hitbox() core.Circle {
	return core.Circle{Center: t.Bounds().Center(), Radius: t.Size / 2}
}

// Projectile is a shot travelling up the field.
type Projectile struct {
	ID    uint64
	X, Y  float64
	Speed float64 // Units per frame, upward
}

// Pos returns the projectile position as a point.
func (p Projectile) Pos() core.Vec {
	return core.Vec{X: p.X, Y: p.Y}
}

// RunStats counts what happened during one session.
type RunStats struct {
	ShotsFired      int
	EnemyHits       int
	CivilianHits    int
	EnemyEscapes    int
	CivilianEscapes int
	Spawned         int
	Elapsed         time.Duration
}
