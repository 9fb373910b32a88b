package gallery

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-gallery/internal/config"
)

// Spawner produces targets with randomized geometry, lifetime and allegiance.
type Spawner struct {
	cfg   config.GalleryTargets
	field config.GalleryField
	rng   *rand.Rand
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, field config.GalleryField, cfg config.GalleryTargets) *Spawner {
	return &Spawner{
		cfg:   cfg,
		field: field,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Reset reseeds the RNG.
func (sp *Spawner) Reset(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
}

// Next draws a new target. The target fits entirely inside the field width
// and the spawn band above the player zone.
func (sp *Spawner) Next(id uint64, now time.Duration) Target {
	size := sp.cfg.MinSize + sp.rng.Float64()*(sp.cfg.MaxSize-sp.cfg.MinSize)

	x := sp.rng.Float64() * (sp.field.Width - size)
	y := sp.rng.Float64() * (sp.field.SpawnHeight() - size)

	ttl := sp.cfg.MinTTL
	if span := sp.cfg.MaxTTL - sp.cfg.MinTTL; span > 0 {
		ttl += time.Duration(sp.rng.Int63n(int64(span) + 1))
	}

	return Target{
		ID:        id,
		X:         x,
		Y:         y,
		Size:      size,
		TTL:       ttl,
		Dangerous: sp.rng.Float64() < sp.cfg.DangerChance,
		SpawnedAt: now,
	}
}
