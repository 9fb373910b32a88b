package gallery

import "github.com/vovakirdan/tui-gallery/internal/config"

// Hit pairs a projectile with the target it struck.
type Hit struct {
	ProjectileID uint64
	TargetID     uint64
	Dangerous    bool
}

// Resolution is the outcome of one collision pass.
// Deltas are totals for the whole frame and are applied once by the caller.
type Resolution struct {
	Projectiles  []Projectile // Survivors, in input order
	Targets      []Target     // Survivors, in input order
	Hits         []Hit
	ScoreDelta   int
	HealthDamage int
}

// Resolve matches projectiles against targets. Each projectile consumes at
// most one target: the first live one, in target order, whose hit circle
// strictly contains the projectile. The inputs are not modified.
func Resolve(projectiles []Projectile, targets []Target, scoring config.GalleryScoring) Resolution {
	res := Resolution{
		Projectiles: make([]Projectile, 0, len(projectiles)),
	}
	consumed := make([]bool, len(targets))

	for _, p := range projectiles {
		hit := -1
		for j, t := range targets {
			if consumed[j] {
				continue
			}
			if t.Hitbox().Contains(p.Pos()) {
				hit = j
				break
			}
		}

		if hit < 0 {
			res.Projectiles = append(res.Projectiles, p)
			continue
		}

		t := targets[hit]
		consumed[hit] = true
		res.Hits = append(res.Hits, Hit{ProjectileID: p.ID, TargetID: t.ID, Dangerous: t.Dangerous})

		if t.Dangerous {
			res.ScoreDelta += scoring.CivilianHit
			res.HealthDamage += scoring.CivilianDamage
		} else {
			res.ScoreDelta += scoring.EnemyHit
		}
	}

	res.Targets = make([]Target, 0, len(targets)-len(res.Hits))
	for j, t := range targets {
		if !consumed[j] {
			res.Targets = append(res.Targets, t)
		}
	}

	return res
}
