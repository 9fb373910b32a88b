package gallery

import "github.com/vovakirdan/tui-gallery/internal/config"

// launchY returns the y-coordinate new projectiles start from.
func launchY(field config.GalleryField, p config.GalleryProjectile) float64 {
	return field.SpawnHeight() - p.LaunchOffset
}

// advanceProjectiles moves every projectile up by its speed and drops the
// ones that reached the top edge. The slice is filtered in place.
func advanceProjectiles(ps []Projectile) []Projectile {
	kept := ps[:0]
	for _, p := range ps {
		p.Y -= p.Speed
		if p.Y <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	// Clear the tail so dropped projectiles are not retained
	for i := len(kept); i < len(ps); i++ {
		ps[i] = Projectile{}
	}
	return kept
}
