package gallery

import (
	"testing"

	"github.com/vovakirdan/tui-gallery/internal/config"
)

var testScoring = config.GalleryScoring{
	EnemyHit:       10,
	CivilianHit:    -5,
	CivilianDamage: 1,
	EscapeDamage:   1,
}

func TestResolveBoundary(t *testing.T) {
	// Center (120, 120), radius 20
	target := Target{ID: 1, X: 100, Y: 100, Size: 40}

	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{"center", 120, 120, true},
		{"just inside rim", 140 - 1e-6, 120, true},
		{"exactly on rim", 140, 120, false},
		{"on rim vertically", 120, 100, false},
		{"outside", 141, 120, false},
		{"bounding box corner", 101, 101, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Resolve([]Projectile{{ID: 9, X: tc.x, Y: tc.y}}, []Target{target}, testScoring)
			if got := len(res.Hits) == 1; got != tc.hit {
				t.Errorf("hit = %v, expected %v", got, tc.hit)
			}
		})
	}
}

func TestResolveDeltas(t *testing.T) {
	targets := []Target{
		{ID: 1, X: 0, Y: 0, Size: 40},                    // enemy at (20, 20)
		{ID: 2, X: 100, Y: 0, Size: 40, Dangerous: true}, // civilian at (120, 20)
		{ID: 3, X: 200, Y: 0, Size: 40, Dangerous: true}, // civilian at (220, 20)
		{ID: 4, X: 300, Y: 0, Size: 40},                  // untouched
	}
	projectiles := []Projectile{
		{ID: 10, X: 20, Y: 20},
		{ID: 11, X: 120, Y: 20},
		{ID: 12, X: 220, Y: 20},
		{ID: 13, X: 500, Y: 20}, // miss
	}

	res := Resolve(projectiles, targets, testScoring)

	if res.ScoreDelta != 0 {
		t.Errorf("ScoreDelta = %d, expected 10 - 5 - 5 = 0", res.ScoreDelta)
	}
	if res.HealthDamage != 2 {
		t.Errorf("HealthDamage = %d, expected 2", res.HealthDamage)
	}
	if len(res.Targets) != 1 || res.Targets[0].ID != 4 {
		t.Errorf("surviving targets = %v, expected only ID 4", res.Targets)
	}
	if len(res.Projectiles) != 1 || res.Projectiles[0].ID != 13 {
		t.Errorf("surviving projectiles = %v, expected only ID 13", res.Projectiles)
	}

	// Inputs untouched
	if len(targets) != 4 || targets[0].ID != 1 || len(projectiles) != 4 {
		t.Error("Resolve must not modify its inputs")
	}
}

func TestResolveOneTargetPerProjectile(t *testing.T) {
	// Overlapping targets: one projectile takes the first, the second takes the next
	targets := []Target{
		{ID: 1, X: 0, Y: 0, Size: 40},
		{ID: 2, X: 5, Y: 0, Size: 40},
	}

	res := Resolve([]Projectile{{ID: 10, X: 20, Y: 20}}, targets, testScoring)
	if len(res.Hits) != 1 || res.Hits[0].TargetID != 1 {
		t.Fatalf("hits = %v, expected a single hit on target 1", res.Hits)
	}
	if len(res.Targets) != 1 || res.Targets[0].ID != 2 {
		t.Errorf("surviving targets = %v, expected target 2", res.Targets)
	}

	res = Resolve([]Projectile{{ID: 10, X: 20, Y: 20}, {ID: 11, X: 22, Y: 20}}, targets, testScoring)
	if len(res.Hits) != 2 || res.Hits[1].TargetID != 2 {
		t.Errorf("hits = %v, expected second projectile to take target 2", res.Hits)
	}
	if res.ScoreDelta != 20 {
		t.Errorf("ScoreDelta = %d, expected 20", res.ScoreDelta)
	}
}

func TestResolveEmpty(t *testing.T) {
	res := Resolve(nil, nil, testScoring)
	if len(res.Hits) != 0 || res.ScoreDelta != 0 || res.HealthDamage != 0 {
		t.Errorf("empty resolve produced %+v", res)
	}
}

func TestAdvanceProjectiles(t *testing.T) {
	ps := []Projectile{
		{ID: 1, Y: 100, Speed: 10},
		{ID: 2, Y: 10, Speed: 10}, // reaches the top edge
		{ID: 3, Y: 5, Speed: 10},
		{ID: 4, Y: 50, Speed: 10},
	}

	kept := advanceProjectiles(ps)

	if len(kept) != 2 {
		t.Fatalf("kept %d projectiles, expected 2", len(kept))
	}
	if kept[0].ID != 1 || kept[0].Y != 90 {
		t.Errorf("kept[0] = %+v, expected ID 1 at y=90", kept[0])
	}
	if kept[1].ID != 4 || kept[1].Y != 40 {
		t.Errorf("kept[1] = %+v, expected ID 4 at y=40", kept[1])
	}
}
