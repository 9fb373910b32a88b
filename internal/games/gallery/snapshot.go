package gallery

import (
	"hash/fnv"
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/tui-gallery/internal/core"
)

// Snapshot is the read-only frame state handed to renderers.
type Snapshot struct {
	Tick          uint64
	Generation    uint64 // Changes on every start, end and dispose
	Status        Status
	Score         int
	TimeRemaining time.Duration
	Health        int
	MaxHealth     int
	Paused        bool
	Targets       []Target
	Projectiles   []Projectile
	Aim           core.Vec
	Leaderboard   []Entry
	NamePending   bool
	EndReason     EndReason
	Stats         RunStats
}

// Snapshot returns a copy of the current frame state.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	return Snapshot{
		Tick:          g.tick,
		Generation:    s.epoch(),
		Status:        s.status,
		Score:         s.score,
		TimeRemaining: s.timeRemaining,
		Health:        s.health,
		MaxHealth:     s.cfg.Session.MaxHealth,
		Paused:        s.paused,
		Targets:       slices.Clone(s.targets),
		Projectiles:   slices.Clone(s.projectiles),
		Aim:           s.aim,
		Leaderboard:   s.board.Entries(),
		NamePending:   s.namePending,
		EndReason:     s.endReason,
		Stats:         s.stats,
	}
}

// Hash returns a deterministic digest of the simulation-relevant fields.
// Two runs with the same seed and inputs must produce equal hashes.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	write := func(v uint64) {
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}

	write(s.Tick)
	write(uint64(s.Status))
	write(uint64(int64(s.Score)))
	write(uint64(s.TimeRemaining))
	write(uint64(int64(s.Health)))
	for _, t := range s.Targets {
		write(t.ID)
		write(math.Float64bits(t.X))
		write(math.Float64bits(t.Y))
		write(math.Float64bits(t.Size))
		write(uint64(t.TTL))
		if t.Dangerous {
			write(1)
		} else {
			write(0)
		}
	}
	for _, p := range s.Projectiles {
		write(p.ID)
		write(math.Float64bits(p.Y))
	}
	return h.Sum64()
}
