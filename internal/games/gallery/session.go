package gallery

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-gallery/internal/clock"
	"github.com/vovakirdan/tui-gallery/internal/config"
	"github.com/vovakirdan/tui-gallery/internal/core"
)

// Session owns all simulation state for one player: lifecycle, score, health,
// live targets and projectiles, and the timers that drive them.
//
// All methods must be called from a single goroutine. Timers only fire inside
// Frame, so a session never mutates itself behind the caller's back.
type Session struct {
	cfg     config.GalleryConfig
	sched   *clock.Scheduler
	spawner *Spawner
	board   *Leaderboard

	status        Status
	score         int
	health        int
	timeRemaining time.Duration
	targets       []Target
	projectiles   []Projectile
	aim           core.Vec
	paused        bool

	// expiries holds the armed expiry timer of every live target
	expiries map[uint64]clock.Handle
	nextID   uint64
	startAt  time.Duration

	namePending bool
	endReason   EndReason
	stats       RunStats
}

// NewSession creates an idle session. The leaderboard is seeded from cfg.
func NewSession(cfg config.GalleryConfig, seed int64) *Session {
	entries := make([]Entry, 0, len(cfg.Leaderboard.Entries))
	for _, e := range cfg.Leaderboard.Entries {
		entries = append(entries, Entry{Name: e.Name, Score: e.Score})
	}

	return &Session{
		cfg:           cfg,
		sched:         clock.NewScheduler(),
		expiries:      make(map[uint64]clock.Handle),
		spawner:       NewSpawner(seed, cfg.Field, cfg.Targets),
		board:         NewLeaderboard(cfg.Leaderboard.Size, entries...),
		status:        StatusIdle,
		health:        cfg.Session.MaxHealth,
		timeRemaining: cfg.Session.Duration,
		aim:           core.Vec{X: cfg.Field.Width / 2, Y: cfg.Field.SpawnHeight() / 2},
	}
}

// epoch identifies the current run. It changes whenever every timer is
// cancelled, so callbacks compare the value they captured before acting.
func (s *Session) epoch() uint64 {
	return s.sched.Generation()
}

// Start begins a new session from Idle or Ended. It is a no-op while Active.
// Returns true if a session was started.
func (s *Session) Start() bool {
	if s.status == StatusActive {
		return false
	}

	s.sched.CancelAll()
	clear(s.expiries)

	s.status = StatusActive
	s.score = 0
	s.health = s.cfg.Session.MaxHealth
	s.timeRemaining = s.cfg.Session.Duration
	s.targets = s.targets[:0]
	s.projectiles = s.projectiles[:0]
	s.paused = false
	s.namePending = false
	s.endReason = EndNone
	s.stats = RunStats{}
	s.startAt = s.sched.Now()

	epoch := s.epoch()
	s.sched.Every(s.cfg.Session.CountdownInterval, func() { s.tick(epoch) })
	s.sched.Every(s.cfg.Targets.SpawnInterval, func() { s.spawn(epoch) })
	return true
}

// tick runs once per countdown interval.
func (s *Session) tick(epoch uint64) {
	if epoch != s.epoch() || s.status != StatusActive {
		return
	}
	s.timeRemaining -= s.cfg.Session.CountdownInterval
	if s.timeRemaining <= 0 {
		s.timeRemaining = 0
		s.end(EndTime)
	}
}

// spawn runs once per spawn interval.
func (s *Session) spawn(epoch uint64) {
	if epoch != s.epoch() || s.status != StatusActive {
		return
	}
	s.nextID++
	s.addTarget(s.spawner.Next(s.nextID, s.sched.Now()))
}

// addTarget places a target on the field and arms its expiry timer.
func (s *Session) addTarget(t Target) {
	s.targets = append(s.targets, t)
	s.stats.Spawned++

	epoch := s.epoch()
	id := t.ID
	s.expiries[id] = s.sched.After(t.TTL, func() { s.expire(id, epoch) })
}

// expire removes a target whose time ran out. An enemy that escapes costs
// health; a civilian that leaves unharmed costs nothing. Callbacks from an
// earlier session are discarded.
func (s *Session) expire(id uint64, epoch uint64) {
	if epoch != s.epoch() || s.status != StatusActive {
		return
	}
	delete(s.expiries, id)

	idx := -1
	for i, t := range s.targets {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return // already hit
	}

	t := s.targets[idx]
	s.targets = append(s.targets[:idx], s.targets[idx+1:]...)

	if t.Dangerous {
		s.stats.CivilianEscapes++
		return
	}
	s.stats.EnemyEscapes++
	s.damage(s.cfg.Scoring.EscapeDamage)
}

// damage lowers health, floored at zero, and ends the session at zero.
func (s *Session) damage(n int) {
	if n <= 0 {
		return
	}
	s.health = max(0, s.health-n)
	if s.health == 0 && s.status == StatusActive {
		s.end(EndHealth)
	}
}

// end stops all timers and moves to Ended. Decides whether the final score
// earns a name-entry prompt.
func (s *Session) end(reason EndReason) {
	if s.status != StatusActive {
		return
	}

	s.sched.CancelAll()
	clear(s.expiries)

	s.status = StatusEnded
	s.endReason = reason
	s.paused = false
	s.stats.Elapsed = s.sched.Now() - s.startAt
	s.targets = s.targets[:0]
	s.projectiles = s.projectiles[:0]
	s.namePending = s.board.Qualifies(s.score)
}

// Dispose cancels every timer and returns the session to Idle, dropping any
// run in progress without recording it.
func (s *Session) Dispose() {
	s.sched.CancelAll()
	clear(s.expiries)
	s.status = StatusIdle
	s.endReason = EndNone
	s.paused = false
	s.namePending = false
	s.targets = s.targets[:0]
	s.projectiles = s.projectiles[:0]
}

// Aim moves the sight, clamped to the field.
func (s *Session) Aim(p core.Vec) {
	s.aim = core.Vec{
		X: core.ClampF(p.X, 0, s.cfg.Field.Width),
		Y: core.ClampF(p.Y, 0, s.cfg.Field.Height),
	}
}

// Fire launches a projectile at the sight's x-coordinate.
// Ignored unless the session is Active and unpaused.
func (s *Session) Fire() bool {
	if s.status != StatusActive || s.paused {
		return false
	}
	s.nextID++
	s.projectiles = append(s.projectiles, Projectile{
		ID:    s.nextID,
		X:     s.aim.X,
		Y:     launchY(s.cfg.Field, s.cfg.Projectile),
		Speed: s.cfg.Projectile.Speed,
	})
	s.stats.ShotsFired++
	return true
}

// TogglePause freezes or resumes simulated time while Active.
func (s *Session) TogglePause() {
	if s.status != StatusActive {
		return
	}
	s.paused = !s.paused
}

// Frame advances the simulation by dt. Within a frame, timers fire first
// (countdown, spawns, expiries), then projectiles move, then collisions are
// resolved against the moved projectiles and the live targets, and finally
// health is checked.
func (s *Session) Frame(dt time.Duration) {
	if s.status != StatusActive || s.paused {
		return
	}

	s.sched.Advance(dt)
	if s.status != StatusActive {
		return
	}

	s.projectiles = advanceProjectiles(s.projectiles)

	res := Resolve(s.projectiles, s.targets, s.cfg.Scoring)
	s.projectiles = res.Projectiles
	s.targets = res.Targets
	for _, h := range res.Hits {
		if handle, ok := s.expiries[h.TargetID]; ok {
			s.sched.Cancel(handle)
			delete(s.expiries, h.TargetID)
		}
		if h.Dangerous {
			s.stats.CivilianHits++
		} else {
			s.stats.EnemyHits++
		}
	}
	s.score += res.ScoreDelta
	s.damage(res.HealthDamage)

	if s.health <= 0 && s.status == StatusActive {
		s.end(EndHealth)
	}
}

// SubmitName records the final score under name. Valid only while a prompt is
// pending; blank names are ignored. Names are trimmed and capped in length.
// Returns true if the entry was recorded.
func (s *Session) SubmitName(name string) bool {
	if !s.namePending {
		return false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if limit := s.cfg.Leaderboard.NameMaxLen; limit > 0 && utf8.RuneCountInString(name) > limit {
		name = strings.TrimSpace(string([]rune(name)[:limit]))
	}

	s.board.Record(name, s.score)
	s.namePending = false
	return true
}

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Health returns the current health.
func (s *Session) Health() int { return s.health }

// TimeRemaining returns the countdown value.
func (s *Session) TimeRemaining() time.Duration { return s.timeRemaining }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// NamePending reports whether a high-score name entry is due.
func (s *Session) NamePending() bool { return s.namePending }

// EndReason returns why the last session ended.
func (s *Session) EndReason() EndReason { return s.endReason }

// Stats returns counters for the current or last session.
func (s *Session) Stats() RunStats { return s.stats }

// Leaderboard returns the session's leaderboard.
func (s *Session) Leaderboard() *Leaderboard { return s.board }
