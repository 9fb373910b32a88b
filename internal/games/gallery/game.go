package gallery

import (
	"time"

	"github.com/vovakirdan/tui-gallery/internal/config"
	"github.com/vovakirdan/tui-gallery/internal/core"
)

// Keyboard aim moves the sight by this fraction of the field per key press.
const nudgeFraction = 1.0 / 40

// Game adapts a Session to the platform's fixed-tick loop: it maps input
// frames onto session operations and advances simulated time per tick.
type Game struct {
	cfg     config.GalleryConfig
	runtime core.RuntimeConfig
	session *Session
	tick    uint64
	frameDt time.Duration
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.GalleryConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "gallery"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Operation Blackbriar"
}

// Reset (re)initializes the game for the given runtime settings and returns
// it to Idle. The leaderboard survives resets.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.tick = 0

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frameDt = time.Second / time.Duration(tickRate)

	if g.session == nil {
		g.session = NewSession(g.cfg, rc.Seed)
		return
	}
	g.session.Dispose()
	g.session.spawner.Reset(rc.Seed)
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the game configuration.
func (g *Game) Config() config.GalleryConfig {
	return g.cfg
}

// Step applies one frame of input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session
	var result core.StepResult

	if in.Has(core.ActionStart) && s.Start() {
		result.Started = true
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	g.applyNudge(in)

	// Each shot leaves from where the sight was when it was fired
	for _, shot := range in.Shots {
		if shot.AimSet {
			s.Aim(shot.Aim)
		}
		s.Fire()
	}
	if in.AimSet {
		s.Aim(in.Aim)
	}

	wasActive := s.Status() == StatusActive
	if wasActive && !s.Paused() {
		g.tick++
	}
	s.Frame(g.frameDt)
	if wasActive && s.Status() == StatusEnded {
		result.Ended = true
	}

	result.State = g.State()
	return result
}

// applyNudge moves the sight for keyboard players.
func (g *Game) applyNudge(in core.InputFrame) {
	step := g.cfg.Field.Width * nudgeFraction
	aim := g.session.aim
	moved := false

	if in.Has(core.ActionLeft) {
		aim.X -= step
		moved = true
	}
	if in.Has(core.ActionRight) {
		aim.X += step
		moved = true
	}
	if in.Has(core.ActionUp) {
		aim.Y -= step
		moved = true
	}
	if in.Has(core.ActionDown) {
		aim.Y += step
		moved = true
	}

	if moved {
		g.session.Aim(aim)
	}
}

// SubmitName forwards a high-score name to the session.
func (g *Game) SubmitName(name string) bool {
	return g.session.SubmitName(name)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:       s.Score(),
		Active:      s.Status() == StatusActive,
		GameOver:    s.Status() == StatusEnded,
		Paused:      s.Paused(),
		NamePending: s.NamePending(),
	}
}
