package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gallery/internal/config"
	"github.com/vovakirdan/tui-gallery/internal/core"
	"github.com/vovakirdan/tui-gallery/internal/games/gallery"
	"github.com/vovakirdan/tui-gallery/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()

	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.DefaultGalleryConfig()
	cfg.Session.Duration = time.Second
	cfg.Targets.SpawnInterval = time.Hour
	cfg.Leaderboard.Entries = nil

	m := NewModel(gallery.New(cfg), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{
		Store:     store,
		SessionID: "test-session",
		Username:  "tester",
	})
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func ticks(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = update(t, m, TickMsg(time.Time{}))
	}
	return m
}

func TestModelFullRun(t *testing.T) {
	m, store := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = ticks(t, m, 1)
	if !m.gameState.Active {
		t.Fatal("enter should start a run")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = ticks(t, m, 70)

	if !m.gameState.GameOver {
		t.Fatal("run should be over after the countdown")
	}
	if !m.gameState.NamePending {
		t.Fatal("empty leaderboard should prompt for a name")
	}
	if m.lastRunID == "" {
		t.Fatal("finished run should be saved")
	}

	run, err := store.RunByID(m.lastRunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.SessionID != "test-session" || run.EndReason != "time" || run.ShotsFired != 1 {
		t.Errorf("unexpected saved run: %+v", run)
	}

	// Keys go to the prompt, not the game: q must not quit
	for _, r := range "quinn" {
		m = update(t, m, runeKey(r))
	}
	if m.quitting {
		t.Fatal("typing q into the name prompt should not quit")
	}
	if !strings.Contains(m.View(), "NEW HIGH SCORE") {
		t.Error("footer should show the name prompt")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameState.NamePending {
		t.Fatal("enter should submit the name")
	}

	entries := m.game.Session().Leaderboard().Entries()
	if len(entries) != 1 || entries[0].Name != "quinn" {
		t.Errorf("leaderboard = %v, expected quinn", entries)
	}
	run, _ = store.RunByID(m.lastRunID)
	if run.Name != "quinn" {
		t.Errorf("run name = %q, expected quinn", run.Name)
	}
}

func TestModelBlankNameKeepsPrompt(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = ticks(t, m, 70)
	if !m.gameState.NamePending {
		t.Fatal("expected a pending name prompt")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.gameState.NamePending {
		t.Error("blank name should keep the prompt open")
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showBoard {
		t.Fatal("tab should open the scoreboard while idle")
	}
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") {
		t.Error("scoreboard view should have a title")
	}
	if !strings.Contains(view, "Leaderboard 0/5") {
		t.Errorf("scoreboard should show leaderboard fill:\n%s", view)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showBoard {
		t.Error("esc should close the scoreboard")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = ticks(t, m, 1)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.showBoard {
		t.Error("scoreboard should not open during a run")
	}
}

func TestModelMouseAimAndFire(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = ticks(t, m, 1)

	m = update(t, m, tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = ticks(t, m, 1)

	if shots := m.game.Session().Stats().ShotsFired; shots != 1 {
		t.Errorf("ShotsFired = %d, expected 1", shots)
	}
	vp := m.game.Viewport(m.screen.Width(), m.screen.Height())
	if got, want := m.game.Snapshot().Aim, vp.ToField(20, 10); got != want {
		t.Errorf("Aim = %+v, expected %+v", got, want)
	}
}

func TestModelClickThenMoveFiresFromClick(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = ticks(t, m, 1)

	m = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 70, Y: 10, Action: tea.MouseActionMotion})
	m = ticks(t, m, 1)

	vp := m.game.Viewport(m.screen.Width(), m.screen.Height())
	snap := m.game.Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, expected 1", len(snap.Projectiles))
	}
	if got, want := snap.Projectiles[0].X, vp.ToField(10, 10).X; got != want {
		t.Errorf("projectile x = %g, expected click x %g", got, want)
	}
	if got, want := snap.Aim, vp.ToField(70, 10); got != want {
		t.Errorf("Aim = %+v, expected %+v after the motion", got, want)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = ticks(t, m, 1)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 40-footerHeight {
		t.Errorf("screen = %dx%d, expected 120x%d", m.screen.Width(), m.screen.Height(), 40-footerHeight)
	}
	if m.game.Session().Status() != gallery.StatusActive {
		t.Error("resize should not interrupt the run")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if !next.(Model).quitting {
		t.Error("model should be quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}
