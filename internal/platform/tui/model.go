package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-gallery/internal/core"
	"github.com/vovakirdan/tui-gallery/internal/games/gallery"
	"github.com/vovakirdan/tui-gallery/internal/storage"
)

// footerHeight is the number of terminal rows below the game screen.
const footerHeight = 1

// Options configures a Model.
type Options struct {
	Store     *storage.Store // Run log; nil disables it
	Logger    *log.Logger    // nil discards logs
	SessionID string         // Generated when empty
	Username  string
}

// Model is the Bubble Tea model for one player's gallery session.
type Model struct {
	game       *gallery.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	sessionID  string
	username   string
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	nameInput  textinput.Model
	lastRunID  string
	showBoard  bool
	board      Scoreboard
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *gallery.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.Prompt = "Name: "
	ti.CharLimit = game.Config().Leaderboard.NameMaxLen
	ti.Width = ti.CharLimit + 1

	h := help.New()
	h.ShowAll = false

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerHeight)),
		store:      opts.Store,
		logger:     logger.With("session", sessionID),
		config:     cfg,
		sessionID:  sessionID,
		username:   opts.Username,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
		help:       h,
		nameInput:  ti,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showBoard || m.gameState.NamePending {
			return m, nil
		}
		vp := m.game.Viewport(m.screen.Width(), m.screen.Height())
		MapMouseToFrame(msg, vp, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.gameState.NamePending {
		return m.handleNameKey(msg)
	}

	if key.Matches(msg, m.keys.Scoreboard) && !m.gameState.Active {
		m.showBoard = !m.showBoard
		if m.showBoard {
			m.board = m.newScoreboard()
		}
		return m, nil
	}
	if m.showBoard {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case msg.String() == "esc":
			m.showBoard = false
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		return m.quit()
	}
	return m, nil
}

// handleNameKey feeds the high-score prompt.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.nameInput.Value())
		if !m.game.SubmitName(name) {
			return m, nil
		}
		m.logger.Info("leaderboard entry", "name", name, "score", m.gameState.Score)
		if m.store != nil && m.lastRunID != "" {
			if err := m.store.SetRunName(m.lastRunID, name); err != nil {
				m.logger.Warn("could not name run", "run", m.lastRunID, "error", err)
			}
		}
		m.nameInput.Blur()
		m.nameInput.Reset()
		m.gameState = m.game.State()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleResize keeps the screen buffer matched to the terminal. The field is
// measured in its own units, so the game keeps running across resizes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width
	if m.showBoard {
		m.board = m.newScoreboard()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Started {
		m.showBoard = false
		m.lastRunID = ""
		m.logger.Info("run started", "user", m.username)
	}

	var cmd tea.Cmd
	if result.Ended {
		m.recordRun()
		if m.gameState.NamePending {
			m.nameInput.Reset()
			cmd = m.nameInput.Focus()
		}
	}

	return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// recordRun writes the finished run to the run log.
func (m *Model) recordRun() {
	s := m.game.Session()
	stats := s.Stats()

	m.logger.Info("run ended",
		"user", m.username,
		"score", s.Score(),
		"reason", s.EndReason(),
		"shots", stats.ShotsFired,
		"enemies", stats.EnemyHits,
		"civilians", stats.CivilianHits,
		"escaped", stats.EnemyEscapes,
	)
	// Equal for runs with the same seed and inputs
	m.logger.Debug("run digest", "seed", m.config.Seed, "hash", fmt.Sprintf("%016x", m.game.Snapshot().Hash()))

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		SessionID:    m.sessionID,
		Score:        s.Score(),
		EndReason:    string(s.EndReason()),
		ShotsFired:   stats.ShotsFired,
		EnemyHits:    stats.EnemyHits,
		CivilianHits: stats.CivilianHits,
		EnemyEscapes: stats.EnemyEscapes,
		Duration:     stats.Elapsed,
	})
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.lastRunID = id
}

func (m Model) newScoreboard() Scoreboard {
	return NewScoreboard(m.game.Session().Leaderboard(), m.store, m.config.ScreenW, m.config.ScreenH)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.game.Session().Status() == gallery.StatusActive {
		m.logger.Info("run abandoned", "score", m.game.Session().Score())
	}
	m.game.Session().Dispose()
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".gallery", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return m.board.View() + "\n\n" + m.helpView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer shows the name prompt while one is pending, key help otherwise.
func (m Model) footer() string {
	if m.gameState.NamePending {
		label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render(" NEW HIGH SCORE ")
		return label + " " + m.nameInput.View()
	}
	return m.helpView()
}

func (m Model) helpView() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local terminal.
func Run(game *gallery.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
