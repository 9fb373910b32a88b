package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gallery/internal/games/gallery"
	"github.com/vovakirdan/tui-gallery/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSideBySide = 90 // Minimum width to show both tables in one row
	maxRecentRuns         = 10
)

// Scoreboard shows the in-game leaderboard next to the process run log.
type Scoreboard struct {
	leaders table.Model
	runs    table.Model
	stats   *storage.Stats
	filled  string
	nRuns   int
	width   int
	height  int
}

// NewScoreboard builds the scoreboard from the current leaderboard and, when a
// store is available, the most recent runs.
func NewScoreboard(board *gallery.Leaderboard, store *storage.Store, width, height int) Scoreboard {
	sb := Scoreboard{
		width:  width,
		height: height,
		filled: fmt.Sprintf("%d/%d", board.Len(), board.Capacity()),
	}
	entries := board.Entries()

	sb.leaders = newTable([]table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Name", Width: 16},
		{Title: "Score", Width: 7},
	}, height)
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), e.Name, fmt.Sprintf("%d", e.Score)}
	}
	sb.leaders.SetRows(rows)

	sb.runs = newTable([]table.Column{
		{Title: "Name", Width: 12},
		{Title: "Score", Width: 6},
		{Title: "End", Width: 7},
		{Title: "Acc", Width: 5},
		{Title: "Time", Width: 6},
	}, height)

	if store == nil {
		return sb
	}

	if runs, err := store.RecentRuns("", maxRecentRuns); err == nil {
		rows := make([]table.Row, len(runs))
		for i, r := range runs {
			name := r.Name
			if name == "" {
				name = "-"
			}
			rows[i] = table.Row{
				name,
				fmt.Sprintf("%d", r.Score),
				r.EndReason,
				fmt.Sprintf("%.0f%%", r.Accuracy()*100),
				fmt.Sprintf("%.0fs", r.Duration.Seconds()),
			}
		}
		sb.runs.SetRows(rows)
		sb.nRuns = len(runs)
	}
	if st, err := store.GetStats(); err == nil {
		sb.stats = st
	}

	return sb
}

// newTable creates a table with the shared scoreboard styling.
func newTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(max(3, min(maxRecentRuns+1, height-10))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// View renders the scoreboard.
func (sb Scoreboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", sb.width)))
	b.WriteString("\n\n")

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	leaders := panelStyle.Render("Leaderboard " + sb.filled + "\n\n" + sb.leaders.View())

	runsContent := "Runs this session\n\n"
	if sb.nRuns == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
		runsContent += emptyStyle.Render("No runs recorded yet.")
	} else {
		runsContent += sb.runs.View()
	}
	runs := panelStyle.Render(runsContent)

	if sb.width >= minWidthForSideBySide {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leaders, "  ", runs))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, leaders, runs))
	}

	if sb.stats != nil && sb.stats.Runs > 0 {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString("\n")
		b.WriteString(statsStyle.Render(fmt.Sprintf(
			"%d runs  best %d  avg %.1f  accuracy %.0f%%  civilians hit %d",
			sb.stats.Runs, sb.stats.BestScore, sb.stats.AvgScore,
			sb.stats.Accuracy()*100, sb.stats.CivilianHits,
		)))
	}

	return b.String()
}

// centerText pads text so it sits centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
