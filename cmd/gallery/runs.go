package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gallery/internal/storage"
)

var (
	flagRunsLimit   int
	flagRunsSession string
	flagRunsID      string
	flagRunsClear   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show runs recorded in a run log file",
	Long: `Display finished runs from a run log database.

The run log lives in memory unless --db names a file, so this command is
only useful with a file that play or serve wrote to.

Examples:
  gallery runs --db ~/.gallery/runs.db
  gallery runs --db ~/.gallery/runs.db --session 7f0c...
  gallery runs --db ~/.gallery/runs.db --id 2b9e...
  gallery runs --db ~/.gallery/runs.db --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().StringVar(&flagRunsSession, "session", "", "Show the latest runs of one session instead of the best")
	runsCmd.Flags().StringVar(&flagRunsID, "id", "", "Show a single run")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every recorded run")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open run log: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case flagRunsClear:
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Run log cleared.")
		return nil

	case flagRunsID != "":
		run, err := store.RunByID(flagRunsID)
		if errors.Is(err, storage.ErrRunNotFound) {
			return fmt.Errorf("no run with id %q", flagRunsID)
		}
		if err != nil {
			return err
		}
		printRunDetail(out, run)
		return nil
	}

	var runs []storage.Run
	if flagRunsSession != "" {
		fmt.Fprintf(out, "Latest runs - session %s\n\n", flagRunsSession)
		runs, err = store.RecentRuns(flagRunsSession, flagRunsLimit)
	} else {
		fmt.Fprint(out, "Best runs\n\n")
		runs, err = store.TopRuns(flagRunsLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-15s  %-6s  %-7s  %-5s  %s\n", "Rank", "Name", "Score", "End", "Acc", "Date")
	fmt.Fprintf(out, "  %-4s  %-15s  %-6s  %-7s  %-5s  %s\n", "----", "----", "-----", "---", "---", "----")
	for i, r := range runs {
		name := r.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-15s  %-6d  %-7s  %-5s  %s\n",
			i+1, name, r.Score, r.EndReason,
			fmt.Sprintf("%.0f%%", r.Accuracy()*100),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.GetStats(); err == nil && st.Runs > 0 {
		fmt.Fprintf(out, "\n%d runs  best %d  avg %.1f\n", st.Runs, st.BestScore, st.AvgScore)
	}
	return nil
}

func printRunDetail(out io.Writer, r *storage.Run) {
	name := r.Name
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(out, "Run %s\n\n", r.ID)
	fmt.Fprintf(out, "  Name:        %s\n", name)
	fmt.Fprintf(out, "  Session:     %s\n", r.SessionID)
	fmt.Fprintf(out, "  Score:       %d\n", r.Score)
	fmt.Fprintf(out, "  Ended by:    %s\n", r.EndReason)
	fmt.Fprintf(out, "  Shots:       %d (%.0f%% hit)\n", r.ShotsFired, r.Accuracy()*100)
	fmt.Fprintf(out, "  Enemies:     %d hit, %d escaped\n", r.EnemyHits, r.EnemyEscapes)
	fmt.Fprintf(out, "  Civilians:   %d hit\n", r.CivilianHits)
	fmt.Fprintf(out, "  Duration:    %s\n", r.Duration.Round(100*time.Millisecond))
	fmt.Fprintf(out, "  Played:      %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
}
