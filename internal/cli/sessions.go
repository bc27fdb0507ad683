package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxn_bld/internal/analysis"
	"github.com/SeamusWaldron/nxn_bld/internal/bld"
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/internal/gocube"
	"github.com/SeamusWaldron/nxn_bld/internal/notation"
	"github.com/SeamusWaldron/nxn_bld/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Browse recorded GoCube sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id-prefix>",
	Short: "Show the moves, statistics and final memo of a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

var sessionsPatternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Find move sequences repeated across recent sessions",
	RunE:  runSessionsPatterns,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id-prefix>",
	Short: "Delete a session and its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

var (
	sessionsLimit int
	ngramMin      int
	ngramMax      int
	ngramTop      int
)

func init() {
	sessionsListCmd.Flags().IntVarP(&sessionsLimit, "limit", "l", 20, "Number of sessions to list")
	sessionsPatternsCmd.Flags().IntVarP(&sessionsLimit, "limit", "l", 50, "Number of sessions to scan")
	for _, c := range []*cobra.Command{sessionsShowCmd, sessionsPatternsCmd} {
		c.Flags().IntVar(&ngramMin, "min", 3, "Shortest sequence length")
		c.Flags().IntVar(&ngramMax, "max", 8, "Longest sequence length")
		c.Flags().IntVar(&ngramTop, "top", 5, "Sequences to list per length")
	}
	sessionsCmd.AddCommand(sessionsListCmd, sessionsShowCmd, sessionsPatternsCmd, sessionsDeleteCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func withSessions(cmd *cobra.Command, fn func(*storage.SessionRepository, settings) error) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	db, err := s.openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	debugf("database %s\n", db.Path())
	return fn(storage.NewSessionRepository(db), s)
}

// sessionTurns parses the stored moves of a session.
func sessionTurns(repo *storage.SessionRepository, id string) ([]analysis.Turn, error) {
	records, err := repo.Moves(id)
	if err != nil {
		return nil, err
	}
	turns := make([]analysis.Turn, 0, len(records))
	for _, r := range records {
		moves, err := notation.ParseMoves(gocube.Size, r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d of session %s: %w", r.MoveIndex, id, err)
		}
		for _, m := range moves {
			turns = append(turns, analysis.Turn{Move: m, TsMs: r.TsMs})
		}
	}
	return turns, nil
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	return withSessions(cmd, func(repo *storage.SessionRepository, _ settings) error {
		sessions, err := repo.List(sessionsLimit)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded. Start one with: nxnbld live")
			return nil
		}

		fmt.Printf("%-8s  %-16s  %5s  %-8s  %s\n", "ID", "Started", "Moves", "Duration", "Device")
		fmt.Println(strings.Repeat("-", 64))
		for _, s := range sessions {
			duration := "open"
			if s.EndedAt != nil {
				duration = s.EndedAt.Sub(s.StartedAt).Round(time.Second).String()
			}
			device := "-"
			if s.DeviceName != nil {
				device = *s.DeviceName
			}
			fmt.Printf("%-8s  %-16s  %5d  %-8s  %s\n",
				s.SessionID[:8],
				s.StartedAt.Local().Format("2006-01-02 15:04"),
				s.MoveCount,
				duration,
				device,
			)
		}
		return nil
	})
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	return withSessions(cmd, func(repo *storage.SessionRepository, s settings) error {
		id, err := repo.Resolve(args[0])
		if err != nil {
			return err
		}
		session, err := repo.Get(id)
		if err != nil {
			return err
		}
		turns, err := sessionTurns(repo, session.SessionID)
		if err != nil {
			return err
		}
		fmt.Printf("Session: %s\n", session.SessionID)
		fmt.Printf("Started: %s\n", session.StartedAt.Local().Format(time.RFC1123))
		return writeSessionReport(cmd.OutOrStdout(), turns, s.BLD)
	})
}

// writeSessionReport prints the moves, their statistics and the memo of
// the cube they leave behind.
func writeSessionReport(w io.Writer, turns []analysis.Turn, cfg bld.Config) error {
	r := cube.NewRotated(cube.New(gocube.Size))
	var sb strings.Builder
	for i, t := range turns {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Move.Notation())
		r.ApplyMove(t.Move)
	}
	fmt.Fprintf(w, "Moves:   %s\n\n", sb.String())

	summary := analysis.Summarize(turns, analysis.DefaultPauseMs)
	ngrams := analysis.MineNGrams(turns, ngramMin, ngramMax, ngramTop)
	fmt.Fprintln(w, analysis.FormatSummary(summary, ngrams))

	if r.Cube.IsSolved() {
		fmt.Fprintln(w, "Final state: solved")
		return nil
	}
	fmt.Fprintln(w, "Final state:")
	fmt.Fprintln(w, bld.Render(r.Cube, cfg))
	return nil
}

func runSessionsPatterns(cmd *cobra.Command, args []string) error {
	return withSessions(cmd, func(repo *storage.SessionRepository, _ settings) error {
		sessions, err := repo.List(sessionsLimit)
		if err != nil {
			return err
		}
		reports := make(map[string]*analysis.NGramReport, len(sessions))
		for _, s := range sessions {
			turns, err := sessionTurns(repo, s.SessionID)
			if err != nil {
				return err
			}
			reports[s.SessionID] = analysis.MineNGrams(turns, ngramMin, ngramMax, ngramTop)
		}

		merged := analysis.MergeReports(reports, ngramTop)
		if len(merged.TopNGrams) == 0 {
			fmt.Println("No repeated sequences found.")
			return nil
		}
		for _, n := range merged.Lengths() {
			fmt.Printf("%d-move sequences:\n", n)
			for _, g := range merged.TopNGrams[n] {
				fmt.Printf("  %3dx  %s\n", g.Count, g)
			}
		}
		return nil
	})
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	return withSessions(cmd, func(repo *storage.SessionRepository, _ settings) error {
		id, err := repo.Resolve(args[0])
		if err != nil {
			return err
		}
		if err := repo.Delete(id); err != nil {
			return err
		}
		fmt.Printf("Deleted session %s\n", id)
		return nil
	})
}
