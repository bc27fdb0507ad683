package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxn_bld/internal/analysis"
	"github.com/SeamusWaldron/nxn_bld/internal/storage"
)

var ErrExportFormat = errors.New("cli: unknown export format")

var sessionsExportCmd = &cobra.Command{
	Use:   "export <session-id-prefix>",
	Short: "Export the moves of a session",
	Long: `Export the move sequence of a session as text or JSON. JSON output
includes the timestamp of every move and the session statistics.

Examples:
  nxnbld sessions export 3f2a
  nxnbld sessions export 3f2a --format json -o session.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionsExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	sessionsExportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	sessionsExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	sessionsCmd.AddCommand(sessionsExportCmd)
}

type exportedMove struct {
	MoveIndex int    `json:"move_index"`
	TsMs      int64  `json:"ts_ms"`
	Notation  string `json:"notation"`
}

type exportedSession struct {
	SessionID string           `json:"session_id"`
	Device    *string          `json:"device,omitempty"`
	Moves     []exportedMove   `json:"moves"`
	Summary   analysis.Summary `json:"summary"`
}

func runSessionsExport(cmd *cobra.Command, args []string) error {
	return withSessions(cmd, func(repo *storage.SessionRepository, _ settings) error {
		id, err := repo.Resolve(args[0])
		if err != nil {
			return err
		}
		session, err := repo.Get(id)
		if err != nil {
			return err
		}
		records, err := repo.Moves(id)
		if err != nil {
			return err
		}
		turns, err := sessionTurns(repo, id)
		if err != nil {
			return err
		}

		output, err := formatExport(exportFormat, session, records, turns)
		if err != nil {
			return err
		}
		if exportOutput == "" {
			fmt.Println(output)
			return nil
		}

		if dir := filepath.Dir(exportOutput); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Printf("Exported %d moves to %s\n", len(records), exportOutput)
		return nil
	})
}

func formatExport(format string, session *storage.Session, records []storage.MoveRecord, turns []analysis.Turn) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		notations := make([]string, len(records))
		for i, r := range records {
			notations[i] = r.Notation
		}
		return strings.Join(notations, " "), nil

	case "json":
		out := exportedSession{
			SessionID: session.SessionID,
			Device:    session.DeviceName,
			Moves:     make([]exportedMove, len(records)),
			Summary:   analysis.Summarize(turns, analysis.DefaultPauseMs),
		}
		for i, r := range records {
			out.Moves[i] = exportedMove{MoveIndex: r.MoveIndex, TsMs: r.TsMs, Notation: r.Notation}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("%w: %s (use txt or json)", ErrExportFormat, format)
	}
}
