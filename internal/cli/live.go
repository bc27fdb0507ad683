package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxn_bld/internal/ble"
	"github.com/SeamusWaldron/nxn_bld/internal/bld"
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/internal/gocube"
	"github.com/SeamusWaldron/nxn_bld/internal/storage"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Follow a GoCube and print the memo after every move",
	Long: `Connect to the first GoCube found over Bluetooth and follow it move by
move. The cube must be solved, white on top and green in front, when the
session starts. After each move the memo of the current state is printed;
every move is recorded in the history database.

Stop with Ctrl+C.`,
	RunE: runLive,
}

var (
	liveTimeout time.Duration
	liveQuiet   bool
)

func init() {
	liveCmd.Flags().DurationVar(&liveTimeout, "timeout", 15*time.Second, "How long to scan for a GoCube")
	liveCmd.Flags().BoolVar(&liveQuiet, "quiet", false, "Print only moves and solves, not the memo")
	rootCmd.AddCommand(liveCmd)
}

// liveSession tracks a cube fed by a move stream and records the moves.
type liveSession struct {
	tracker  *cube.Tracker
	sessions *storage.SessionRepository
	id       string
	cfg      bld.Config
	out      io.Writer
	quiet    bool
	index    int
}

func newLiveSession(db *storage.DB, cfg bld.Config, deviceName, deviceID string, out io.Writer) (*liveSession, error) {
	repo := storage.NewSessionRepository(db)
	id, err := repo.Create(deviceName, deviceID)
	if err != nil {
		return nil, err
	}
	s := &liveSession{
		tracker:  cube.NewTracker(gocube.Size),
		sessions: repo,
		id:       id,
		cfg:      cfg,
		out:      out,
	}
	s.tracker.SetSolvedCallback(func(moves int) {
		fmt.Fprintf(s.out, "Solved after %d moves\n", moves)
	})
	return s, nil
}

// handle applies one move, records it and prints the new memo. The move
// keeps its index even when it cannot be stored, so later moves are recorded
// at their true position.
func (s *liveSession) handle(m types.Move, ts time.Time) error {
	s.tracker.ApplyMove(m)
	_, err := s.sessions.AddMove(s.id, s.index, ts, m.Notation())
	s.index++

	fmt.Fprintf(s.out, "%3d. %s\n", s.index, m.Notation())
	if !s.quiet && !s.tracker.IsSolved() {
		fmt.Fprintln(s.out, bld.Render(s.tracker.Cube().Cube, s.cfg))
		fmt.Fprintln(s.out)
	}
	if err != nil {
		return fmt.Errorf("move %d not recorded: %w", s.index, err)
	}
	return nil
}

func (s *liveSession) end() error {
	return s.sessions.End(s.id)
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	db, err := s.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client, err := ble.NewClient()
	if err != nil {
		return err
	}
	fmt.Println("Scanning for GoCube...")
	if err := client.ConnectFirst(ctx, liveTimeout); err != nil {
		return err
	}
	defer client.Disconnect()
	fmt.Printf("Connected to %s\n", client.DeviceName())

	if err := client.ResetSolved(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not reset cube state: %v\n", err)
	}

	session, err := newLiveSession(db, s.BLD, client.DeviceName(), client.DeviceUUID(), os.Stdout)
	if err != nil {
		return err
	}
	session.quiet = liveQuiet
	debugf("session %s\n", session.id)

	client.SetMessageCallback(func(msg *gocube.Message) {
		debugf("%s %s\n", gocube.MessageTypeName(msg.Type), msg.RawBase64)
	})
	for m := range client.Moves(ctx) {
		if err := session.handle(m, time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if err := session.end(); err != nil {
		return err
	}
	fmt.Printf("\nSession %s: %d moves\n", session.id, session.index)
	return nil
}
