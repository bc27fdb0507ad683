package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxn_bld/internal/analysis"
	"github.com/SeamusWaldron/nxn_bld/internal/bld"
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/internal/gocube"
	"github.com/SeamusWaldron/nxn_bld/internal/storage"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

var sessionsReplayCmd = &cobra.Command{
	Use:   "replay <session-id-prefix>",
	Short: "Replay a recorded session with its original timing",
	Long: `Replay the moves of a recorded session on the cube net, at the pace they
were made. The memo is shown for every intermediate state.

Keyboard shortcuts:
  space/n   - Next move (pauses playback)
  p         - Pause or resume
  r         - Restart
  +/-       - Double or halve the speed
  q/Esc     - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionsReplay,
}

var (
	replaySpeed float64
	replayStep  bool
	replayPlain bool
)

func init() {
	sessionsReplayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	sessionsReplayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Start paused and step through moves")
	sessionsReplayCmd.Flags().BoolVar(&replayPlain, "plain", false, "Print face letters instead of colors")
	sessionsCmd.AddCommand(sessionsReplayCmd)
}

const (
	minReplaySpeed = 0.25
	maxReplaySpeed = 16
)

type replayModel struct {
	turns    []analysis.Turn
	index    int
	speed    float64
	paused   bool
	tracker  *cube.Tracker
	solves   int
	cfg      bld.Config
	plain    bool
	quitting bool
}

// replayMoveMsg asks for the move at index. Messages for any other index
// were scheduled before a pause or restart and are dropped.
type replayMoveMsg struct{ index int }

func newReplayModel(turns []analysis.Turn, cfg bld.Config, speed float64, paused, plain bool) *replayModel {
	m := &replayModel{
		turns:   turns,
		speed:   min(max(speed, minReplaySpeed), maxReplaySpeed),
		paused:  paused,
		tracker: cube.NewTracker(gocube.Size),
		cfg:     cfg,
		plain:   plain,
	}
	m.tracker.SetSolvedCallback(func(int) { m.solves++ })
	return m
}

func (m *replayModel) Init() tea.Cmd {
	if m.paused {
		return nil
	}
	return m.schedule()
}

// schedule waits for the recorded gap before the next move.
func (m *replayModel) schedule() tea.Cmd {
	if m.index >= len(m.turns) {
		return nil
	}
	var delay time.Duration
	if m.index > 0 {
		gap := m.turns[m.index].TsMs - m.turns[m.index-1].TsMs
		delay = time.Duration(float64(gap)/m.speed) * time.Millisecond
	}
	index := m.index
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return replayMoveMsg{index: index}
	})
}

func (m *replayModel) step() {
	if m.index >= len(m.turns) {
		return
	}
	m.tracker.ApplyMove(m.turns[m.index].Move)
	m.index++
}

func (m *replayModel) restart() {
	m.tracker.Reset()
	m.index = 0
	m.solves = 0
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case replayMoveMsg:
		if m.paused || msg.index != m.index {
			return m, nil
		}
		m.step()
		return m, m.schedule()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "n":
			m.paused = true
			m.step()
		case "p":
			m.paused = !m.paused
			if !m.paused {
				return m, m.schedule()
			}
		case "r":
			m.restart()
			if !m.paused {
				return m, m.schedule()
			}
		case "+", "=":
			m.speed = min(m.speed*2, maxReplaySpeed)
		case "-":
			m.speed = max(m.speed/2, minReplaySpeed)
		}
	}
	return m, nil
}

func (m *replayModel) elapsed() time.Duration {
	if m.index == 0 {
		return 0
	}
	return time.Duration(m.turns[m.index-1].TsMs-m.turns[0].TsMs) * time.Millisecond
}

func (m *replayModel) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	c := m.tracker.Cube().Cube

	sb.WriteString(titleStyle.Render("nxnbld replay"))
	sb.WriteString("\n\n")
	sb.WriteString(renderNet(c, m.plain))
	sb.WriteString("\n\n")

	status := fmt.Sprintf("Move %d/%d  %.1fs  (%.2gx)", m.index, len(m.turns), m.elapsed().Seconds(), m.speed)
	if m.paused {
		status += "  [PAUSED]"
	}
	if m.tracker.IsSolved() {
		status += "  SOLVED"
	} else if m.solves > 0 {
		status += fmt.Sprintf("  solved %dx", m.solves)
	}
	sb.WriteString(statusStyle.Render(status))
	sb.WriteString("\n")

	start := max(m.index-20, 0)
	moves := make([]types.Move, 0, m.index-start)
	for _, t := range m.turns[start:m.index] {
		moves = append(moves, t.Move)
	}
	sb.WriteString(moveStyle.Render(types.FormatMoves(moves)))
	sb.WriteString("\n\n")

	sb.WriteString(memoStyle.Render(bld.Render(c, m.cfg)))
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("[space] next  [p] pause  [r] restart  [+/-] speed  [q] quit"))
	sb.WriteString("\n")
	return sb.String()
}

func runSessionsReplay(cmd *cobra.Command, args []string) error {
	return withSessions(cmd, func(repo *storage.SessionRepository, s settings) error {
		id, err := repo.Resolve(args[0])
		if err != nil {
			return err
		}
		turns, err := sessionTurns(repo, id)
		if err != nil {
			return err
		}
		if len(turns) == 0 {
			fmt.Printf("Session %s has no moves.\n", id)
			return nil
		}

		p := tea.NewProgram(newReplayModel(turns, s.BLD, replaySpeed, replayStep, replayPlain), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})
}
