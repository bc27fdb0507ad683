package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxn_bld/internal/bld"
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/internal/scramble"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

var viewCmd = &cobra.Command{
	Use:   "view [scramble]",
	Short: "Interactive cube with a live memo",
	Long: `Open an interactive cube net. Keys turn the cube and the memo updates
after every move.

Keyboard shortcuts:
  u l f r b d     - Turn a face clockwise (shift for counter-clockwise)
  x y z           - Rotate the whole cube (shift for counter-clockwise)
  1-9             - Number of layers turned by the next face turn
  backspace       - Undo the last move
  n               - New random scramble
  c               - Reset to solved
  q/Esc           - Quit`,
	RunE: runView,
}

var viewPlain bool

func init() {
	viewCmd.Flags().BoolVar(&viewPlain, "plain", false, "Print face letters instead of colors")
	rootCmd.AddCommand(viewCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	memoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var faceKeys = map[rune]types.Face{
	'u': types.FaceU, 'l': types.FaceL, 'f': types.FaceF,
	'r': types.FaceR, 'b': types.FaceB, 'd': types.FaceD,
}

var rotationKeys = map[rune]types.Face{
	'x': types.FaceR, 'y': types.FaceU, 'z': types.FaceF,
}

type viewModel struct {
	cfg   bld.Config
	cube  *cube.RotatedCube
	moves []types.Move
	depth int
	seed  uint64
	plain bool

	quitting bool
}

func newViewModel(n int, cfg bld.Config, seed uint64, plain bool) *viewModel {
	return &viewModel{
		cfg:   cfg,
		cube:  cube.NewRotated(cube.New(n)),
		depth: 1,
		seed:  seed,
		plain: plain,
	}
}

func (m *viewModel) size() int { return m.cube.Cube.N }

func (m *viewModel) apply(mv types.Move) {
	m.cube.ApplyMove(mv)
	m.moves = append(m.moves, mv)
}

func (m *viewModel) undo() {
	if len(m.moves) == 0 {
		return
	}
	last := m.moves[len(m.moves)-1]
	m.moves = m.moves[:len(m.moves)-1]
	m.cube.ApplyMove(last.Inverse())
}

func (m *viewModel) reset() {
	m.cube = cube.NewRotated(cube.New(m.size()))
	m.moves = nil
	m.depth = 1
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "backspace":
		m.undo()
		return m, nil
	case "n":
		m.reset()
		m.seed++
		for _, mv := range scramble.Scramble(m.size(), m.seed) {
			m.apply(mv)
		}
		return m, nil
	case "c":
		m.reset()
		return m, nil
	}

	if key.Type != tea.KeyRunes || len(key.Runes) != 1 {
		return m, nil
	}
	r := key.Runes[0]
	lower := []rune(strings.ToLower(string(r)))[0]
	count := 1
	if lower != r {
		count = 3
	}

	switch {
	case r >= '1' && r <= '9':
		m.depth = min(int(r-'0'), m.size())
	case faceKeys[lower] != "":
		m.apply(types.Move{N: m.size(), Face: faceKeys[lower], Start: 0, End: m.depth, Count: count})
		m.depth = 1
	case rotationKeys[lower] != "":
		m.apply(types.Move{N: m.size(), Face: rotationKeys[lower], Start: 0, End: m.size(), Count: count})
	}
	return m, nil
}

func (m *viewModel) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	n := m.size()

	sb.WriteString(titleStyle.Render(fmt.Sprintf("nxnbld %dx%d", n, n)))
	sb.WriteString("\n\n")
	sb.WriteString(renderNet(m.cube.Cube, m.plain))
	sb.WriteString("\n\n")

	status := fmt.Sprintf("Moves: %d", len(m.moves))
	if m.depth > 1 {
		status += fmt.Sprintf("  Layers: %d", m.depth)
	}
	if m.cube.Cube.IsSolvedInAnyOrientation() {
		status += "  SOLVED"
	}
	sb.WriteString(statusStyle.Render(status))
	sb.WriteString("\n")

	recent := m.moves
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}
	sb.WriteString(moveStyle.Render(types.FormatMoves(recent)))
	sb.WriteString("\n\n")

	sb.WriteString(memoStyle.Render(bld.Render(m.cube.Cube, m.cfg)))
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("[ulfrbd] turn  [xyz] rotate  [1-9] layers  [bksp] undo  [n] scramble  [c] reset  [q] quit"))
	sb.WriteString("\n")
	return sb.String()
}

func runView(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	m := newViewModel(s.Size, s.BLD, uint64(time.Now().UnixNano()), viewPlain)
	if len(args) > 0 {
		_, moves, err := scrambled(s.Size, strings.Join(args, " "))
		if err != nil {
			return err
		}
		for _, mv := range moves {
			m.apply(mv)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
