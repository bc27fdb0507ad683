package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxn_bld/internal/analysis"
	"github.com/SeamusWaldron/nxn_bld/internal/bld"
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/internal/storage"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nxnbld.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().IntP("size", "n", 3, "")
	cmd.Flags().String("lettering", "", "")
	cmd.Flags().String("db", "", "")
	return cmd
}

func TestSettingsFromConfigFile(t *testing.T) {
	path := writeConfig(t, `
size: 5
lettering: abcdefghijklmnopqrstuvwx
buffers:
  edges: 0
  wings: 20
`)
	v, err := newViper(testCommand(), path)
	require.NoError(t, err)
	s, err := settingsFrom(v)
	require.NoError(t, err)

	assert.Equal(t, 5, s.Size)
	assert.Equal(t, 'a', s.BLD.Lettering.Letter(0))
	assert.Equal(t, cube.EdgeStickerFromIndex(0), s.BLD.Buffers.Edges)
	assert.Equal(t, cube.WingStickerFromIndex(20), s.BLD.Buffers.Wings)
	assert.Equal(t, bld.DefaultBuffers.Corners, s.BLD.Buffers.Corners)
	assert.Empty(t, s.DBPath)
}

func TestSettingsPrecedence(t *testing.T) {
	path := writeConfig(t, "size: 5\n")

	t.Setenv("NXNBLD_SIZE", "4")
	v, err := newViper(testCommand(), path)
	require.NoError(t, err)
	s, err := settingsFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Size)

	cmd := testCommand()
	require.NoError(t, cmd.Flags().Set("size", "7"))
	v, err = newViper(cmd, path)
	require.NoError(t, err)
	s, err = settingsFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 7, s.Size)
}

func TestSettingsErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		target error
	}{
		{"size", "size: 0\n", ErrInvalidSize},
		{"lettering", "lettering: ABC\n", bld.ErrLettering},
		{"buffer", "buffers:\n  corners: 24\n", bld.ErrBufferIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := newViper(testCommand(), writeConfig(t, tt.body))
			require.NoError(t, err)
			_, err = settingsFrom(v)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestRenderNetPlain(t *testing.T) {
	assert.Equal(t, "  U\nL F R B\n  D", renderNet(cube.New(1), true))
	assert.Equal(t, strings.Join([]string{
		"    U U",
		"    U U",
		"L L F F R R B B",
		"L L F F R R B B",
		"    D D",
		"    D D",
	}, "\n"), renderNet(cube.New(2), true))

	r := cube.NewRotated(cube.New(3))
	r.Rotate(cube.R, 0, 1, 1)
	lines := strings.Split(renderNet(r.Cube, true), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "      U U F", lines[0])
	assert.Equal(t, "L L L F F D R R R U B B", lines[3])
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestViewModel(t *testing.T) {
	m := newViewModel(3, bld.DefaultConfig(), 1, true)

	m.Update(key('r'))
	assert.Equal(t, "R", types.FormatMoves(m.moves))
	assert.Contains(t, m.View(), "Moves: 1")

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.moves)
	assert.True(t, m.cube.Cube.IsSolved())

	m.Update(key('R'))
	m.Update(key('2'))
	m.Update(key('u'))
	m.Update(key('x'))
	assert.Equal(t, "R' Uw x", types.FormatMoves(m.moves))
	assert.Equal(t, 1, m.depth)

	// Depth is clamped to the cube size.
	m.Update(key('9'))
	assert.Equal(t, 3, m.depth)

	m.Update(key('c'))
	assert.Empty(t, m.moves)
	assert.True(t, m.cube.Cube.IsSolved())
	assert.Contains(t, m.View(), "SOLVED")

	m.Update(key('n'))
	assert.NotEmpty(t, m.moves)
	assert.Equal(t, uint64(2), m.seed)

	_, cmd := m.Update(key('q'))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestViewModelUndoRotation(t *testing.T) {
	m := newViewModel(4, bld.DefaultConfig(), 1, true)
	for _, r := range "x3fYd" {
		m.Update(key(r))
	}
	require.Len(t, m.moves, 4)
	for range 4 {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	assert.True(t, m.cube.Cube.IsSolved())
}

func TestLiveSession(t *testing.T) {
	db, err := storage.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var out bytes.Buffer
	s, err := newLiveSession(db, bld.DefaultConfig(), "GoCube_1A2B", "", &out)
	require.NoError(t, err)

	r := types.Move{N: 3, Face: types.FaceR, End: 1, Count: 1}
	now := time.Now()
	require.NoError(t, s.handle(r, now))
	assert.Contains(t, out.String(), "  1. R\n")
	assert.Contains(t, out.String(), "Edges: ")

	require.NoError(t, s.handle(r.Inverse(), now))
	assert.Contains(t, out.String(), "Solved after 2 moves")
	require.NoError(t, s.end())

	moves, err := storage.NewSessionRepository(db).Moves(s.id)
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, "R", moves[0].Notation)
	assert.Equal(t, "R'", moves[1].Notation)
}

func TestSessionReport(t *testing.T) {
	db, err := storage.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	id, err := repo.Create("GoCube_1A2B", "")
	require.NoError(t, err)
	require.NoError(t, repo.AddMoves(id, 0, time.Now(), []string{"R", "U", "R'", "U'", "R", "U", "R'", "U'"}))

	turns, err := sessionTurns(repo, id)
	require.NoError(t, err)
	require.Len(t, turns, 8)

	var out bytes.Buffer
	require.NoError(t, writeSessionReport(&out, turns, bld.DefaultConfig()))
	assert.Contains(t, out.String(), "Moves:   R U R' U' R U R' U'")
	assert.Contains(t, out.String(), "2x  R U R'")
	assert.Contains(t, out.String(), "Final state:\n")
	assert.Contains(t, out.String(), "Corners: ")

	out.Reset()
	require.NoError(t, writeSessionReport(&out, nil, bld.DefaultConfig()))
	assert.Contains(t, out.String(), "Final state: solved")
}

func TestFormatExport(t *testing.T) {
	db, err := storage.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	id, err := repo.Create("GoCube_1A2B", "")
	require.NoError(t, err)
	require.NoError(t, repo.AddMoves(id, 0, time.Now(), []string{"R", "U'", "F2"}))

	session, err := repo.Get(id)
	require.NoError(t, err)
	records, err := repo.Moves(id)
	require.NoError(t, err)
	turns, err := sessionTurns(repo, id)
	require.NoError(t, err)

	txt, err := formatExport("TXT", session, records, turns)
	require.NoError(t, err)
	assert.Equal(t, "R U' F2", txt)

	data, err := formatExport("json", session, records, turns)
	require.NoError(t, err)
	var decoded struct {
		SessionID string `json:"session_id"`
		Moves     []struct {
			Notation string `json:"notation"`
		} `json:"moves"`
		Summary struct {
			TotalMoves int `json:"total_moves"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(data), &decoded))
	assert.Equal(t, id, decoded.SessionID)
	require.Len(t, decoded.Moves, 3)
	assert.Equal(t, "F2", decoded.Moves[2].Notation)
	assert.Equal(t, 3, decoded.Summary.TotalMoves)

	_, err = formatExport("csv", session, records, turns)
	assert.ErrorIs(t, err, ErrExportFormat)
}

func TestSessionTurnsInvalid(t *testing.T) {
	db, err := storage.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	id, err := repo.Create("", "")
	require.NoError(t, err)
	_, err = repo.AddMove(id, 0, time.Now(), "Q")
	require.NoError(t, err)
	_, err = sessionTurns(repo, id)
	assert.Error(t, err)
}

func TestWriteStatus(t *testing.T) {
	db, err := storage.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	s := settings{Size: 4, BLD: bld.DefaultConfig()}
	var out bytes.Buffer
	require.NoError(t, writeStatus(&out, "", s, db))
	assert.Contains(t, out.String(), "Config:    none")
	assert.Contains(t, out.String(), "Size:      4x4")
	assert.Contains(t, out.String(), "(schema 2)")
	assert.Contains(t, out.String(), "Memos:     0")
	assert.Contains(t, out.String(), "Sessions:  none")

	_, err = storage.NewSessionRepository(db).Create("GoCube", "")
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, writeStatus(&out, "/tmp/nxnbld.yaml", s, db))
	assert.Contains(t, out.String(), "Last live: ")
	assert.Contains(t, out.String(), ", 0 moves")
}

func TestLiveSessionStorageFailure(t *testing.T) {
	db, err := storage.Open(":memory:")
	require.NoError(t, err)

	var out bytes.Buffer
	s, err := newLiveSession(db, bld.DefaultConfig(), "", "", &out)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	r := types.Move{N: 3, Face: types.FaceR, End: 1, Count: 1}
	assert.Error(t, s.handle(r, time.Now()))
	assert.Equal(t, 1, s.index)
	assert.Contains(t, out.String(), "  1. R\n")
	assert.False(t, s.tracker.IsSolved())

	assert.Error(t, s.handle(r.Inverse(), time.Now()))
	assert.Equal(t, 2, s.index)
	assert.True(t, s.tracker.IsSolved())
}

func TestSampleTargets(t *testing.T) {
	a := sampleTargets(3, 40, 7, bld.DefaultBuffers)
	b := sampleTargets(3, 40, 7, bld.DefaultBuffers)
	assert.Equal(t, a, b)
	assert.Equal(t, 40, a.Len())
	assert.Greater(t, mean(a.Edges), 0.0)
	assert.LessOrEqual(t, a.Parity, 40)

	totals := a.Totals()
	assert.Equal(t, a.Edges[0]+a.Corners[0], totals[0])

	two := sampleTargets(2, 10, 0, bld.DefaultBuffers)
	assert.Zero(t, mean(two.Edges))
	assert.Zero(t, mean(nil))
}

func TestWriteHistogram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.png")
	sample := sampleTargets(3, 50, 0, bld.DefaultBuffers)
	require.NoError(t, writeHistogram(path, "3x3", sample.Totals()))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrambles.txt")
	require.NoError(t, os.WriteFile(path, []byte("R U\n\n  F2  \r\n"), 0o644))
	lines, err := readLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"R U", "F2"}, lines)

	_, err = readLines(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "R U", truncate("R U", 8))
	assert.Equal(t, "R U R...", truncate("R U R' U' F", 8))
}

func TestReplayModel(t *testing.T) {
	var turns []analysis.Turn
	for i, m := range []types.Move{
		{N: 3, Face: types.FaceR, End: 1, Count: 1},
		{N: 3, Face: types.FaceU, End: 1, Count: 1},
		{N: 3, Face: types.FaceU, End: 1, Count: 3},
		{N: 3, Face: types.FaceR, End: 1, Count: 3},
	} {
		turns = append(turns, analysis.Turn{Move: m, TsMs: int64(i) * 500})
	}
	m := newReplayModel(turns, bld.DefaultConfig(), 100, false, true)
	assert.Equal(t, float64(maxReplaySpeed), m.speed)
	require.NotNil(t, m.Init())

	m.Update(replayMoveMsg{index: 0})
	assert.Equal(t, 1, m.index)
	// Stale ticks are dropped.
	m.Update(replayMoveMsg{index: 0})
	assert.Equal(t, 1, m.index)
	assert.Contains(t, m.View(), "Move 1/4")

	m.Update(key(' '))
	assert.True(t, m.paused)
	assert.Equal(t, 2, m.index)
	m.Update(replayMoveMsg{index: 2})
	assert.Equal(t, 2, m.index)

	m.Update(key('n'))
	m.Update(key('n'))
	assert.Equal(t, 4, m.index)
	assert.True(t, m.tracker.IsSolved())
	assert.Equal(t, 1, m.solves)
	assert.Contains(t, m.View(), "SOLVED")
	assert.Equal(t, 1500*time.Millisecond, m.elapsed())

	// Stepping past the end is a no-op.
	m.Update(key('n'))
	assert.Equal(t, 4, m.index)

	m.Update(key('r'))
	assert.Zero(t, m.index)
	assert.Zero(t, m.solves)

	m.Update(key('-'))
	m.Update(key('-'))
	assert.Equal(t, 4.0, m.speed)

	_, cmd := m.Update(key('q'))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
