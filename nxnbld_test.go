package nxnbld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxn_bld/internal/bld"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

func TestMemorize(t *testing.T) {
	memo, err := Memorize(3, "")
	require.NoError(t, err)
	assert.Equal(t, "Edges: \nCorners: ", memo)

	memo, err = Memorize(3, "R U R' U'")
	require.NoError(t, err)
	assert.Contains(t, memo, "Edges: ")
	assert.NotEqual(t, "Edges: \nCorners: ", memo)

	lower, err := Memorize(3, "R U R' U'", WithLettering("abcdefghijklmnopqrstuvwx"))
	require.NoError(t, err)
	assert.Equal(t, memo[:len("Edges: ")], lower[:len("Edges: ")])
	assert.NotEqual(t, memo, lower)
}

func TestMemorizeErrors(t *testing.T) {
	_, err := Memorize(3, "R Q")
	assert.ErrorIs(t, err, ErrInvalidMove)

	_, err = Memorize(3, "R", WithLettering("ABC"))
	assert.ErrorIs(t, err, ErrLettering)
}

func TestMemoOf(t *testing.T) {
	c, err := Scramble(4, "Rw")
	require.NoError(t, err)
	m := MemoOf(c)
	assert.Nil(t, m.Edges)
	assert.NotNil(t, m.Corners)
	require.Len(t, m.Layers, 1)
	assert.Positive(t, m.EdgeTargets())
}

func TestRandom(t *testing.T) {
	assert.Equal(t, Random(3, 9), Random(3, 9))
	assert.NotEmpty(t, Random(5, 9))
}

func TestGoCubeTracking(t *testing.T) {
	g := newTracked(bld.DefaultConfig())

	var moves []string
	solves := 0
	g.OnMove(func(m Move) {
		moves = append(moves, m.Notation())
		// Callbacks may read the cube.
		_ = g.Memo()
	})
	g.OnSolved(func() { solves++ })

	r := types.Move{N: 3, Face: types.FaceR, End: 1, Count: 1}
	g.handleMove(r)
	assert.False(t, g.IsSolved())
	assert.NotEqual(t, "Edges: \nCorners: ", g.Memo())

	g.handleMove(r.Inverse())
	assert.True(t, g.IsSolved())
	assert.Equal(t, 1, solves)
	assert.Equal(t, []string{"R", "R'"}, moves)
	assert.Len(t, g.Moves(), 2)
}
