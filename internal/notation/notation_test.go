package notation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		n    int
		text string
		want string
	}{
		{3, "x", "R[0-3]|"},
		{3, "y", "U[0-3]|"},
		{3, "z", "F[0-3]|"},
		{3, "R", "R[0-1]|"},
		{3, "U'", "U[0-1]'|"},
		{3, "U’", "U[0-1]'|"},
		{3, "F", "F[0-1]|"},
		{3, "M", "L[1-2]|"},
		{3, "E", "D[1-2]|"},
		{3, "S", "F[1-2]|"},
		{3, "r", "R[0-2]|"},
		{5, "lm", "L[1-2]|m"},
		{5, "m", "L[2-3]|"},
		{6, "r", "R[1-2]|"},
		{6, "2r", "R[1-2]|"},
		{6, "3r", "R[2-3]|"},
		{7, "3-4r2", "R[2-4]2|"},
		{5, "3Rw2 U", "R[0-3]2| U"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%s", tt.n, tt.text), func(t *testing.T) {
			m, length, err := ParseMove(tt.n, tt.text)
			require.NoError(t, err)
			suffix := [...]string{"0", "", "2", "'"}[m.Count%4]
			got := fmt.Sprintf("%s[%d-%d]%s|%s", m.Face, m.Start, m.End, suffix, tt.text[length:])
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		n    int
		text string
		err  error
	}{
		{3, "m", ErrInvalidMove},
		{6, "m", ErrInvalidMove},
		{3, "Q", ErrInvalidMove},
		{3, "2R", ErrInvalidMove},
		{3, "2-3Rw", ErrInvalidMove},
		{3, "rw", ErrInvalidMove},
		{3, "4Rw", ErrLayerOutOfRange},
		{1, "Rw", ErrLayerOutOfRange},
		{6, "0r", ErrLayerOutOfRange},
		{6, "7r", ErrLayerOutOfRange},
		{3, "[R, U", ErrUnclosedGroup},
		{3, "(R U", ErrUnclosedGroup},
		{3, "R U]", ErrUnexpectedToken},
		{3, "<R>", ErrUnexpectedToken},
	}
	for _, tt := range tests {
		_, err := Parse(tt.n, tt.text)
		assert.ErrorIs(t, err, tt.err, "%d %q", tt.n, tt.text)
	}
}

func checkAlg(t *testing.T, n int, alg, formatted, standard, canonical string) {
	t.Helper()
	tree, err := Parse(n, alg)
	require.NoError(t, err)
	assert.Equal(t, formatted, tree.String())

	std := tree.Moves()
	assert.Equal(t, standard, types.FormatMoves(std))

	can := Canonicalize(std)
	assert.Equal(t, canonical, types.FormatMoves(can))

	// Undoing the canonical form after the standard one leaves the cube
	// solved up to orientation.
	r := cube.NewRotated(cube.New(n))
	r.ApplyMoves(std)
	for i := len(can) - 1; i >= 0; i-- {
		r.ApplyMove(can[i].Inverse())
	}
	assert.True(t, r.Cube.IsSolvedInAnyOrientation(), "%s != %s", standard, canonical)
}

func TestParseAndFormat(t *testing.T) {
	tests := []struct {
		n                                     int
		alg, formatted, standard, canonical string
	}{
		{3, "R U F", "R U F", "R U F", "R U F"},
		{3, "y R U F", "y R U F", "y R U F", "B U R y"},
		{5, "3Rw R U F", "3Rw R U F", "3Rw R U F", "R Lw F D x"},
		{5, "[3Uw': [U' m2 U, l']]", "[3Uw': [U' m2 U, l']]", "3Uw' U' m2 U l' U' m2 U l 3Uw", "Dw' U' Bw2 Fw2 D Bw' B D' Bw2 Fw2 U Bw B' Dw"},
		{3, "U U2", "U U2", "U U2", "U'"},
		{3, "[U: [U2, M']]", "[U: [U2, M']]", "U U2 M' U2 M U'", "U' R' L F2 R L' U'"},
		{3, "[x: [U: [U2, M']]]", "[x: [U: [U2, M']]]", "x U U2 M' U2 M U' x'", "F' R' L D2 R L' F'"},
		{3, "[E': [L' E L, U]]", "[E': [L' E L, U]]", "E' L' E L U L' E' L U' E", "D U' F' D' U L U L' D U' F D'"},
		{5, "3Uw Uw U", "3Uw Uw U", "3Uw Uw U", "Dw Uw U y"},
		{5, "U Uw 3Uw", "U Uw 3Uw", "U Uw 3Uw", "Dw Uw U y"},
		{4, "U2 r2", "U2 r2", "U2 r2", "U2 Rw2 R2"},
		{5, "F Fw'", "F Fw'", "F Fw'", "Fw' F"},
		{4, "F Fw'", "F Fw'", "F Fw'", "Fw' F"},
		{4, "Rw", "Rw", "Rw", "Rw"},
		{4, "3Rw", "3Rw", "3Rw", "L x"},
		{4, "x", "x", "x", "x"},
		{4, "Uw U'", "Uw U'", "Uw U'", "Uw U'"},
		{4, "u", "u", "u", "Uw U'"},
		{4, "Fw' Lw'", "Fw' Lw'", "Fw' Lw'", "Fw' Rw' x"},
		{4, "F Fw' Lw' R r u", "F Fw' Lw' R r u", "F Fw' Lw' R r u", "x"},
		{4, "r u", "r u", "r u", "Rw R' Uw U'"},
		{4, "r R", "r R", "r R", "Rw"},
		{4, "r", "r", "r", "Rw R'"},
		{3, "M", "M", "M", "R L' x'"},
		{3, "E", "E", "E", "D' U y'"},
		{3, "S", "S", "S", "B F' z"},
		{3, "Fw", "Fw", "Fw", "B z"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%s", tt.n, tt.alg), func(t *testing.T) {
			checkAlg(t, tt.n, tt.alg, tt.formatted, tt.standard, tt.canonical)
		})
	}
}

func TestGroupsKeepDelimiters(t *testing.T) {
	tree, err := Parse(3, "(R U) {F} [R2 / U]")
	require.NoError(t, err)
	assert.Equal(t, "(R U) {F} [R2 / U]", tree.String())
	assert.Equal(t, "R U F R2 U R2 R2 U' R2", types.FormatMoves(tree.Moves()))

	tree, err = Parse(3, "R: U")
	require.NoError(t, err)
	assert.Equal(t, "[R: U]", tree.String())
}

func TestInverseUndoesTree(t *testing.T) {
	algs := []string{
		"R U R' U'",
		"[R U: [M', U2]]",
		"[R' / U]",
		"[[R, U]: [F, D]]",
		"(R U2) [l': U] x y2",
	}
	for _, alg := range algs {
		tree, err := Parse(5, alg)
		require.NoError(t, err)
		c := cube.New(5)
		r := cube.NewRotated(c)
		tree.ApplyTo(r)
		tree.ApplyInverseTo(r)
		assert.True(t, c.IsSolved(), alg)
		assert.Equal(t, cube.EdgeUf, r.Orientation, alg)
	}
}

func TestConstructors(t *testing.T) {
	r := Leaf(types.Move{N: 3, Face: types.FaceR, End: 1, Count: 1})
	u := Leaf(types.Move{N: 3, Face: types.FaceU, End: 1, Count: 1})
	assert.Equal(t, "[R, U]", Commutator(r, u).String())
	assert.Equal(t, "R U R' U'", types.FormatMoves(Commutator(r, u).Moves()))
	assert.Equal(t, "U R U' R'", types.FormatMoves(Commutator(r, u).InverseMoves()))
	assert.Equal(t, "[R: U]", Conjugate(r, u).String())
	assert.Equal(t, "R U' R'", types.FormatMoves(Conjugate(r, u).InverseMoves()))
	assert.Equal(t, "R U", Group(DelimNone, r, u).String())
}

func TestCancelerLength(t *testing.T) {
	c := NewCanceler()
	r := types.Move{N: 3, Face: types.FaceR, End: 1, Count: 1}
	c.Push(r)
	c.Push(r.Inverse())
	assert.Zero(t, c.Len())
	c.Push(types.Move{N: 3, Face: types.FaceU, End: 3, Count: 1})
	assert.Zero(t, c.Len())
	assert.Equal(t, cube.EdgeUr, c.Orientation())
	c.Push(r)
	assert.Equal(t, "B y", types.FormatMoves(c.Result()))
}

func TestRotateFrom(t *testing.T) {
	assert.Empty(t, RotateFrom(3, cube.EdgeUf))
	for _, s := range cube.SolvedEdgeStickers {
		r := cube.NewRotated(cube.New(3))
		r.ApplyMoves(RotateFrom(3, s))
		assert.Equal(t, s, r.Orientation, "%v", s)
	}
}
