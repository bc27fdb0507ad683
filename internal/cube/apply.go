package cube

import (
	"fmt"

	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

// FaceOf converts a types.Face to a Face.
func FaceOf(f types.Face) Face {
	switch f {
	case types.FaceU:
		return U
	case types.FaceL:
		return L
	case types.FaceF:
		return F
	case types.FaceR:
		return R
	case types.FaceB:
		return B
	case types.FaceD:
		return D
	default:
		panic(fmt.Sprintf("cube: unknown face %q", string(f)))
	}
}

// TypesFace converts a Face to a types.Face.
func (f Face) TypesFace() types.Face {
	return types.Face(f.String())
}

// ApplyMove applies a types.Move in the visual frame of r. The move must be
// for a cube of r's size.
func (r *RotatedCube) ApplyMove(m types.Move) {
	if m.N != r.Cube.N {
		panic(fmt.Sprintf("cube: %dx%d move applied to a %dx%d", m.N, m.N, r.Cube.N, r.Cube.N))
	}
	r.Rotate(FaceOf(m.Face), m.Start, m.End, m.Count)
}

// ApplyMoves applies a sequence of moves.
func (r *RotatedCube) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		r.ApplyMove(m)
	}
}

// Tracker wraps a RotatedCube and reports when it becomes solved.
type Tracker struct {
	cube           *RotatedCube
	moves          int
	wasSolved      bool
	solvedCallback func(moves int)
}

// NewTracker creates a tracker on a solved n cube.
func NewTracker(n int) *Tracker {
	return &Tracker{cube: NewRotated(New(n)), wasSolved: true}
}

// SetSolvedCallback sets a callback that fires each time a move leaves the
// cube solved after it was not.
func (t *Tracker) SetSolvedCallback(cb func(moves int)) {
	t.solvedCallback = cb
}

// Reset returns the tracker to a solved cube.
func (t *Tracker) Reset() {
	t.cube = NewRotated(New(t.cube.Cube.N))
	t.moves = 0
	t.wasSolved = true
}

// ApplyMove applies a move and checks for a solve.
func (t *Tracker) ApplyMove(m types.Move) {
	t.cube.ApplyMove(m)
	t.moves++

	solved := t.cube.Cube.IsSolvedInAnyOrientation()
	if solved && !t.wasSolved && t.solvedCallback != nil {
		t.solvedCallback(t.moves)
	}
	t.wasSolved = solved
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Moves returns the number of moves applied since the last reset.
func (t *Tracker) Moves() int {
	return t.moves
}

// IsSolved reports whether every face is a single color.
func (t *Tracker) IsSolved() bool {
	return t.cube.Cube.IsSolvedInAnyOrientation()
}

// Cube returns the tracked cube for inspection.
func (t *Tracker) Cube() *RotatedCube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.Cube.String()
}
