package notation

import (
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

// Canceler accumulates moves in canonical form: adjacent turns of the same
// layers merge, commuting turns are ordered, inner-range turns are split
// into two outer-block turns and deep turns become turns of the opposite
// face. Whole-cube rotations are not emitted; they are folded into the
// tracked orientation and later moves are mapped through it.
type Canceler struct {
	moves       []types.Move
	orientation cube.EdgeSticker
	n           int
}

// NewCanceler returns an empty canceler in the standard orientation.
func NewCanceler() *Canceler {
	return &Canceler{orientation: cube.EdgeUf}
}

// Push adds a move given in the current visual frame.
func (c *Canceler) Push(m types.Move) {
	c.n = m.N
	m.Face = cube.MapOrientation(c.orientation, cube.FaceOf(m.Face)).TypesFace()
	c.cancel(m)
}

// PushAll adds moves in order.
func (c *Canceler) PushAll(moves []types.Move) {
	for _, m := range moves {
		c.Push(m)
	}
}

// Len returns the number of canceled moves, not counting rotations.
func (c *Canceler) Len() int { return len(c.moves) }

// Orientation returns the accumulated whole-cube orientation.
func (c *Canceler) Orientation() cube.EdgeSticker { return c.orientation }

// Moves returns a copy of the canceled moves without the closing rotation.
func (c *Canceler) Moves() []types.Move {
	return append([]types.Move(nil), c.moves...)
}

// Result returns the canceled moves followed by the rotation back to the
// final orientation.
func (c *Canceler) Result() []types.Move {
	if c.n == 0 {
		return nil
	}
	return append(c.Moves(), RotateFrom(c.n, c.orientation)...)
}

func faceLess(a, b types.Face) bool {
	return cube.FaceOf(a) < cube.FaceOf(b)
}

func (c *Canceler) cancelAt(depth int) {
	if len(c.moves) < 1+depth {
		return
	}
	i := len(c.moves) - 1 - depth
	if c.moves[i].Count%4 == 0 {
		c.moves = append(c.moves[:i], c.moves[i+1:]...)
		c.cancelAt(depth)
		return
	}

	if len(c.moves) < 2+depth {
		return
	}
	i = len(c.moves) - 2 - depth
	a, b := &c.moves[i], &c.moves[i+1]

	if b.Count%4 == 0 {
		c.moves = append(c.moves[:i+1], c.moves[i+2:]...)
		c.cancelAt(depth)
		return
	}
	if a.Count%4 == 0 {
		c.moves = append(c.moves[:i], c.moves[i+1:]...)
		c.cancelAt(depth)
		return
	}

	if a.Face == b.Face && a.Start == b.Start && a.End == b.End {
		a.Count = (a.Count + b.Count) % 4
		c.moves = append(c.moves[:i+1], c.moves[i+2:]...)
		c.cancelAt(depth)
		return
	}

	opposite := cube.FaceOf(b.Face).Opposite().TypesFace()
	if (a.Face == b.Face && a.End < b.End) || (a.Face == opposite && faceLess(a.Face, b.Face)) {
		*a, *b = *b, *a
		c.cancelAt(depth + 1)
		c.cancelAt(depth)
	}
}

// cancel adds a move whose face is already physical.
func (c *Canceler) cancel(m types.Move) {
	face := cube.FaceOf(m.Face)

	if m.IsRotation() {
		axis, invert := cube.AxisOf(face)
		count := m.Count
		if invert {
			count = 4 - count%4
		}
		c.orientation = cube.EdgeStickerFromFaces(
			cube.RotateFace(cube.MapOrientation(c.orientation, cube.U), axis, count),
			cube.RotateFace(cube.MapOrientation(c.orientation, cube.F), axis, count),
		)
		return
	}

	if m.Start != 0 {
		c.cancel(types.Move{N: m.N, Face: m.Face, End: m.End, Count: m.Count})
		c.cancel(types.Move{N: m.N, Face: m.Face, End: m.Start, Count: 4 - m.Count%4})
		return
	}

	deep := m.End > m.N/2 || (m.End == m.N/2 && m.N%2 == 0 && face.IsLessErgonomic())
	if deep && m.End != m.N {
		c.cancel(types.Move{N: m.N, Face: face.Opposite().TypesFace(), End: m.N - m.End, Count: m.Count})
		c.cancel(types.Move{N: m.N, Face: m.Face, End: m.N, Count: m.Count})
		return
	}

	c.moves = append(c.moves, m)
	c.cancelAt(0)
}

// RotateFrom returns the rotations x, y and z (in that order, each omitted
// when zero) that turn a standard-orientation cube into orientation.
func RotateFrom(n int, orientation cube.EdgeSticker) []types.Move {
	var moves []types.Move
	x, y, z := orientation.XYZ()
	for _, r := range []struct {
		face  types.Face
		count int
	}{{types.FaceR, x}, {types.FaceU, y}, {types.FaceF, z}} {
		if r.count > 0 {
			moves = append(moves, types.Move{N: n, Face: r.face, End: n, Count: r.count})
		}
	}
	return moves
}

// Canonicalize returns a move sequence with the same effect as moves, in
// canonical form, ending in the rotation that reproduces the final
// orientation.
func Canonicalize(moves []types.Move) []types.Move {
	c := NewCanceler()
	c.PushAll(moves)
	return c.Result()
}
