// Package scramble generates seeded scramble sequences: canceled random
// moves for any size and random-state scrambles for the 2x2x2.
package scramble

import (
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/internal/notation"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

// RandomMovesLength is the number of canceled moves RandomMoves emits for
// an n cube.
func RandomMovesLength(n int) int {
	switch {
	case n <= 1:
		return 0
	case n <= 3:
		return 25
	default:
		return 40 + (n-4)*20
	}
}

// RandomMoves returns RandomMovesLength(n) random outer-block turns with
// adjacent moves canceled, so no two consecutive moves share layers. The
// final whole-cube rotation a deep turn may leave behind is dropped.
func RandomMoves(n int, seed uint64) []types.Move {
	length := RandomMovesLength(n)
	if length == 0 {
		return nil
	}
	rng := cube.NewRNG(seed)
	c := notation.NewCanceler()
	for c.Len() < length {
		c.Push(types.Move{
			N:     n,
			Face:  cube.AllFaces[rng.IntN(6)].TypesFace(),
			End:   1 + rng.IntN(n/2),
			Count: 1 + rng.IntN(3),
		})
	}
	return c.Moves()
}

// Scramble returns a scramble for an n cube: a random-state scramble for
// the 2x2x2 and random moves otherwise.
func Scramble(n int, seed uint64) []types.Move {
	if n == 2 {
		return RandomState222(seed)
	}
	return RandomMoves(n, seed)
}
