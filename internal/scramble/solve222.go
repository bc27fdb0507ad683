package scramble

import (
	"sync"

	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

// maxDepth222 is God's number for the 2x2x2 in the quarter-and-half turn
// metric.
const maxDepth222 = 11

// searchFaces is the order faces are tried in during the search.
var searchFaces = [3]cube.Face{cube.U, cube.R, cube.F}

// pruningTables hold, per coordinate, the minimum number of moves needed
// to solve that coordinate alone.
type pruningTables struct {
	permutation [cube.NumFixedPermutationCoords]uint8
	orientation [cube.NumFixedOrientationCoords]uint8
}

func fillPruning(table []uint8, next func(coord int, face cube.Face, count int) int) {
	for i := range table {
		table[i] = 0xff
	}
	table[0] = 0
	filled := 1
	for depth := uint8(0); filled < len(table); depth++ {
		for coord, d := range table {
			if d != depth {
				continue
			}
			for _, face := range cube.FixedFaces {
				for count := 1; count < 4; count++ {
					n := next(coord, face, count)
					if table[n] == 0xff {
						table[n] = depth + 1
						filled++
					}
				}
			}
		}
	}
}

func newPruningTables() *pruningTables {
	p := &pruningTables{}
	mt := cube.SharedFixedMoveTable()
	fillPruning(p.permutation[:], func(coord int, face cube.Face, count int) int {
		return int(mt.RotateFace(cube.CornerCoordsFixed{Permutation: uint16(coord)}, face, count).Permutation)
	})
	fillPruning(p.orientation[:], func(coord int, face cube.Face, count int) int {
		return int(mt.RotateFace(cube.CornerCoordsFixed{Orientation: uint16(coord)}, face, count).Orientation)
	})
	return p
}

var sharedPruningTables = sync.OnceValue(newPruningTables)

func (p *pruningTables) check(c cube.CornerCoordsFixed, limit int) bool {
	return int(p.orientation[c.Orientation]) <= limit && int(p.permutation[c.Permutation]) <= limit
}

type solver struct {
	prune *pruningTables
	moves *cube.FixedMoveTable
	path  []types.Move
}

func (s *solver) search(c cube.CornerCoordsFixed, movesLeft int) bool {
	if c.AreSolved() {
		return true
	}
	if movesLeft == 0 {
		return false
	}
	for _, face := range searchFaces {
		if len(s.path) > 0 {
			last := cube.FaceOf(s.path[len(s.path)-1].Face)
			if last == face || (last == face.Opposite() && face < face.Opposite()) {
				continue
			}
		}
		for count := 1; count < 4; count++ {
			next := s.moves.RotateFace(c, face, count)
			if !s.prune.check(next, movesLeft-1) {
				continue
			}
			s.path = append(s.path, types.Move{N: 2, Face: face.TypesFace(), End: 1, Count: count})
			if s.search(next, movesLeft-1) {
				return true
			}
			s.path = s.path[:len(s.path)-1]
		}
	}
	return false
}

// Solve222 returns an optimal U, R, F solution for c using iterative
// deepening with pruning tables. It panics if no solution is found within
// maxDepth222 moves, which cannot happen for a reachable state.
func Solve222(c cube.CornerCoordsFixed) []types.Move {
	s := &solver{prune: sharedPruningTables(), moves: cube.SharedFixedMoveTable()}
	for limit := 0; limit <= maxDepth222; limit++ {
		if !s.prune.check(c, limit) {
			continue
		}
		if s.search(c, limit) {
			return s.path
		}
	}
	panic("scramble: no 2x2x2 solution within 11 moves")
}

// RandomState222 picks a uniformly random 2x2x2 state for seed and returns
// an optimal scramble that produces it from solved.
func RandomState222(seed uint64) []types.Move {
	rng := cube.NewRNG(seed)
	state := cube.CornersFixedFromCoordinate(uint32(rng.IntN(cube.NumFixedCoords)))
	return types.InverseMoves(Solve222(state.Coords()))
}
