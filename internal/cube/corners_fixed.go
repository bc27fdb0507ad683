package cube

import (
	"fmt"
	"sync"
)

// CornerPermutationFixed names one of the seven movable corners of a 2x2x2
// whose DBL corner never moves.
type CornerPermutationFixed uint8

const (
	FixedUbl CornerPermutationFixed = iota
	FixedUbr
	FixedUfr
	FixedUfl
	FixedDfl
	FixedDfr
	FixedDbr
)

// SolvedCornerPermutationFixed lists the movable corners in solved order.
var SolvedCornerPermutationFixed = [7]CornerPermutationFixed{
	FixedUbl, FixedUbr, FixedUfr, FixedUfl, FixedDfl, FixedDfr, FixedDbr,
}

// Corner converts to the general corner permutation.
func (p CornerPermutationFixed) Corner() CornerPermutation { return CornerPermutation(p) }

func (p CornerPermutationFixed) String() string { return p.Corner().String() }

// CornersFixed is a corner state with DBL held in place, so only U, F and
// R turns are allowed.
type CornersFixed struct {
	Permutation [7]CornerPermutationFixed
	Orientation [7]CornerOrientation
}

const (
	// NumFixedOrientationCoords is 3^6.
	NumFixedOrientationCoords = 729
	// NumFixedPermutationCoords is 7!.
	NumFixedPermutationCoords = 5040
	// NumFixedCoords combines both coordinates.
	NumFixedCoords = NumFixedPermutationCoords * NumFixedOrientationCoords
)

// NewCornersFixed returns solved fixed corners.
func NewCornersFixed() CornersFixed {
	return CornersFixed{Permutation: SolvedCornerPermutationFixed}
}

// CornersFixedFromCoordinate decodes a combined coordinate.
func CornersFixedFromCoordinate(coord uint32) CornersFixed {
	return CornersFixedFromCoordinates(
		uint16(coord/NumFixedOrientationCoords),
		uint16(coord%NumFixedOrientationCoords),
	)
}

// CornersFixedFromCoordinates decodes a permutation and orientation
// coordinate.
func CornersFixedFromCoordinates(perm, ori uint16) CornersFixed {
	var c CornersFixed
	for i, p := range lehmerUnrank(uint64(perm), 7) {
		c.Permutation[i] = CornerPermutationFixed(p)
	}
	for i, d := range decodeOrientation(ori, 3, 7) {
		c.Orientation[i] = CornerOrientation(d)
	}
	return c
}

// At returns the sticker currently shown at position. Positions on DBL
// are not valid.
func (c *CornersFixed) At(position CornerSticker) CornerSticker {
	p := position.Permutation()
	return CornerStickerFrom(c.Permutation[p].Corner(), c.Orientation[p].Add(position.Orientation()))
}

// Cycle moves the piece at positions[i] to positions[i+count], wrapping.
func (c *CornersFixed) Cycle(positions []CornerSticker, count int) {
	oldPerm, oldOri := c.Permutation, c.Orientation
	n := len(positions)
	for i, from := range positions {
		to := positions[(i+count%n+n)%n]
		c.Permutation[to.Permutation()] = oldPerm[from.Permutation()]
		c.Orientation[to.Permutation()] = oldOri[from.Permutation()].
			Add(from.Orientation()).
			Add(to.Orientation().Neg())
	}
}

// RotateFace turns face by count quarter turns. It panics unless face is
// U, F or R.
func (c *CornersFixed) RotateFace(face Face, count int) {
	if face != U && face != F && face != R {
		panic(fmt.Sprintf("cube: face %v cannot turn with DBL fixed", face))
	}
	cycle := CornerFaceCycle(face)
	c.Cycle(cycle[:], count)
}

func (c *CornersFixed) AreSolved() bool {
	return c.Permutation == SolvedCornerPermutationFixed && c.Orientation == [7]CornerOrientation{}
}

func (c *CornersFixed) OrientationCoordinate() uint16 {
	return encodeOrientation(c.Orientation[:6], 3)
}

func (c *CornersFixed) PermutationCoordinate() uint16 {
	idx := make([]int, 7)
	for i, p := range c.Permutation {
		idx[i] = int(p)
	}
	return uint16(lehmerRank(idx))
}

// Coords returns the coordinate pair of c.
func (c *CornersFixed) Coords() CornerCoordsFixed {
	return CornerCoordsFixed{Permutation: c.PermutationCoordinate(), Orientation: c.OrientationCoordinate()}
}

// CornerCoordsFixed is the coordinate form of CornersFixed used by searches.
type CornerCoordsFixed struct {
	Permutation uint16
	Orientation uint16
}

func (c CornerCoordsFixed) AreSolved() bool {
	return c.Permutation == 0 && c.Orientation == 0
}

// Combined packs both coordinates into one.
func (c CornerCoordsFixed) Combined() uint32 {
	return uint32(c.Permutation)*NumFixedOrientationCoords + uint32(c.Orientation)
}

// Corners decodes the coordinates.
func (c CornerCoordsFixed) Corners() CornersFixed {
	return CornersFixedFromCoordinates(c.Permutation, c.Orientation)
}

// FixedFaces are the faces a fixed-corner cube may turn, in move table order.
var FixedFaces = [3]Face{U, F, R}

// FixedMoveTable maps a coordinate, face and count to the coordinate after
// the turn.
type FixedMoveTable struct {
	permutation [NumFixedPermutationCoords][3][3]uint16
	orientation [NumFixedOrientationCoords][3][3]uint16
}

// NewFixedMoveTable builds the move table.
func NewFixedMoveTable() *FixedMoveTable {
	t := &FixedMoveTable{}
	for p := range NumFixedPermutationCoords {
		for fi, face := range FixedFaces {
			for count := 1; count < 4; count++ {
				c := CornersFixedFromCoordinates(uint16(p), 0)
				c.RotateFace(face, count)
				t.permutation[p][fi][count-1] = c.PermutationCoordinate()
			}
		}
	}
	for o := range NumFixedOrientationCoords {
		for fi, face := range FixedFaces {
			for count := 1; count < 4; count++ {
				c := CornersFixedFromCoordinates(0, uint16(o))
				c.RotateFace(face, count)
				t.orientation[o][fi][count-1] = c.OrientationCoordinate()
			}
		}
	}
	return t
}

// SharedFixedMoveTable returns a process-wide move table built on first use.
var SharedFixedMoveTable = sync.OnceValue(NewFixedMoveTable)

// RotateFace applies a turn to coordinates. It panics unless face is U, F
// or R.
func (t *FixedMoveTable) RotateFace(c CornerCoordsFixed, face Face, count int) CornerCoordsFixed {
	count %= 4
	if count == 0 {
		return c
	}
	fi := -1
	for i, f := range FixedFaces {
		if f == face {
			fi = i
		}
	}
	if fi < 0 {
		panic(fmt.Sprintf("cube: face %v cannot turn with DBL fixed", face))
	}
	return CornerCoordsFixed{
		Permutation: t.permutation[c.Permutation][fi][count-1],
		Orientation: t.orientation[c.Orientation][fi][count-1],
	}
}
