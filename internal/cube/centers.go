package cube

import "lukechampine.com/uint128"

// sticker is implemented by the 24-valued sticker types used as position
// keys by centers, wings and obliques.
type sticker interface {
	~uint8
	Color() Face
}

// stickerCycle moves the value at positions[i] to positions[i+count],
// wrapping.
func stickerCycle[S sticker](perm *[24]S, positions []S, count int) {
	old := *perm
	n := len(positions)
	for i, from := range positions {
		to := positions[(i+count%n+n)%n]
		perm[to] = old[from]
	}
}

// colorsSolved reports whether every slot holds a sticker of its own color.
func colorsSolved[S sticker](perm *[24]S) bool {
	for i, s := range perm {
		if s.Color() != Face(i/4) {
			return false
		}
	}
	return true
}

func stickerIndices[S sticker](perm []S) []int {
	idx := make([]int, len(perm))
	for i, s := range perm {
		idx[i] = int(s)
	}
	return idx
}

// XCenters holds the X-center permutation of one layer. Slots are keyed by
// the corner sticker nearest to them.
type XCenters struct {
	Permutation [24]CornerSticker
}

// NewXCenters returns solved X-centers.
func NewXCenters() XCenters {
	return XCenters{Permutation: SolvedCornerStickers}
}

// At returns the X-center currently in slot position.
func (x *XCenters) At(position CornerSticker) CornerSticker {
	return x.Permutation[position]
}

// Cycle moves the X-center in positions[i] to positions[i+count].
func (x *XCenters) Cycle(positions []CornerSticker, count int) {
	stickerCycle(&x.Permutation, positions, count)
}

// RotateFace turns the X-centers of face by count quarter turns.
func (x *XCenters) RotateFace(face Face, count int) {
	cycle := CornerFaceCycle(face)
	x.Cycle(cycle[:], count)
}

// AreSolved reports whether every face shows a single color.
func (x *XCenters) AreSolved() bool { return colorsSolved(&x.Permutation) }

// AreSolvedSupercube reports whether every X-center is in its own slot.
func (x *XCenters) AreSolvedSupercube() bool { return x.Permutation == SolvedCornerStickers }

// PermutationCoordinate returns the Lehmer rank of the X-center permutation.
func (x *XCenters) PermutationCoordinate() uint128.Uint128 {
	return lehmerRank128(stickerIndices(x.Permutation[:]))
}

// TCenters holds the T-center permutation of one layer of an odd cube.
// Slots are keyed by the edge sticker nearest to them.
type TCenters struct {
	Permutation [24]EdgeSticker
}

// NewTCenters returns solved T-centers.
func NewTCenters() TCenters {
	return TCenters{Permutation: SolvedEdgeStickers}
}

// At returns the T-center currently in slot position.
func (t *TCenters) At(position EdgeSticker) EdgeSticker {
	return t.Permutation[position]
}

// Cycle moves the T-center in positions[i] to positions[i+count].
func (t *TCenters) Cycle(positions []EdgeSticker, count int) {
	stickerCycle(&t.Permutation, positions, count)
}

// RotateFace turns the T-centers of face by count quarter turns.
func (t *TCenters) RotateFace(face Face, count int) {
	cycle := EdgeFaceCycle(face)
	t.Cycle(cycle[:], count)
}

func (t *TCenters) AreSolved() bool { return colorsSolved(&t.Permutation) }

func (t *TCenters) AreSolvedSupercube() bool { return t.Permutation == SolvedEdgeStickers }

// PermutationCoordinate returns the Lehmer rank of the T-center permutation.
func (t *TCenters) PermutationCoordinate() uint128.Uint128 {
	return lehmerRank128(stickerIndices(t.Permutation[:]))
}

// Obliques holds one ring of oblique centers. Slots are keyed by edge
// sticker like T-centers.
type Obliques struct {
	Permutation [24]EdgeSticker
}

// NewObliques returns a solved oblique ring.
func NewObliques() Obliques {
	return Obliques{Permutation: SolvedEdgeStickers}
}

func (o *Obliques) At(position EdgeSticker) EdgeSticker {
	return o.Permutation[position]
}

func (o *Obliques) Cycle(positions []EdgeSticker, count int) {
	stickerCycle(&o.Permutation, positions, count)
}

func (o *Obliques) RotateFace(face Face, count int) {
	cycle := EdgeFaceCycle(face)
	o.Cycle(cycle[:], count)
}

func (o *Obliques) AreSolved() bool { return colorsSolved(&o.Permutation) }

func (o *Obliques) AreSolvedSupercube() bool { return o.Permutation == SolvedEdgeStickers }

// PermutationCoordinate returns the Lehmer rank of the ring's permutation.
func (o *Obliques) PermutationCoordinate() uint128.Uint128 {
	return lehmerRank128(stickerIndices(o.Permutation[:]))
}

// ObliquesPair holds the two mirror-image oblique rings at one (layer,
// index) position.
type ObliquesPair struct {
	Left  Obliques
	Right Obliques
}

// Side returns the ring of the given handedness.
func (p *ObliquesPair) Side(h Handedness) *Obliques {
	if h == LeftHanded {
		return &p.Left
	}
	return &p.Right
}

func (p *ObliquesPair) AreSolved() bool { return p.Left.AreSolved() && p.Right.AreSolved() }

func (p *ObliquesPair) AreSolvedSupercube() bool {
	return p.Left.AreSolvedSupercube() && p.Right.AreSolvedSupercube()
}
