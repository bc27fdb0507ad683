package cube

import "fmt"

// EdgePermutation names a midge piece by its solved position.
type EdgePermutation uint8

const (
	EdgePermUb EdgePermutation = iota
	EdgePermUr
	EdgePermUf
	EdgePermUl
	EdgePermFr
	EdgePermFl
	EdgePermBl
	EdgePermBr
	EdgePermDf
	EdgePermDr
	EdgePermDb
	EdgePermDl
)

// SolvedEdgePermutation lists edge pieces in solved order.
var SolvedEdgePermutation = [12]EdgePermutation{
	EdgePermUb, EdgePermUr, EdgePermUf, EdgePermUl,
	EdgePermFr, EdgePermFl, EdgePermBl, EdgePermBr,
	EdgePermDf, EdgePermDr, EdgePermDb, EdgePermDl,
}

var edgePermutationStickers = [12][2]EdgeSticker{
	{EdgeUb, EdgeBu},
	{EdgeUr, EdgeRu},
	{EdgeUf, EdgeFu},
	{EdgeUl, EdgeLu},
	{EdgeFr, EdgeRf},
	{EdgeFl, EdgeLf},
	{EdgeBl, EdgeLb},
	{EdgeBr, EdgeRb},
	{EdgeDf, EdgeFd},
	{EdgeDr, EdgeRd},
	{EdgeDb, EdgeBd},
	{EdgeDl, EdgeLd},
}

var edgePermutationNames = [12]string{"Ub", "Ur", "Uf", "Ul", "Fr", "Fl", "Bl", "Br", "Df", "Dr", "Db", "Dl"}

func (p EdgePermutation) Index() int { return int(p) }

func (p EdgePermutation) String() string { return edgePermutationNames[p] }

// EdgeOrientation is an element of the group of order 2.
type EdgeOrientation uint8

const (
	EdgeGood EdgeOrientation = iota
	EdgeBad
)

// EdgeOrientationFromIndex wraps i into the group.
func EdgeOrientationFromIndex(i int) EdgeOrientation { return EdgeOrientation(i % 2) }

func (o EdgeOrientation) Index() int { return int(o) }

// Xor composes two orientations.
func (o EdgeOrientation) Xor(other EdgeOrientation) EdgeOrientation { return o ^ other }

// Flipped returns the other orientation.
func (o EdgeOrientation) Flipped() EdgeOrientation { return o ^ 1 }

func (o EdgeOrientation) String() string {
	if o == EdgeGood {
		return "Good"
	}
	return "Bad"
}

// EdgeDirection is the side of a face an edge sticker sits on.
type EdgeDirection uint8

const (
	DirTop EdgeDirection = iota
	DirRight
	DirBottom
	DirLeft
)

// EdgeSticker identifies one of the 24 edge sticker positions. Its index is
// face*4 + direction.
type EdgeSticker uint8

const (
	EdgeUb EdgeSticker = iota
	EdgeUr
	EdgeUf
	EdgeUl
	EdgeLu
	EdgeLf
	EdgeLd
	EdgeLb
	EdgeFu
	EdgeFr
	EdgeFd
	EdgeFl
	EdgeRu
	EdgeRb
	EdgeRd
	EdgeRf
	EdgeBu
	EdgeBl
	EdgeBd
	EdgeBr
	EdgeDf
	EdgeDr
	EdgeDb
	EdgeDl
)

var edgeStickerNames = [24]string{
	"Ub", "Ur", "Uf", "Ul",
	"Lu", "Lf", "Ld", "Lb",
	"Fu", "Fr", "Fd", "Fl",
	"Ru", "Rb", "Rd", "Rf",
	"Bu", "Bl", "Bd", "Br",
	"Df", "Dr", "Db", "Dl",
}

var edgeStickerPermutations = [24]EdgePermutation{
	EdgePermUb, EdgePermUr, EdgePermUf, EdgePermUl,
	EdgePermUl, EdgePermFl, EdgePermDl, EdgePermBl,
	EdgePermUf, EdgePermFr, EdgePermDf, EdgePermFl,
	EdgePermUr, EdgePermBr, EdgePermDr, EdgePermFr,
	EdgePermUb, EdgePermBl, EdgePermDb, EdgePermBr,
	EdgePermDf, EdgePermDr, EdgePermDb, EdgePermDl,
}

var edgeStickerOrientations = [24]EdgeOrientation{
	EdgeGood, EdgeGood, EdgeGood, EdgeGood,
	EdgeBad, EdgeBad, EdgeBad, EdgeBad,
	EdgeBad, EdgeGood, EdgeBad, EdgeGood,
	EdgeBad, EdgeBad, EdgeBad, EdgeBad,
	EdgeBad, EdgeGood, EdgeBad, EdgeGood,
	EdgeGood, EdgeGood, EdgeGood, EdgeGood,
}

// edgeStickerXYZ is the shortest x, y, z rotation sequence that brings each
// sticker to the UF position of a solved cube.
var edgeStickerXYZ = [24][3]int{
	{0, 2, 0}, {0, 1, 0}, {0, 0, 0}, {0, 3, 0},
	{3, 0, 1}, {0, 0, 1}, {1, 0, 1}, {0, 2, 3},
	{3, 0, 2}, {0, 1, 1}, {1, 0, 0}, {0, 3, 3},
	{3, 0, 3}, {0, 2, 1}, {1, 0, 3}, {0, 0, 3},
	{3, 0, 0}, {0, 3, 1}, {1, 0, 2}, {0, 1, 3},
	{0, 0, 2}, {0, 1, 2}, {2, 0, 0}, {0, 3, 2},
}

var edgeByFaces = func() (t [6][6]EdgeSticker) {
	for _, stickers := range edgePermutationStickers {
		a, b := stickers[0], stickers[1]
		t[a.Color()][b.Color()] = a
		t[b.Color()][a.Color()] = b
	}
	return t
}()

// SolvedEdgeStickers lists every edge sticker in index order.
var SolvedEdgeStickers = func() (s [24]EdgeSticker) {
	for i := range s {
		s[i] = EdgeSticker(i)
	}
	return s
}()

// EdgeStickerFromIndex returns the sticker with index i.
func EdgeStickerFromIndex(i int) EdgeSticker {
	if i < 0 || i >= 24 {
		panic(fmt.Sprintf("cube: edge sticker index %d out of range", i))
	}
	return EdgeSticker(i)
}

// EdgeStickerFrom returns the sticker of piece p seen with orientation o.
func EdgeStickerFrom(p EdgePermutation, o EdgeOrientation) EdgeSticker {
	return edgePermutationStickers[p][o]
}

// EdgeStickerFromFaceAndDirection returns the sticker on side dir of face.
func EdgeStickerFromFaceAndDirection(face Face, dir EdgeDirection) EdgeSticker {
	return EdgeSticker(int(face)*4 + int(dir))
}

// EdgeStickerFromFaces returns the sticker on face a of the edge shared with
// face b. The faces must be adjacent.
func EdgeStickerFromFaces(a, b Face) EdgeSticker {
	if a == b || a == b.Opposite() {
		panic(fmt.Sprintf("cube: faces %v and %v do not share an edge", a, b))
	}
	return edgeByFaces[a][b]
}

// EdgeFaceCycle returns the four edge stickers of face in clockwise order.
func EdgeFaceCycle(face Face) [4]EdgeSticker {
	return [4]EdgeSticker{
		EdgeStickerFromFaceAndDirection(face, DirTop),
		EdgeStickerFromFaceAndDirection(face, DirRight),
		EdgeStickerFromFaceAndDirection(face, DirBottom),
		EdgeStickerFromFaceAndDirection(face, DirLeft),
	}
}

// EdgeSliceCenterCycle returns the T-center positions moved by a slice turn
// parallel to face.
func EdgeSliceCenterCycle(face Face) [4]EdgeSticker {
	cycle := EdgeFaceCycle(face)
	for i, s := range cycle {
		cycle[i] = s.Flipped()
	}
	return cycle
}

func (s EdgeSticker) Index() int { return int(s) }

func (s EdgeSticker) String() string { return edgeStickerNames[s] }

// Color is the face the sticker shows when solved.
func (s EdgeSticker) Color() Face { return Face(s / 4) }

// Direction is the side of its face the sticker sits on.
func (s EdgeSticker) Direction() EdgeDirection { return EdgeDirection(s % 4) }

// Permutation returns the piece the sticker belongs to.
func (s EdgeSticker) Permutation() EdgePermutation { return edgeStickerPermutations[s] }

// Orientation returns the flip of the sticker relative to its piece's
// reference sticker.
func (s EdgeSticker) Orientation() EdgeOrientation { return edgeStickerOrientations[s] }

// WithOrientation returns the sticker of the same piece with orientation o.
func (s EdgeSticker) WithOrientation(o EdgeOrientation) EdgeSticker {
	return EdgeStickerFrom(s.Permutation(), o)
}

// Flipped returns the other sticker of the same piece.
func (s EdgeSticker) Flipped() EdgeSticker {
	return s.WithOrientation(s.Orientation().Flipped())
}

// XYZ returns the x, y and z quarter-turn counts that bring s to UF.
func (s EdgeSticker) XYZ() (x, y, z int) {
	t := edgeStickerXYZ[s]
	return t[0], t[1], t[2]
}

// Edges holds the permutation and orientation of the twelve midges.
type Edges struct {
	Permutation [12]EdgePermutation
	Orientation [12]EdgeOrientation
}

// NewEdges returns solved edges.
func NewEdges() Edges {
	return Edges{Permutation: SolvedEdgePermutation}
}

// At returns the sticker currently shown at position.
func (e *Edges) At(position EdgeSticker) EdgeSticker {
	p := position.Permutation()
	return EdgeStickerFrom(e.Permutation[p], e.Orientation[p].Xor(position.Orientation()))
}

// Cycle moves the piece at positions[i] to positions[i+count], wrapping.
func (e *Edges) Cycle(positions []EdgeSticker, count int) {
	oldPerm, oldOri := e.Permutation, e.Orientation
	n := len(positions)
	for i, from := range positions {
		to := positions[(i+count%n+n)%n]
		e.Permutation[to.Permutation()] = oldPerm[from.Permutation()]
		e.Orientation[to.Permutation()] = oldOri[from.Permutation()].
			Xor(from.Orientation()).
			Xor(to.Orientation())
	}
}

// RotateFace turns the edges of face by count quarter turns.
func (e *Edges) RotateFace(face Face, count int) {
	cycle := EdgeFaceCycle(face)
	e.Cycle(cycle[:], count)
}

// AreSolved reports whether every edge is placed and oriented.
func (e *Edges) AreSolved() bool {
	return e.Permutation == SolvedEdgePermutation && e.Orientation == [12]EdgeOrientation{}
}

const (
	// NumEdgeOrientationCoords is 2^11.
	NumEdgeOrientationCoords = 2048
	// NumEdgePermutationCoords is 12!.
	NumEdgePermutationCoords = 479001600
)

// OrientationCoordinate encodes the flip of the first eleven edges in
// base 2.
func (e *Edges) OrientationCoordinate() uint16 {
	return encodeOrientation(e.Orientation[:11], 2)
}

// PermutationCoordinate returns the Lehmer rank of the edge permutation.
func (e *Edges) PermutationCoordinate() uint32 {
	return uint32(lehmerRank(edgeIndices(e.Permutation[:])))
}

// EdgesFromCoordinates decodes a permutation and orientation coordinate.
func EdgesFromCoordinates(perm uint32, ori uint16) Edges {
	var e Edges
	for i, p := range lehmerUnrank(uint64(perm), 12) {
		e.Permutation[i] = EdgePermutation(p)
	}
	for i, d := range decodeOrientation(ori, 2, 12) {
		e.Orientation[i] = EdgeOrientation(d)
	}
	return e
}

// Parity reports whether the edge permutation is odd.
func (e *Edges) Parity() bool {
	return permutationParity(edgeIndices(e.Permutation[:]))
}

func edgeIndices(perm []EdgePermutation) []int {
	idx := make([]int, len(perm))
	for i, p := range perm {
		idx[i] = int(p)
	}
	return idx
}
