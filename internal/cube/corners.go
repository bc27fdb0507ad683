package cube

import "fmt"

// CornerPermutation names a corner piece by its solved position.
type CornerPermutation uint8

const (
	CornerPermUbl CornerPermutation = iota
	CornerPermUbr
	CornerPermUfr
	CornerPermUfl
	CornerPermDfl
	CornerPermDfr
	CornerPermDbr
	CornerPermDbl
)

// SolvedCornerPermutation lists corner pieces in solved order.
var SolvedCornerPermutation = [8]CornerPermutation{
	CornerPermUbl, CornerPermUbr, CornerPermUfr, CornerPermUfl,
	CornerPermDfl, CornerPermDfr, CornerPermDbr, CornerPermDbl,
}

// cornerPermutationStickers lists each piece's stickers by orientation.
var cornerPermutationStickers = [8][3]CornerSticker{
	{CornerUbl, CornerLub, CornerBul},
	{CornerUbr, CornerBur, CornerRub},
	{CornerUfr, CornerRuf, CornerFur},
	{CornerUfl, CornerFul, CornerLuf},
	{CornerDfl, CornerLdf, CornerFdl},
	{CornerDfr, CornerFdr, CornerRdf},
	{CornerDbr, CornerRdb, CornerBdr},
	{CornerDbl, CornerBdl, CornerLdb},
}

var cornerPermutationNames = [8]string{"Ubl", "Ubr", "Ufr", "Ufl", "Dfl", "Dfr", "Dbr", "Dbl"}

func (p CornerPermutation) Index() int { return int(p) }

func (p CornerPermutation) String() string { return cornerPermutationNames[p] }

// CornerOrientation is an element of the cyclic group of order 3.
type CornerOrientation uint8

const (
	CornerGood CornerOrientation = iota
	CornerBadCw
	CornerBadCcw
)

// CornerOrientationFromIndex wraps i into the group.
func CornerOrientationFromIndex(i int) CornerOrientation {
	return CornerOrientation(i % 3)
}

func (o CornerOrientation) Index() int { return int(o) }

// Add composes two orientations.
func (o CornerOrientation) Add(other CornerOrientation) CornerOrientation {
	return CornerOrientation((o + other) % 3)
}

// Neg returns the group inverse.
func (o CornerOrientation) Neg() CornerOrientation {
	switch o {
	case CornerBadCw:
		return CornerBadCcw
	case CornerBadCcw:
		return CornerBadCw
	default:
		return CornerGood
	}
}

func (o CornerOrientation) String() string {
	return [...]string{"Good", "BadCw", "BadCcw"}[o]
}

// CornerDirection is the corner of a face a sticker sits in.
type CornerDirection uint8

const (
	DirTopLeft CornerDirection = iota
	DirTopRight
	DirBottomRight
	DirBottomLeft
)

// CornerSticker identifies one of the 24 corner sticker positions. Its
// index is face*4 + direction.
type CornerSticker uint8

const (
	CornerUbl CornerSticker = iota
	CornerUbr
	CornerUfr
	CornerUfl
	CornerLub
	CornerLuf
	CornerLdf
	CornerLdb
	CornerFul
	CornerFur
	CornerFdr
	CornerFdl
	CornerRuf
	CornerRub
	CornerRdb
	CornerRdf
	CornerBur
	CornerBul
	CornerBdl
	CornerBdr
	CornerDfl
	CornerDfr
	CornerDbr
	CornerDbl
)

var cornerStickerNames = [24]string{
	"Ubl", "Ubr", "Ufr", "Ufl",
	"Lub", "Luf", "Ldf", "Ldb",
	"Ful", "Fur", "Fdr", "Fdl",
	"Ruf", "Rub", "Rdb", "Rdf",
	"Bur", "Bul", "Bdl", "Bdr",
	"Dfl", "Dfr", "Dbr", "Dbl",
}

var cornerStickerPermutations = [24]CornerPermutation{
	CornerPermUbl, CornerPermUbr, CornerPermUfr, CornerPermUfl,
	CornerPermUbl, CornerPermUfl, CornerPermDfl, CornerPermDbl,
	CornerPermUfl, CornerPermUfr, CornerPermDfr, CornerPermDfl,
	CornerPermUfr, CornerPermUbr, CornerPermDbr, CornerPermDfr,
	CornerPermUbr, CornerPermUbl, CornerPermDbl, CornerPermDbr,
	CornerPermDfl, CornerPermDfr, CornerPermDbr, CornerPermDbl,
}

var cornerStickerOrientations = [24]CornerOrientation{
	CornerGood, CornerGood, CornerGood, CornerGood,
	CornerBadCw, CornerBadCcw, CornerBadCw, CornerBadCcw,
	CornerBadCw, CornerBadCcw, CornerBadCw, CornerBadCcw,
	CornerBadCw, CornerBadCcw, CornerBadCw, CornerBadCcw,
	CornerBadCw, CornerBadCcw, CornerBadCw, CornerBadCcw,
	CornerGood, CornerGood, CornerGood, CornerGood,
}

// cornerByFaces[a][b][c] is the sticker on face a of the corner touching b
// and c.
var cornerByFaces = func() (t [6][6][6]CornerSticker) {
	for _, stickers := range cornerPermutationStickers {
		for i, s := range stickers {
			b := stickers[(i+1)%3].Color()
			c := stickers[(i+2)%3].Color()
			t[s.Color()][b][c] = s
			t[s.Color()][c][b] = s
		}
	}
	return t
}()

// SolvedCornerStickers lists every corner sticker in index order.
var SolvedCornerStickers = func() (s [24]CornerSticker) {
	for i := range s {
		s[i] = CornerSticker(i)
	}
	return s
}()

// CornerStickerFromIndex returns the sticker with index i.
func CornerStickerFromIndex(i int) CornerSticker {
	if i < 0 || i >= 24 {
		panic(fmt.Sprintf("cube: corner sticker index %d out of range", i))
	}
	return CornerSticker(i)
}

// CornerStickerFrom returns the sticker of piece p seen with orientation o.
func CornerStickerFrom(p CornerPermutation, o CornerOrientation) CornerSticker {
	return cornerPermutationStickers[p][o]
}

// CornerStickerFromFaceAndDirection returns the sticker in corner dir of face.
func CornerStickerFromFaceAndDirection(face Face, dir CornerDirection) CornerSticker {
	return CornerSticker(int(face)*4 + int(dir))
}

// CornerStickerFromFaces returns the sticker on face a of the corner shared
// with faces b and c. The three faces must be mutually adjacent.
func CornerStickerFromFaces(a, b, c Face) CornerSticker {
	if a == b || a == c || b == c || a == b.Opposite() || a == c.Opposite() || b == c.Opposite() {
		panic(fmt.Sprintf("cube: faces %v %v %v do not meet at a corner", a, b, c))
	}
	return cornerByFaces[a][b][c]
}

// CornerFaceCycle returns the four corner stickers of face in clockwise order.
func CornerFaceCycle(face Face) [4]CornerSticker {
	return [4]CornerSticker{
		CornerStickerFromFaceAndDirection(face, DirTopLeft),
		CornerStickerFromFaceAndDirection(face, DirTopRight),
		CornerStickerFromFaceAndDirection(face, DirBottomRight),
		CornerStickerFromFaceAndDirection(face, DirBottomLeft),
	}
}

// CornerSliceCycleLH returns the X-center positions moved by a slice turn
// parallel to face, on the left-handed diagonal.
func CornerSliceCycleLH(face Face) [4]CornerSticker {
	var cycle [4]CornerSticker
	for i, a := range face.Neighbors() {
		cycle[i] = CornerStickerFromFaces(a, face, a.mustCrossLH(face))
	}
	return cycle
}

// CornerSliceCycleRH is the right-handed counterpart of CornerSliceCycleLH.
func CornerSliceCycleRH(face Face) [4]CornerSticker {
	var cycle [4]CornerSticker
	for i, a := range face.Neighbors() {
		cycle[i] = CornerStickerFromFaces(a, face, a.mustCrossRH(face))
	}
	return cycle
}

func (s CornerSticker) Index() int { return int(s) }

func (s CornerSticker) String() string { return cornerStickerNames[s] }

// Color is the face the sticker shows when solved.
func (s CornerSticker) Color() Face { return Face(s / 4) }

// Permutation returns the piece the sticker belongs to.
func (s CornerSticker) Permutation() CornerPermutation { return cornerStickerPermutations[s] }

// Orientation returns the twist of the sticker relative to its piece's
// reference sticker.
func (s CornerSticker) Orientation() CornerOrientation { return cornerStickerOrientations[s] }

// Corners holds the permutation and orientation of the eight corners.
type Corners struct {
	Permutation [8]CornerPermutation
	Orientation [8]CornerOrientation
}

// NewCorners returns solved corners.
func NewCorners() Corners {
	return Corners{Permutation: SolvedCornerPermutation}
}

// At returns the sticker currently shown at position.
func (c *Corners) At(position CornerSticker) CornerSticker {
	p := position.Permutation()
	return CornerStickerFrom(c.Permutation[p], c.Orientation[p].Add(position.Orientation()))
}

// Cycle moves the piece at positions[i] to positions[i+count], wrapping.
// Positions must name distinct pieces.
func (c *Corners) Cycle(positions []CornerSticker, count int) {
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

// RotateFace turns the corners of face by count quarter turns.
func (c *Corners) RotateFace(face Face, count int) {
	cycle := CornerFaceCycle(face)
	c.Cycle(cycle[:], count)
}

// AreSolved reports whether every corner is placed and oriented.
func (c *Corners) AreSolved() bool {
	return c.Permutation == SolvedCornerPermutation && c.Orientation == [8]CornerOrientation{}
}

const (
	// NumCornerOrientationCoords is 3^7.
	NumCornerOrientationCoords = 2187
	// NumCornerPermutationCoords is 8!.
	NumCornerPermutationCoords = 40320
	// NumCornerCoords combines both coordinates.
	NumCornerCoords = NumCornerPermutationCoords * NumCornerOrientationCoords
)

// OrientationCoordinate encodes the orientation of the first seven corners
// in base 3.
func (c *Corners) OrientationCoordinate() uint16 {
	return encodeOrientation(c.Orientation[:7], 3)
}

// PermutationCoordinate returns the Lehmer rank of the corner permutation.
func (c *Corners) PermutationCoordinate() uint16 {
	return uint16(lehmerRank(cornerIndices(c.Permutation[:])))
}

// Coordinate combines the permutation and orientation coordinates.
func (c *Corners) Coordinate() uint32 {
	return uint32(c.PermutationCoordinate())*NumCornerOrientationCoords + uint32(c.OrientationCoordinate())
}

// CornersFromCoordinate inverts Corners.Coordinate.
func CornersFromCoordinate(coord uint32) Corners {
	return CornersFromCoordinates(
		uint16(coord/NumCornerOrientationCoords),
		uint16(coord%NumCornerOrientationCoords),
	)
}

// CornersFromCoordinates decodes a permutation and orientation coordinate.
func CornersFromCoordinates(perm, ori uint16) Corners {
	var c Corners
	for i, p := range lehmerUnrank(uint64(perm), 8) {
		c.Permutation[i] = CornerPermutation(p)
	}
	digits := decodeOrientation(ori, 3, 8)
	for i, d := range digits {
		c.Orientation[i] = CornerOrientation(d)
	}
	return c
}

// Parity reports whether the corner permutation is odd.
func (c *Corners) Parity() bool {
	return permutationParity(cornerIndices(c.Permutation[:]))
}

func cornerIndices(perm []CornerPermutation) []int {
	idx := make([]int, len(perm))
	for i, p := range perm {
		idx[i] = int(p)
	}
	return idx
}
