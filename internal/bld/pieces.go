// Package bld decomposes the state of each piece category into the cycles,
// parities and twists a blindfolded solver memorizes, and renders them as
// letter pairs.
package bld

import "github.com/SeamusWaldron/nxn_bld/internal/cube"

// Pieces is a piece category the memo algorithms can decompose. S is the
// sticker type, P names a piece slot and O is the orientation group, which
// is struct{} for categories where only color matters.
type Pieces[S, P, O comparable] interface {
	// At returns the sticker that occupies position.
	At(position S) S
	// Cycle moves the piece at positions[i] to positions[i+count].
	Cycle(positions []S, count int)

	Sticker(p P, o O) S
	StickerPermutation(s S) P
	StickerOrientation(s S) O

	// Permutations lists the piece slots in canonical order.
	Permutations() []P
	// Stickers lists every sticker in index order.
	Stickers() []S
	Good() O
	// OnFace returns the stickers on face in clockwise order from the top
	// left.
	OnFace(face cube.Face) [4]S
	Color(s S) cube.Face
}

// EdgePieces adapts the midge edges.
type EdgePieces struct{ *cube.Edges }

func (EdgePieces) Sticker(p cube.EdgePermutation, o cube.EdgeOrientation) cube.EdgeSticker {
	return cube.EdgeStickerFrom(p, o)
}
func (EdgePieces) StickerPermutation(s cube.EdgeSticker) cube.EdgePermutation { return s.Permutation() }
func (EdgePieces) StickerOrientation(s cube.EdgeSticker) cube.EdgeOrientation { return s.Orientation() }
func (EdgePieces) Permutations() []cube.EdgePermutation { return cube.SolvedEdgePermutation[:] }
func (EdgePieces) Stickers() []cube.EdgeSticker { return cube.SolvedEdgeStickers[:] }
func (EdgePieces) Good() cube.EdgeOrientation { return cube.EdgeGood }
func (EdgePieces) OnFace(face cube.Face) [4]cube.EdgeSticker { return cube.EdgeFaceCycle(face) }
func (EdgePieces) Color(s cube.EdgeSticker) cube.Face { return s.Color() }

// CornerPieces adapts the corners.
type CornerPieces struct{ *cube.Corners }

func (CornerPieces) Sticker(p cube.CornerPermutation, o cube.CornerOrientation) cube.CornerSticker {
	return cube.CornerStickerFrom(p, o)
}
func (CornerPieces) StickerPermutation(s cube.CornerSticker) cube.CornerPermutation {
	return s.Permutation()
}
func (CornerPieces) StickerOrientation(s cube.CornerSticker) cube.CornerOrientation {
	return s.Orientation()
}
func (CornerPieces) Permutations() []cube.CornerPermutation { return cube.SolvedCornerPermutation[:] }
func (CornerPieces) Stickers() []cube.CornerSticker { return cube.SolvedCornerStickers[:] }
func (CornerPieces) Good() cube.CornerOrientation { return cube.CornerGood }
func (CornerPieces) OnFace(face cube.Face) [4]cube.CornerSticker { return cube.CornerFaceCycle(face) }
func (CornerPieces) Color(s cube.CornerSticker) cube.Face { return s.Color() }

// WingPieces adapts one layer of wings. Wing slots are named by edge
// sticker and a wing is always addressed through its right-handed sticker.
type WingPieces struct{ *cube.Wings }

var solvedWingStickers = func() (s [48]cube.WingSticker) {
	for i := range s {
		s[i] = cube.WingStickerFromIndex(i)
	}
	return s
}()

func (w WingPieces) At(position cube.WingSticker) cube.WingSticker {
	return w.Wings.At(position.RH())
}

func (w WingPieces) Cycle(positions []cube.WingSticker, count int) {
	slots := make([]cube.EdgeSticker, len(positions))
	for i, p := range positions {
		slots[i] = p.Permutation()
	}
	w.Wings.Cycle(slots, count)
}

func (WingPieces) Sticker(p cube.EdgeSticker, _ struct{}) cube.WingSticker {
	return cube.WingStickerIgnoring(p, cube.RightHanded)
}
func (WingPieces) StickerPermutation(s cube.WingSticker) cube.EdgeSticker { return s.Permutation() }
func (WingPieces) StickerOrientation(cube.WingSticker) struct{} { return struct{}{} }
func (WingPieces) Permutations() []cube.EdgeSticker { return cube.SolvedEdgeStickers[:] }
func (WingPieces) Stickers() []cube.WingSticker { return solvedWingStickers[:] }
func (WingPieces) Good() struct{} { return struct{}{} }
func (WingPieces) Color(s cube.WingSticker) cube.Face { return s.Color() }

func (w WingPieces) OnFace(face cube.Face) [4]cube.WingSticker {
	var out [4]cube.WingSticker
	for i, p := range cube.EdgeFaceCycle(face) {
		out[i] = w.Sticker(p, struct{}{})
	}
	return out
}

// centerPieces holds the methods shared by the color-only categories, whose
// stickers name their own slots.
type centerPieces[S interface {
	comparable
	Color() cube.Face
}] struct{}

func (centerPieces[S]) Sticker(p S, _ struct{}) S { return p }
func (centerPieces[S]) StickerPermutation(s S) S { return s }
func (centerPieces[S]) StickerOrientation(S) struct{} { return struct{}{} }
func (centerPieces[S]) Good() struct{} { return struct{}{} }
func (centerPieces[S]) Color(s S) cube.Face { return s.Color() }

// XCenterPieces adapts one layer of X-centers.
type XCenterPieces struct {
	*cube.XCenters
	centerPieces[cube.CornerSticker]
}

func (XCenterPieces) Permutations() []cube.CornerSticker { return cube.SolvedCornerStickers[:] }
func (XCenterPieces) Stickers() []cube.CornerSticker { return cube.SolvedCornerStickers[:] }
func (XCenterPieces) OnFace(face cube.Face) [4]cube.CornerSticker { return cube.CornerFaceCycle(face) }

// TCenterPieces adapts one layer of T-centers.
type TCenterPieces struct {
	*cube.TCenters
	centerPieces[cube.EdgeSticker]
}

func (TCenterPieces) Permutations() []cube.EdgeSticker { return cube.SolvedEdgeStickers[:] }
func (TCenterPieces) Stickers() []cube.EdgeSticker { return cube.SolvedEdgeStickers[:] }
func (TCenterPieces) OnFace(face cube.Face) [4]cube.EdgeSticker { return cube.EdgeFaceCycle(face) }

// ObliquePieces adapts one side of an oblique ring.
type ObliquePieces struct {
	*cube.Obliques
	centerPieces[cube.EdgeSticker]
}

func (ObliquePieces) Permutations() []cube.EdgeSticker { return cube.SolvedEdgeStickers[:] }
func (ObliquePieces) Stickers() []cube.EdgeSticker { return cube.SolvedEdgeStickers[:] }
func (ObliquePieces) OnFace(face cube.Face) [4]cube.EdgeSticker { return cube.EdgeFaceCycle(face) }

var (
	_ Pieces[cube.EdgeSticker, cube.EdgePermutation, cube.EdgeOrientation]       = EdgePieces{}
	_ Pieces[cube.CornerSticker, cube.CornerPermutation, cube.CornerOrientation] = CornerPieces{}
	_ Pieces[cube.WingSticker, cube.EdgeSticker, struct{}]                       = WingPieces{}
	_ Pieces[cube.CornerSticker, cube.CornerSticker, struct{}]                   = XCenterPieces{}
	_ Pieces[cube.EdgeSticker, cube.EdgeSticker, struct{}]                       = TCenterPieces{}
	_ Pieces[cube.EdgeSticker, cube.EdgeSticker, struct{}]                       = ObliquePieces{}
)
