package cube

import "fmt"

// Kind is the piece category of a facelet.
type Kind uint8

const (
	KindCenter Kind = iota
	KindEdge
	KindCorner
	KindWing
	KindTCenter
	KindXCenter
	KindOblique
)

func (k Kind) String() string {
	return [...]string{"Center", "Edge", "Corner", "Wing", "TCenter", "XCenter", "Oblique"}[k]
}

// AnySticker identifies the piece slot behind one facelet. Which fields are
// meaningful depends on Kind:
//
//	Center   Face
//	Edge     Edge
//	Corner   Corner
//	Wing     Layer, Wing
//	TCenter  Layer, Edge
//	XCenter  Layer, Corner
//	Oblique  Layer, Index, Edge, Handedness
type AnySticker struct {
	Kind       Kind
	Face       Face
	Layer      int
	Index      int
	Edge       EdgeSticker
	Corner     CornerSticker
	Wing       WingSticker
	Handedness Handedness
}

func (s AnySticker) String() string {
	switch s.Kind {
	case KindCenter:
		return fmt.Sprintf("Center(%v)", s.Face)
	case KindEdge:
		return fmt.Sprintf("Edge(%v)", s.Edge)
	case KindCorner:
		return fmt.Sprintf("Corner(%v)", s.Corner)
	case KindWing:
		return fmt.Sprintf("Wing(%d, %v)", s.Layer, s.Wing)
	case KindTCenter:
		return fmt.Sprintf("TCenter(%d, %v)", s.Layer, s.Edge)
	case KindXCenter:
		return fmt.Sprintf("XCenter(%d, %v)", s.Layer, s.Corner)
	default:
		return fmt.Sprintf("Oblique(%d, %d, %v, %v)", s.Layer, s.Index, s.Edge, s.Handedness)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// At classifies the facelet at offset (x, y) from the center of face on an
// n cube, y growing upwards. It panics if an offset is zero on an even
// cube.
func At(n int, face Face, x, y int) AnySticker {
	if n%2 == 0 && (x == 0 || y == 0) {
		panic(fmt.Sprintf("cube: offset (%d, %d) has no facelet on a %dx%d", x, y, n, n))
	}
	half := n / 2
	ax, ay := abs(x), abs(y)

	switch {
	case x == 0 && y == 0:
		return AnySticker{Kind: KindCenter, Face: face}

	case x == 0 || y == 0:
		var dir EdgeDirection
		switch {
		case x == 0 && y > 0:
			dir = DirTop
		case y == 0 && x > 0:
			dir = DirRight
		case x == 0:
			dir = DirBottom
		default:
			dir = DirLeft
		}
		s := EdgeStickerFromFaceAndDirection(face, dir)
		if ax == half || ay == half {
			return AnySticker{Kind: KindEdge, Edge: s}
		}
		return AnySticker{Kind: KindTCenter, Layer: max(ax, ay) - 1, Edge: s}

	case ax == ay:
		var dir CornerDirection
		switch {
		case x < 0 && y < 0:
			dir = DirBottomLeft
		case x < 0:
			dir = DirTopLeft
		case y < 0:
			dir = DirBottomRight
		default:
			dir = DirTopRight
		}
		s := CornerStickerFromFaceAndDirection(face, dir)
		if ax == half {
			return AnySticker{Kind: KindCorner, Corner: s}
		}
		return AnySticker{Kind: KindXCenter, Layer: ax - 1, Corner: s}
	}

	if ax == half || ay == half {
		dir, hand := ringSide(x, y, ax == half)
		s := EdgeStickerFromFaceAndDirection(face, dir)
		return AnySticker{Kind: KindWing, Layer: min(ax, ay) - 1, Wing: WingStickerOnFace(s, hand)}
	}

	layer := max(ax, ay) - 1
	dir, hand := ringSide(x, y, ax-1 == layer)
	return AnySticker{
		Kind:       KindOblique,
		Layer:      layer,
		Index:      min(ax, ay) - 1,
		Edge:       EdgeStickerFromFaceAndDirection(face, dir),
		Handedness: hand,
	}
}

// ringSide returns the side of the face a wing or oblique facelet lies
// towards and its handedness. onX is set when |x| is the larger offset.
func ringSide(x, y int, onX bool) (EdgeDirection, Handedness) {
	var dir EdgeDirection
	switch {
	case onX && x < 0:
		dir = DirLeft
	case onX:
		dir = DirRight
	case y > 0:
		dir = DirTop
	default:
		dir = DirBottom
	}
	sameSign := (x > 0) == (y > 0)
	if sameSign == onX {
		return dir, RightHanded
	}
	return dir, LeftHanded
}
