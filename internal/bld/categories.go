package bld

import "github.com/SeamusWaldron/nxn_bld/internal/cube"

// Memo types of each piece category.
type (
	EdgeMemo    = Memo[cube.EdgeSticker, cube.EdgePermutation, cube.EdgeOrientation]
	CornerMemo  = Memo[cube.CornerSticker, cube.CornerPermutation, cube.CornerOrientation]
	WingMemo    = Memo[cube.WingSticker, cube.EdgeSticker, struct{}]
	XCenterMemo = Memo[cube.CornerSticker, cube.CornerSticker, struct{}]
	TCenterMemo = Memo[cube.EdgeSticker, cube.EdgeSticker, struct{}]
	ObliqueMemo = Memo[cube.EdgeSticker, cube.EdgeSticker, struct{}]
)

// MemoEdges memorizes the midges of an odd cube.
func MemoEdges(e *cube.Edges, buffer cube.EdgeSticker) EdgeMemo {
	return Memorize(EdgePieces{e}, buffer)
}

// MemoCorners memorizes the corners.
func MemoCorners(c *cube.Corners, buffer cube.CornerSticker) CornerMemo {
	return Memorize(CornerPieces{c}, buffer)
}

// MemoWings memorizes one layer of wings. Wings have distinct identities, so
// they use the oriented algorithm with a trivial orientation.
func MemoWings(w *cube.Wings, buffer cube.WingSticker) WingMemo {
	return Memorize(WingPieces{w}, buffer)
}

// MemoXCenters memorizes one layer of X-centers, which share colors.
func MemoXCenters(x *cube.XCenters, buffer cube.CornerSticker) XCenterMemo {
	return MemorizeCenters(XCenterPieces{XCenters: x}, buffer)
}

// MemoTCenters memorizes one layer of T-centers.
func MemoTCenters(t *cube.TCenters, buffer cube.EdgeSticker) TCenterMemo {
	return MemorizeCenters(TCenterPieces{TCenters: t}, buffer)
}

// MemoObliques memorizes one oblique orbit.
func MemoObliques(o *cube.Obliques, buffer cube.EdgeSticker) ObliqueMemo {
	return MemorizeCenters(ObliquePieces{Obliques: o}, buffer)
}

// LayerMemo is the memo of every center and wing category of one layer.
type LayerMemo struct {
	XCenters XCenterMemo
	TCenters TCenterMemo
	Wings    WingMemo
	Obliques []ObliqueMemoPair
}

// ObliqueMemoPair holds the memos of the left and right orbits of a ring.
type ObliqueMemoPair struct {
	Left, Right ObliqueMemo
}

// CubeMemo is the full decomposition of a cube. Edges are only set on odd
// cubes and corners only when n > 1.
type CubeMemo struct {
	N       int
	Edges   *EdgeMemo
	Corners *CornerMemo
	Layers  []LayerMemo
}

// MemoCube memorizes every category of c with the buffers in b.
func MemoCube(c *cube.Cube, b Buffers) CubeMemo {
	m := CubeMemo{N: c.N}
	if c.N%2 != 0 {
		e := MemoEdges(&c.Edges, b.Edges)
		m.Edges = &e
	}
	if c.N > 1 {
		co := MemoCorners(&c.Corners, b.Corners)
		m.Corners = &co
	}
	for i := range c.Layers {
		layer := &c.Layers[i]
		lm := LayerMemo{
			XCenters: MemoXCenters(&layer.XCenters, b.XCenters),
			TCenters: MemoTCenters(&layer.TCenters, b.TCenters),
			Wings:    MemoWings(&layer.Wings, b.Wings),
		}
		for j := range layer.Obliques {
			pair := &layer.Obliques[j]
			lm.Obliques = append(lm.Obliques, ObliqueMemoPair{
				Left:  MemoObliques(&pair.Left, b.LeftObliques),
				Right: MemoObliques(&pair.Right, b.RightObliques),
			})
		}
		m.Layers = append(m.Layers, lm)
	}
	return m
}

// EdgeTargets counts edge and wing targets, including parity.
func (m CubeMemo) EdgeTargets() int {
	n := 0
	if m.Edges != nil {
		n += len(m.Edges.Targets())
	}
	for _, l := range m.Layers {
		n += len(l.Wings.Targets())
	}
	return n
}

// CornerTargets counts corner targets, including parity.
func (m CubeMemo) CornerTargets() int {
	if m.Corners == nil {
		return 0
	}
	return len(m.Corners.Targets())
}
