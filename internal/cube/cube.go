// Package cube models the state of an NxNxN Rubik's cube as per-category
// piece permutations and turns arbitrary layer ranges of it.
package cube

import (
	"fmt"
	"strings"
)

// Layer holds the pieces of one depth between the outer face and the
// middle. Layer i owns i oblique rings.
type Layer struct {
	Wings    Wings
	TCenters TCenters
	XCenters XCenters
	Obliques []ObliquesPair
}

func newLayer(i int) Layer {
	obliques := make([]ObliquesPair, i)
	for j := range obliques {
		obliques[j] = ObliquesPair{Left: NewObliques(), Right: NewObliques()}
	}
	return Layer{
		Wings:    NewWings(),
		TCenters: NewTCenters(),
		XCenters: NewXCenters(),
		Obliques: obliques,
	}
}

func (l *Layer) rotateFace(face Face, count int) {
	l.Wings.RotateFace(face, count)
	l.XCenters.RotateFace(face, count)
	l.TCenters.RotateFace(face, count)
	for i := range l.Obliques {
		l.Obliques[i].Left.RotateFace(face, count)
		l.Obliques[i].Right.RotateFace(face, count)
	}
}

// IsSolved reports whether every piece of the layer matches its face color.
func (l *Layer) IsSolved() bool {
	if !l.Wings.AreSolved() || !l.TCenters.AreSolved() || !l.XCenters.AreSolved() {
		return false
	}
	for i := range l.Obliques {
		if !l.Obliques[i].AreSolved() {
			return false
		}
	}
	return true
}

// IsSolvedSupercube is IsSolved with every center in its own slot.
func (l *Layer) IsSolvedSupercube() bool {
	if !l.Wings.AreSolved() || !l.TCenters.AreSolvedSupercube() || !l.XCenters.AreSolvedSupercube() {
		return false
	}
	for i := range l.Obliques {
		if !l.Obliques[i].AreSolvedSupercube() {
			return false
		}
	}
	return true
}

func (l Layer) clone() Layer {
	l.Obliques = append([]ObliquesPair(nil), l.Obliques...)
	return l
}

// Cube is the full state of an NxNxN cube.
type Cube struct {
	N       int
	Corners Corners
	Edges   Edges
	Layers  []Layer
}

// numLayers returns the number of layers an n cube needs.
func numLayers(n int) int {
	return max(n/2-1, 0)
}

// New returns a solved n cube. It panics if n < 1.
func New(n int) *Cube {
	if n < 1 {
		panic(fmt.Sprintf("cube: invalid size %d", n))
	}
	c := &Cube{
		N:       n,
		Corners: NewCorners(),
		Edges:   NewEdges(),
		Layers:  make([]Layer, numLayers(n)),
	}
	for i := range c.Layers {
		c.Layers[i] = newLayer(i)
	}
	return c
}

// Clone returns a deep copy of c.
func (c *Cube) Clone() *Cube {
	cp := *c
	cp.Layers = make([]Layer, len(c.Layers))
	for i, l := range c.Layers {
		cp.Layers[i] = l.clone()
	}
	return &cp
}

// Equal reports whether two cubes are in the same state.
func (c *Cube) Equal(other *Cube) bool {
	if c.N != other.N || c.Corners != other.Corners || c.Edges != other.Edges {
		return false
	}
	for i := range c.Layers {
		a, b := &c.Layers[i], &other.Layers[i]
		if a.Wings != b.Wings || a.TCenters != b.TCenters || a.XCenters != b.XCenters {
			return false
		}
		for j := range a.Obliques {
			if a.Obliques[j] != b.Obliques[j] {
				return false
			}
		}
	}
	return true
}

// IsSolved reports whether every face shows one color in the standard
// orientation.
func (c *Cube) IsSolved() bool {
	if !c.Corners.AreSolved() || !c.Edges.AreSolved() {
		return false
	}
	for i := range c.Layers {
		if !c.Layers[i].IsSolved() {
			return false
		}
	}
	return true
}

// IsSolvedSupercube is IsSolved with every center piece in its own slot.
func (c *Cube) IsSolvedSupercube() bool {
	if !c.Corners.AreSolved() || !c.Edges.AreSolved() {
		return false
	}
	for i := range c.Layers {
		if !c.Layers[i].IsSolvedSupercube() {
			return false
		}
	}
	return true
}

// IsSolvedInAnyOrientation reports whether every face is a single color,
// whichever color that is.
func (c *Cube) IsSolvedInAnyOrientation() bool {
	for _, face := range AllFaces {
		first := true
		var color Face
		ok := c.eachFacelet(face, func(x, y int) bool {
			got := c.ColorAt(face, x, y)
			if first {
				color, first = got, false
			}
			return got == color
		})
		if !ok {
			return false
		}
	}
	return true
}

// eachFacelet calls fn with the offsets of every facelet of face, row by
// row from the top left, until fn returns false.
func (c *Cube) eachFacelet(face Face, fn func(x, y int) bool) bool {
	half := c.N / 2
	for row := 0; row < c.N|1; row++ {
		for col := 0; col < c.N|1; col++ {
			x, y := col-half, half-row
			if c.N%2 == 0 && (x == 0 || y == 0) {
				continue
			}
			if !fn(x, y) {
				return false
			}
		}
	}
	return true
}

// Facelets returns the colors of face row by row from the top left, as seen
// looking at that face.
func (c *Cube) Facelets(face Face) []Face {
	colors := make([]Face, 0, c.N*c.N)
	c.eachFacelet(face, func(x, y int) bool {
		colors = append(colors, c.ColorAt(face, x, y))
		return true
	})
	return colors
}

// ColorAt returns the color shown at offset (x, y) from the center of face,
// with y growing upwards. On even cubes neither offset may be zero.
func (c *Cube) ColorAt(face Face, x, y int) Face {
	s := At(c.N, face, x, y)
	switch s.Kind {
	case KindCenter:
		return s.Face
	case KindEdge:
		return c.Edges.At(s.Edge).Color()
	case KindCorner:
		return c.Corners.At(s.Corner).Color()
	case KindWing:
		return c.Layers[s.Layer].Wings.At(s.Wing).Color()
	case KindTCenter:
		return c.Layers[s.Layer].TCenters.At(s.Edge).Color()
	case KindXCenter:
		return c.Layers[s.Layer].XCenters.At(s.Corner).Color()
	default:
		return c.Layers[s.Layer].Obliques[s.Index].Side(s.Handedness).At(s.Edge).Color()
	}
}

// RotateFace turns the outer layer of face by count quarter turns.
func (c *Cube) RotateFace(face Face, count int) {
	c.Corners.RotateFace(face, count)
	if c.N%2 == 1 {
		c.Edges.RotateFace(face, count)
	}
	for i := range c.Layers {
		c.Layers[i].rotateFace(face, count)
	}
}

// Rotate turns layers [start, end) of face by count quarter turns. Layer 0
// is the outer layer of face.
func (c *Cube) Rotate(face Face, start, end, count int) {
	if start < 0 || end > c.N || start > end {
		panic(fmt.Sprintf("cube: layer range %d..%d out of range for %dx%d", start, end, c.N, c.N))
	}
	half := c.N / 2
	for layer := start; layer < end; layer++ {
		// Even cubes have no middle slice at depth 0.
		i := layer
		if i >= half && c.N%2 == 0 {
			i++
		}
		if i <= half {
			c.RotateSlice(face, half-i, count)
		} else {
			c.RotateSlice(face.Opposite(), i-half, 4-count%4)
		}
	}
}

// RotateSlice turns the slice at distance depth from the middle of the cube
// on the side of face. Depth n/2 is the outer face.
func (c *Cube) RotateSlice(face Face, depth, count int) {
	switch depth {
	case c.N / 2:
		c.RotateFace(face, count)
	case 0:
		c.rotateMiddleSlice(face, count)
	default:
		c.rotateNonMiddleSlice(depth-1, face, count)
	}
}

func (c *Cube) rotateNonMiddleSlice(layerIndex int, face Face, count int) {
	layer := &c.Layers[layerIndex]
	wingCycleRH := WingSliceCycleRH(face)
	wingCycleLH := WingSliceCycleLH(face)
	centerCycle := EdgeSliceCenterCycle(face)
	xCycleLH := CornerSliceCycleLH(face)
	xCycleRH := CornerSliceCycleRH(face)

	layer.Wings.Cycle(wingCycleRH[:], count)
	if c.N%2 == 1 {
		layer.TCenters.Cycle(centerCycle[:], count)
	}
	layer.XCenters.Cycle(xCycleLH[:], count)
	layer.XCenters.Cycle(xCycleRH[:], count)

	// Rings deeper than this layer that use it as their inner index.
	for obLayer := layerIndex + 1; obLayer < len(c.Layers); obLayer++ {
		pair := &c.Layers[obLayer].Obliques[layerIndex]
		pair.Left.Cycle(wingCycleRH[:], count)
		pair.Right.Cycle(wingCycleLH[:], count)
	}

	// Rings of this layer.
	for i := range layer.Obliques {
		layer.Obliques[i].Left.Cycle(centerCycle[:], count)
		layer.Obliques[i].Right.Cycle(centerCycle[:], count)
	}
}

// rotateMiddleSlice turns the middle slice of an odd cube as the rest of the
// cube turning the other way plus a whole-cube turn.
func (c *Cube) rotateMiddleSlice(face Face, count int) {
	if c.N%2 == 0 {
		return
	}
	c.Rotate(face, 0, c.N/2, 4-count%4)
	c.Rotate(face.Opposite(), 0, c.N/2, count)
}

// String renders every face row by row, faces separated by " / " and rows
// by a space, e.g. "UUU UUU UUU / LLL ...".
func (c *Cube) String() string {
	var sb strings.Builder
	for _, face := range AllFaces {
		if face != U {
			sb.WriteString(" / ")
		}
		col := 0
		c.eachFacelet(face, func(x, y int) bool {
			if col > 0 && col%c.N == 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(c.ColorAt(face, x, y).String())
			col++
			return true
		})
	}
	return sb.String()
}
