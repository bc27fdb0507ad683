package cube

import "fmt"

// Face is one of the six faces of a cube.
type Face uint8

const (
	U Face = iota // Up (white)
	L             // Left (orange)
	F             // Front (green)
	R             // Right (red)
	B             // Back (blue)
	D             // Down (yellow)
)

// AllFaces lists the faces in index order.
var AllFaces = [6]Face{U, L, F, R, B, D}

var (
	opposites = [6]Face{D, R, B, L, F, U}

	neighbors = [6][4]Face{
		{B, R, F, L},
		{U, F, D, B},
		{U, R, D, L},
		{U, B, D, F},
		{U, L, D, R},
		{F, R, B, L},
	}

	cross = [6][6]Face{
		{U, F, R, B, L, U},
		{B, L, U, L, D, F},
		{L, D, F, U, F, R},
		{F, R, D, R, U, B},
		{R, U, B, D, B, L},
		{D, B, L, F, R, D},
	}
)

// FaceFromIndex returns the face with the given index. It panics if i is
// not in [0, 6).
func FaceFromIndex(i int) Face {
	if i < 0 || i >= 6 {
		panic(fmt.Sprintf("cube: face index %d out of range", i))
	}
	return Face(i)
}

// Index returns the position of the face in AllFaces.
func (f Face) Index() int {
	return int(f)
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	return opposites[f]
}

// Neighbors returns the four faces adjacent to f in clockwise order.
func (f Face) Neighbors() [4]Face {
	return neighbors[f]
}

// CrossRH returns the face a quarter turn from f about other, turning
// right-handedly. The second result is false when f and other are equal or
// opposite.
func (f Face) CrossRH(other Face) (Face, bool) {
	if f == other || f == other.Opposite() {
		return f, false
	}
	return cross[f][other], true
}

// CrossLH is the left-handed counterpart of CrossRH.
func (f Face) CrossLH(other Face) (Face, bool) {
	if f == other || f == other.Opposite() {
		return f, false
	}
	return cross[other][f], true
}

func (f Face) mustCrossRH(other Face) Face {
	c, ok := f.CrossRH(other)
	if !ok {
		panic(fmt.Sprintf("cube: no cross between %v and %v", f, other))
	}
	return c
}

func (f Face) mustCrossLH(other Face) Face {
	c, ok := f.CrossLH(other)
	if !ok {
		panic(fmt.Sprintf("cube: no cross between %v and %v", f, other))
	}
	return c
}

// IsLessErgonomic reports whether turning the opposite face is usually
// preferred over turning f.
func (f Face) IsLessErgonomic() bool {
	switch f {
	case D, B, L:
		return true
	default:
		return false
	}
}

func (f Face) String() string {
	if f > D {
		return "?"
	}
	return "ULFRBD"[f : f+1]
}

// Axis is one of the three axes a whole cube can be turned about.
type Axis uint8

const (
	X Axis = iota // through R
	Y             // through U
	Z             // through F
)

// AllAxes lists the axes in order.
var AllAxes = [3]Axis{X, Y, Z}

// Face returns the face whose clockwise turn defines a positive turn about a.
func (a Axis) Face() Face {
	switch a {
	case X:
		return R
	case Y:
		return U
	default:
		return F
	}
}

func (a Axis) String() string {
	return [...]string{"X", "Y", "Z"}[a]
}

// AxisOf returns the axis a turn of face is about and whether it turns
// against that axis.
func AxisOf(face Face) (Axis, bool) {
	switch face {
	case R:
		return X, false
	case L:
		return X, true
	case U:
		return Y, false
	case D:
		return Y, true
	case F:
		return Z, false
	default:
		return Z, true
	}
}

// Handedness selects which side of a pair of wings or obliques is meant.
type Handedness uint8

const (
	LeftHanded Handedness = iota
	RightHanded
)

func (h Handedness) String() string {
	if h == LeftHanded {
		return "Left"
	}
	return "Right"
}

// RotateFace returns where face ends up after count quarter turns of the
// whole cube about axis.
func RotateFace(face Face, axis Axis, count int) Face {
	axisFace := axis.Face()
	switch count % 4 {
	case 0:
		return face
	case 1:
		if c, ok := face.CrossLH(axisFace); ok {
			return c
		}
		return face
	case 2:
		if face == axisFace || face == axisFace.Opposite() {
			return face
		}
		return face.Opposite()
	default:
		if c, ok := face.CrossRH(axisFace); ok {
			return c
		}
		return face
	}
}

// MapOrientation translates a face in the visual frame described by
// orientation to the physical face it refers to.
func MapOrientation(orientation EdgeSticker, face Face) Face {
	up := orientation.Color()
	front := orientation.Flipped().Color()
	switch face {
	case U:
		return up
	case L:
		return up.mustCrossLH(front)
	case F:
		return front
	case R:
		return up.mustCrossRH(front)
	case B:
		return front.Opposite()
	default:
		return up.Opposite()
	}
}

// OrientationAfterMove returns the visual orientation after turning layers
// [start, end) of face. Only moves that reach past the middle of an odd cube
// change it; even cubes have no fixed centers and always report EdgeUf.
func OrientationAfterMove(n int, orientation EdgeSticker, face Face, start, end, count int) EdgeSticker {
	if n%2 == 0 {
		return EdgeUf
	}
	if end <= n/2 {
		return orientation
	}
	axis, invert := AxisOf(face)
	if invert {
		count = 4 - count%4
	}
	return EdgeStickerFromFaces(
		RotateFace(MapOrientation(orientation, U), axis, count),
		RotateFace(MapOrientation(orientation, F), axis, count),
	)
}
