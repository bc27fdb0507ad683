package cube

// RotatedCube views a Cube through a whole-cube orientation. Orientation is
// the physical edge sticker currently in the UF position, so whole-cube
// turns never touch piece data.
type RotatedCube struct {
	Cube        *Cube
	Orientation EdgeSticker
}

// NewRotated wraps c in the standard orientation.
func NewRotated(c *Cube) *RotatedCube {
	return &RotatedCube{Cube: c, Orientation: EdgeUf}
}

// Rotate turns layers [start, end) of the visual face by count quarter
// turns.
func (r *RotatedCube) Rotate(face Face, start, end, count int) {
	face = MapOrientation(r.Orientation, face)
	r.Orientation = OrientationAfterMove(r.Cube.N, r.Orientation, face, start, end, count)

	if start != 0 {
		r.Cube.Rotate(face, 0, end, count)
		r.Cube.Rotate(face, 0, start, 4-count%4)
		return
	}
	r.Cube.Rotate(face, start, end, count)
}
