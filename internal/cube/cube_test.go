package cube

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

const solved3 = "UUU UUU UUU / LLL LLL LLL / FFF FFF FFF / RRR RRR RRR / BBB BBB BBB / DDD DDD DDD"

func solvedString(n int) string {
	faces := make([]string, 6)
	for i, f := range AllFaces {
		rows := make([]string, n)
		for r := range rows {
			rows[r] = strings.Repeat(f.String(), n)
		}
		faces[i] = strings.Join(rows, " ")
	}
	return strings.Join(faces, " / ")
}

func TestNewAllSizes(t *testing.T) {
	for n := 1; n <= 64; n++ {
		c := New(n)
		require.Len(t, c.Layers, max(n/2-1, 0))
		for i, layer := range c.Layers {
			assert.Len(t, layer.Obliques, i)
		}
		assert.True(t, c.IsSolved())
		assert.True(t, c.IsSolvedSupercube())
	}
}

func TestNewPanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { New(0) })
}

func TestString(t *testing.T) {
	assert.Equal(t, solved3, New(3).String())
	assert.Equal(t, solvedString(9), New(9).String())
	assert.Equal(t, "UU UU / LL LL / FF FF / RR RR / BB BB / DD DD", New(2).String())
	assert.Equal(t, "U / L / F / R / B / D", New(1).String())
}

func TestCycleCorners(t *testing.T) {
	c := New(3)
	cycle := CornerFaceCycle(U)
	c.Corners.Cycle(cycle[:], 1)
	assert.Equal(t, "UUU UUU UUU / FLF LLL LLL / RFR FFF FFF / BRB RRR RRR / LBL BBB BBB / DDD DDD DDD", c.String())

	cycle = CornerFaceCycle(R)
	c.Corners.Cycle(cycle[:], 1)
	assert.Equal(t, "UUR UUU UUF / FLF LLL LLL / RFD FFF FFD / RRB RRR RRB / UBL BBB UBB / DDB DDD DDL", c.String())
}

func TestCycleEdges(t *testing.T) {
	c := New(3)
	cycle := EdgeFaceCycle(U)
	c.Edges.Cycle(cycle[:], 1)
	assert.Equal(t, "UUU UUU UUU / LFL LLL LLL / FRF FFF FFF / RBR RRR RRR / BLB BBB BBB / DDD DDD DDD", c.String())

	cycle = EdgeFaceCycle(R)
	c.Edges.Cycle(cycle[:], 1)
	assert.Equal(t, "UUU UUF UUU / LFL LLL LLL / FRF FFD FFF / RRR RRB RRR / BLB UBB BBB / DDD DDB DDD", c.String())
}

func TestCycleWings(t *testing.T) {
	c := New(7)
	wings := &c.Layers[0].Wings

	cycle := EdgeFaceCycle(U)
	wings.Cycle(cycle[:], 1)
	assert.Equal(t, "UUUUUUU UUUUUUU UUUUUUU UUUUUUU UUUUUUU UUUUUUU UUUUUUU / LLFLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL / FFRFFFF FFFFFFF FFFFFFF FFFFFFF FFFFFFF FFFFFFF FFFFFFF / RRBRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR / BBLBBBB BBBBBBB BBBBBBB BBBBBBB BBBBBBB BBBBBBB BBBBBBB / DDDDDDD DDDDDDD DDDDDDD DDDDDDD DDDDDDD DDDDDDD DDDDDDD", c.String())

	cycle = EdgeSliceCenterCycle(U)
	wings.Cycle(cycle[:], 1)
	assert.Equal(t, "UUUUUUU UUUUUUU UUUUUUU UUUUUUU UUUUUUU UUUUUUU UUUUUUU / LLFLFLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL / FFRFRFF FFFFFFF FFFFFFF FFFFFFF FFFFFFF FFFFFFF FFFFFFF / RRBRBRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR / BBLBLBB BBBBBBB BBBBBBB BBBBBBB BBBBBBB BBBBBBB BBBBBBB / DDDDDDD DDDDDDD DDDDDDD DDDDDDD DDDDDDD DDDDDDD DDDDDDD", c.String())

	wings.RotateFace(R, 1)
	assert.Equal(t, "UUUUUUU UUUUUUU UUUUUUF UUUUUUU UUUUUUF UUUUUUU UUUUUUU / LLFLFLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL / FFRFRFF FFFFFFF FFFFFFD FFFFFFF FFFFFFD FFFFFFF FFFFFFF / RRRRRRR RRRRRRR RRRRRRB RRRRRRR RRRRRRB RRRRRRR RRRRRRR / BBLBLBB BBBBBBB UBBBBBB BBBBBBB UBBBBBB BBBBBBB BBBBBBB / DDDDDDD DDDDDDD DDDDDDB DDDDDDD DDDDDDB DDDDDDD DDDDDDD", c.String())
}

func TestCycleTCentersSlice(t *testing.T) {
	c := New(7)
	cycle := EdgeSliceCenterCycle(R)
	c.Layers[0].TCenters.Cycle(cycle[:], 1)
	assert.Equal(t, "UUUUUUU UUUUUUU UUUUUUU UUUUFUU UUUUUUU UUUUUUU UUUUUUU / LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL / FFFFFFF FFFFFFF FFFFFFF FFFFDFF FFFFFFF FFFFFFF FFFFFFF / RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR / BBBBBBB BBBBBBB BBBBBBB BBUBBBB BBBBBBB BBBBBBB BBBBBBB / DDDDDDD DDDDDDD DDDDDDD DDDDBDD DDDDDDD DDDDDDD DDDDDDD", c.String())
}

func TestCycleXCentersSlice(t *testing.T) {
	c := New(7)
	lh := CornerSliceCycleLH(R)
	c.Layers[0].XCenters.Cycle(lh[:], 1)
	assert.Equal(t, "UUUUUUU UUUUUUU UUUUUUU UUUUUUU UUUUFUU UUUUUUU UUUUUUU / LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL / FFFFFFF FFFFFFF FFFFFFF FFFFFFF FFFFDFF FFFFFFF FFFFFFF / RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR / BBBBBBB BBBBBBB BBUBBBB BBBBBBB BBBBBBB BBBBBBB BBBBBBB / DDDDDDD DDDDDDD DDDDDDD DDDDDDD DDDDBDD DDDDDDD DDDDDDD", c.String())

	rh := CornerSliceCycleRH(R)
	c.Layers[0].XCenters.Cycle(rh[:], 1)
	assert.Equal(t, "UUUUUUU UUUUUUU UUUUFUU UUUUUUU UUUUFUU UUUUUUU UUUUUUU / LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL / FFFFFFF FFFFFFF FFFFDFF FFFFFFF FFFFDFF FFFFFFF FFFFFFF / RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR / BBBBBBB BBBBBBB BBUBBBB BBBBBBB BBUBBBB BBBBBBB BBBBBBB / DDDDDDD DDDDDDD DDDDBDD DDDDDDD DDDDBDD DDDDDDD DDDDDDD", c.String())
}

func TestCycleObliquesSlice(t *testing.T) {
	c := New(7)
	cycle := EdgeSliceCenterCycle(R)
	c.Layers[1].Obliques[0].Left.Cycle(cycle[:], 1)
	c.Layers[1].Obliques[0].Right.Cycle(cycle[:], 1)
	assert.Equal(t, "UUUUUUU UUUUUUU UUUUUFU UUUUUUU UUUUUFU UUUUUUU UUUUUUU / LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL LLLLLLL / FFFFFFF FFFFFFF FFFFFDF FFFFFFF FFFFFDF FFFFFFF FFFFFFF / RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR RRRRRRR / BBBBBBB BBBBBBB BUBBBBB BBBBBBB BUBBBBB BBBBBBB BBBBBBB / DDDDDDD DDDDDDD DDDDDBD DDDDDDD DDDDDBD DDDDDDD DDDDDDD", c.String())
}

func TestAnyStickerWings(t *testing.T) {
	var lines []string
	for _, face := range AllFaces {
		var row []string
		for _, y := range []int{2, 1, -1, -2} {
			for _, x := range []int{-2, -1, 1, 2} {
				if abs(x) == abs(y) {
					continue
				}
				row = append(row, At(5, face, x, y).String())
			}
		}
		lines = append(lines, strings.Join(row, " "))
	}
	want := []string{
		"Wing(0, Ubl) Wing(0, Ubr) Wing(0, Ulb) Wing(0, Urb) Wing(0, Ulf) Wing(0, Urf) Wing(0, Ufl) Wing(0, Ufr)",
		"Wing(0, Lub) Wing(0, Luf) Wing(0, Lbu) Wing(0, Lfu) Wing(0, Lbd) Wing(0, Lfd) Wing(0, Ldb) Wing(0, Ldf)",
		"Wing(0, Ful) Wing(0, Fur) Wing(0, Flu) Wing(0, Fru) Wing(0, Fld) Wing(0, Frd) Wing(0, Fdl) Wing(0, Fdr)",
		"Wing(0, Ruf) Wing(0, Rub) Wing(0, Rfu) Wing(0, Rbu) Wing(0, Rfd) Wing(0, Rbd) Wing(0, Rdf) Wing(0, Rdb)",
		"Wing(0, Bur) Wing(0, Bul) Wing(0, Bru) Wing(0, Blu) Wing(0, Brd) Wing(0, Bld) Wing(0, Bdr) Wing(0, Bdl)",
		"Wing(0, Dfl) Wing(0, Dfr) Wing(0, Dlf) Wing(0, Drf) Wing(0, Dlb) Wing(0, Drb) Wing(0, Dbl) Wing(0, Dbr)",
	}
	assert.Equal(t, want, lines)
}

func TestAnyStickerKinds(t *testing.T) {
	tests := []struct {
		n    int
		face Face
		x, y int
		want string
	}{
		{3, U, 0, 0, "Center(U)"},
		{3, U, 0, 1, "Edge(Ub)"},
		{3, F, 1, 0, "Edge(Fr)"},
		{3, R, -1, -1, "Corner(Rdf)"},
		{5, U, 0, 1, "TCenter(0, Ub)"},
		{5, L, 1, 1, "XCenter(0, Luf)"},
		{4, D, -1, 1, "XCenter(0, Dfl)"},
		{5, U, -1, -2, "Wing(0, Ufl)"},
		{5, U, 1, -2, "Wing(0, Ufr)"},
		{7, U, 1, 2, "Oblique(1, 0, Ub, Left)"},
		{7, U, -1, 2, "Oblique(1, 0, Ub, Right)"},
		{7, U, 2, 1, "Oblique(1, 0, Ur, Right)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, At(tt.n, tt.face, tt.x, tt.y).String(), "%dx%d %v (%d, %d)", tt.n, tt.n, tt.face, tt.x, tt.y)
	}
	assert.Panics(t, func() { At(4, U, 0, 1) })
}

func TestCubeMisc(t *testing.T) {
	c := New(9)
	assert.Equal(t, EdgeUl, c.Edges.At(EdgeUl))
	assert.Equal(t, U, EdgeUl.Color())
	assert.Equal(t, CornerLdb, c.Corners.At(CornerLdb))
	assert.Equal(t, solvedString(9), c.String())

	for _, w := range []WingSticker{WingUfl, WingUfr, WingFul, WingFur} {
		assert.Equal(t, w, c.Layers[0].Wings.At(w))
	}

	c.RotateSlice(R, 1, 1)
	c.RotateSlice(R, 2, 1)
	assert.Equal(t, "UUUUUFFUU UUUUUFFUU UUUUUFFUU UUUUUFFUU UUUUUFFUU UUUUUFFUU UUUUUFFUU UUUUUFFUU UUUUUFFUU / LLLLLLLLL LLLLLLLLL LLLLLLLLL LLLLLLLLL LLLLLLLLL LLLLLLLLL LLLLLLLLL LLLLLLLLL LLLLLLLLL / FFFFFDDFF FFFFFDDFF FFFFFDDFF FFFFFDDFF FFFFFDDFF FFFFFDDFF FFFFFDDFF FFFFFDDFF FFFFFDDFF / RRRRRRRRR RRRRRRRRR RRRRRRRRR RRRRRRRRR RRRRRRRRR RRRRRRRRR RRRRRRRRR RRRRRRRRR RRRRRRRRR / BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB / DDDDDBBDD DDDDDBBDD DDDDDBBDD DDDDDBBDD DDDDDBBDD DDDDDBBDD DDDDDBBDD DDDDDBBDD DDDDDBBDD", c.String())

	assert.Equal(t, WingUfl, c.Layers[0].Wings.At(WingUfl))
	assert.Equal(t, WingFul, c.Layers[0].Wings.At(WingFul))

	c.RotateFace(F, 1)
	assert.Equal(t, "UUUUUFFUU UUUUUFFUU UUUUUFFUU UUUUUFFUU UUUUUFFUU UUUUUFFUU UUUUUFFUU UUUUUFFUU LLLLLLLLL / LLLLLLLLD LLLLLLLLD LLLLLLLLD LLLLLLLLD LLLLLLLLD LLLLLLLLB LLLLLLLLB LLLLLLLLD LLLLLLLLD / FFFFFFFFF FFFFFFFFF FFFFFFFFF FFFFFFFFF FFFFFFFFF DDDDDDDDD DDDDDDDDD FFFFFFFFF FFFFFFFFF / URRRRRRRR URRRRRRRR URRRRRRRR URRRRRRRR URRRRRRRR FRRRRRRRR FRRRRRRRR URRRRRRRR URRRRRRRR / BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB BBUUBBBBB / RRRRRRRRR DDDDDBBDD DDDDDBBDD DDDDDBBDD DDDDDBBDD DDDDDBBDD DDDDDBBDD DDDDDBBDD DDDDDBBDD", c.String())
}

func TestColorAtAfterOwnFaceTurns(t *testing.T) {
	for n := 3; n < 9; n++ {
		c := New(n)
		half := n / 2
		for _, face := range AllFaces {
			// 1+1+2 quarter turns return the face to solved before the next.
			for _, count := range []int{1, 1, 2} {
				for x := -half; x <= half; x++ {
					for y := -half; y <= half; y++ {
						if n%2 == 0 && (x == 0 || y == 0) {
							continue
						}
						require.Equal(t, face, c.ColorAt(face, x, y), "n=%d face=%v (%d, %d)", n, face, x, y)
					}
				}
				c.RotateFace(face, count)
			}
			require.True(t, c.IsSolved(), "n=%d face=%v", n, face)
		}
	}
}

func TestRotateCorners(t *testing.T) {
	c := New(9)
	assert.Equal(t, SolvedCornerPermutation, c.Corners.Permutation)

	c.RotateFace(U, 1)
	assert.Equal(t, [8]CornerOrientation{}, c.Corners.Orientation)
	assert.Equal(t, [8]CornerPermutation{
		CornerPermUfl, CornerPermUbl, CornerPermUbr, CornerPermUfr,
		CornerPermDfl, CornerPermDfr, CornerPermDbr, CornerPermDbl,
	}, c.Corners.Permutation)

	c.RotateFace(U, 3)
	assert.Equal(t, SolvedCornerPermutation, c.Corners.Permutation)

	c.RotateFace(U, 2)
	assert.Equal(t, [8]CornerPermutation{
		CornerPermUfr, CornerPermUfl, CornerPermUbl, CornerPermUbr,
		CornerPermDfl, CornerPermDfr, CornerPermDbr, CornerPermDbl,
	}, c.Corners.Permutation)
	c.RotateFace(U, 2)

	c.RotateFace(R, 1)
	assert.Equal(t, [8]CornerPermutation{
		CornerPermUbl, CornerPermUfr, CornerPermDfr, CornerPermUfl,
		CornerPermDfl, CornerPermDbr, CornerPermUbr, CornerPermDbl,
	}, c.Corners.Permutation)
	assert.Equal(t, [8]CornerOrientation{
		CornerGood, CornerBadCcw, CornerBadCw, CornerGood,
		CornerGood, CornerBadCcw, CornerBadCw, CornerGood,
	}, c.Corners.Orientation)

	c.RotateFace(R, 1)
	assert.Equal(t, [8]CornerPermutation{
		CornerPermUbl, CornerPermDfr, CornerPermDbr, CornerPermUfl,
		CornerPermDfl, CornerPermUbr, CornerPermUfr, CornerPermDbl,
	}, c.Corners.Permutation)
	assert.Equal(t, [8]CornerOrientation{}, c.Corners.Orientation)
}

func TestSliceMoves3x3(t *testing.T) {
	tests := []struct {
		face Face
		want string
	}{
		{R, "BUB BUB BUB / LLL LLL LLL / UFU UFU UFU / RRR RRR RRR / DBD DBD DBD / FDF FDF FDF"},
		{U, "UUU UUU UUU / BBB LLL BBB / LLL FFF LLL / FFF RRR FFF / RRR BBB RRR / DDD DDD DDD"},
		{F, "RRR UUU RRR / ULU ULU ULU / FFF FFF FFF / DRD DRD DRD / BBB BBB BBB / LLL DDD LLL"},
	}
	for _, tt := range tests {
		c := New(3)
		c.RotateSlice(tt.face, 0, 1)
		assert.Equal(t, tt.want, c.String(), "slice %v", tt.face)
	}
}

func TestWideMoves3x3(t *testing.T) {
	tests := []struct {
		face Face
		want string
	}{
		{R, "BUU BUU BUU / LLL LLL LLL / UFF UFF UFF / RRR RRR RRR / BBD BBD BBD / FDD FDD FDD"},
		{U, "UUU UUU UUU / LLL LLL BBB / FFF FFF LLL / RRR RRR FFF / BBB BBB RRR / DDD DDD DDD"},
		{F, "RRR UUU UUU / ULL ULL ULL / FFF FFF FFF / RRD RRD RRD / BBB BBB BBB / DDD DDD LLL"},
	}
	for _, tt := range tests {
		c := New(3)
		c.Rotate(tt.face, 0, 2, 1)
		assert.Equal(t, tt.want, c.String(), "wide %v", tt.face)
	}
}

func TestRotateUThenR(t *testing.T) {
	c := New(3)
	c.Rotate(U, 0, 1, 1)
	c.Rotate(R, 0, 1, 1)
	assert.Equal(t, "UUR UUF UUF / FFF LLL LLL / RRD FFD FFD / RRB RRB RRB / ULL UBB UBB / DDB DDB DDL", c.String())
}

func TestFacelets(t *testing.T) {
	c := New(3)
	c.Rotate(U, 0, 1, 1)
	c.Rotate(R, 0, 1, 1)
	assert.Equal(t, []Face{U, U, R, U, U, F, U, U, F}, c.Facelets(U))
	assert.Len(t, New(4).Facelets(F), 16)
	assert.Equal(t, []Face{D}, New(1).Facelets(D))
}

func TestRotatePanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { New(3).Rotate(R, 0, 4, 1) })
	assert.Panics(t, func() { New(3).Rotate(R, 2, 1, 1) })
}

func TestFullTurnsAreIdentity(t *testing.T) {
	for n := 1; n <= 8; n++ {
		c := NewRandom(n, uint64(n))
		before := c.Clone()
		for _, face := range AllFaces {
			for end := 1; end <= n; end++ {
				c.Rotate(face, 0, end, 4)
				require.True(t, before.Equal(c), "n=%d face=%v end=%d", n, face, end)
				for i := 0; i < 4; i++ {
					c.Rotate(face, 0, end, 1)
				}
				require.True(t, before.Equal(c), "n=%d face=%v end=%d", n, face, end)
			}
		}
	}
}

func TestMoveThenInverse(t *testing.T) {
	for n := 2; n <= 9; n++ {
		c := New(n)
		for _, face := range AllFaces {
			for start := 0; start < n; start++ {
				for end := start + 1; end <= n; end++ {
					c.Rotate(face, start, end, 1)
					c.Rotate(face, start, end, 3)
				}
			}
		}
		assert.True(t, c.IsSolvedSupercube(), "n=%d", n)
	}
}

func TestOrientationInvariants(t *testing.T) {
	for seed := uint64(0); seed < 64; seed++ {
		c := New(5)
		rng := NewRNG(seed)
		for i := 0; i < 60; i++ {
			face := AllFaces[rng.IntN(6)]
			end := 1 + rng.IntN(5)
			c.Rotate(face, 0, end, 1+rng.IntN(3))
		}
		sum := 0
		for _, o := range c.Corners.Orientation {
			sum += o.Index()
		}
		assert.Zero(t, sum%3)
		sum = 0
		for _, o := range c.Edges.Orientation {
			sum += o.Index()
		}
		assert.Zero(t, sum%2)
		assert.Equal(t, c.Corners.Parity(), c.Edges.Parity())
	}
}

func TestOrientationAfterMove(t *testing.T) {
	assert.Equal(t, EdgeFd, OrientationAfterMove(5, EdgeUf, R, 0, 3, 1))
	assert.Equal(t, EdgeUf, OrientationAfterMove(4, EdgeUf, R, 0, 3, 1))
	assert.Equal(t, EdgeUf, OrientationAfterMove(4, EdgeUf, R, 0, 2, 1))
	assert.Equal(t, EdgeUr, OrientationAfterMove(3, EdgeUr, R, 0, 1, 1))
}

func TestEdgeStickerXYZ(t *testing.T) {
	for _, s := range SolvedEdgeStickers {
		r := NewRotated(New(3))
		x, y, z := s.XYZ()
		r.Rotate(R, 0, 3, x)
		r.Rotate(U, 0, 3, y)
		r.Rotate(F, 0, 3, z)
		assert.Equal(t, s, r.Orientation, "%v", s)
	}
}

func TestRotatedCubeRotationThenWideMove(t *testing.T) {
	r := NewRotated(New(3))
	assert.Equal(t, EdgeUf, r.Orientation)

	r.Rotate(U, 0, 3, 1)
	assert.Equal(t, EdgeUr, r.Orientation)
	assert.True(t, r.Cube.IsSolved())

	r.Rotate(R, 0, 2, 1)
	assert.Equal(t, EdgeRd, r.Orientation)
	assert.Equal(t, "UUU UUU LLL / LLD LLD LLD / FFF FFF FFF / URR URR URR / BBB BBB BBB / RRR DDD DDD", r.Cube.String())
}

func TestRotatedCubeInnerRange(t *testing.T) {
	// r on a 4x4 is Rw R'.
	a := NewRotated(New(4))
	a.Rotate(R, 1, 2, 1)

	b := New(4)
	b.Rotate(R, 0, 2, 1)
	b.Rotate(R, 0, 1, 3)
	assert.True(t, a.Cube.Equal(b))
}

func TestSolvedInAnyOrientation(t *testing.T) {
	c := New(4)
	c.Rotate(U, 0, 4, 1)
	assert.False(t, c.IsSolved())
	assert.True(t, c.IsSolvedInAnyOrientation())

	c.Rotate(R, 0, 1, 1)
	assert.False(t, c.IsSolvedInAnyOrientation())
}

func TestSupercubeStricter(t *testing.T) {
	c := New(5)
	// Swapping two X-centers of one face keeps every face one color.
	c.Layers[0].XCenters.Cycle([]CornerSticker{CornerUbl, CornerUfr}, 1)
	assert.True(t, c.IsSolved())
	assert.False(t, c.IsSolvedSupercube())
}

func TestCornerCoordinateRoundTrip(t *testing.T) {
	assert.Zero(t, New(3).Corners.Coordinate())
	for seed := uint64(0); seed < 1024; seed++ {
		c := NewRandom(2, seed).Corners
		assert.Equal(t, c, CornersFromCoordinates(c.PermutationCoordinate(), c.OrientationCoordinate()))
		assert.Equal(t, c, CornersFromCoordinate(c.Coordinate()))
	}
}

func TestEdgeCoordinates(t *testing.T) {
	e := NewEdges()
	assert.Zero(t, e.OrientationCoordinate())
	assert.Zero(t, e.PermutationCoordinate())

	cycle := EdgeFaceCycle(F)
	e.Cycle(cycle[:], 1)
	assert.Equal(t, uint16(308), e.OrientationCoordinate())
	assert.Equal(t, e, EdgesFromCoordinates(e.PermutationCoordinate(), e.OrientationCoordinate()))

	for seed := uint64(0); seed < 1024; seed++ {
		e := NewRandom(3, seed).Edges
		assert.Equal(t, e, EdgesFromCoordinates(e.PermutationCoordinate(), e.OrientationCoordinate()))
	}
}

func TestWingCoordinateRoundTrip(t *testing.T) {
	for seed := uint64(0); seed < 256; seed++ {
		w := NewRandom(4, seed).Layers[0].Wings
		assert.Equal(t, w, WingsFromCoordinate(w.PermutationCoordinate()))
	}
	w := NewWings()
	assert.True(t, w.PermutationCoordinate().IsZero())
}

func TestLehmerUnrankFirstAndLast(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, lehmerUnrank(0, 4))
	assert.Equal(t, []int{3, 2, 1, 0}, lehmerUnrank(23, 4))
	assert.Equal(t, uint64(23), lehmerRank([]int{3, 2, 1, 0}))
}

func TestWingHandedness(t *testing.T) {
	assert.Equal(t, WingFur, WingUfr.LH())
	assert.Equal(t, WingUfr, WingUfr.RH())
	assert.Equal(t, WingUfl, WingUfl.LH())
	assert.Equal(t, WingFul, WingUfl.RH())
	for i := range 48 {
		w := WingStickerFromIndex(i)
		assert.Equal(t, w, WingStickerOnFace(w.EdgeSticker(), handednessOnFace(w)), "%v", w)
		assert.Equal(t, w.String()[0:1], w.Color().String(), "%v", w)
	}
}

// handednessOnFace finds the handedness that maps w's own edge sticker back
// to w.
func handednessOnFace(w WingSticker) Handedness {
	if wingByPermutationAndHandedness[w.EdgeSticker()][LeftHanded] == w {
		return LeftHanded
	}
	return RightHanded
}

func TestStickerTables(t *testing.T) {
	for _, s := range SolvedCornerStickers {
		assert.Equal(t, s, CornerStickerFrom(s.Permutation(), s.Orientation()))
		assert.Equal(t, s.String()[0:1], s.Color().String())
	}
	for _, s := range SolvedEdgeStickers {
		assert.Equal(t, s, EdgeStickerFrom(s.Permutation(), s.Orientation()))
		assert.Equal(t, s, s.Flipped().Flipped())
		assert.Equal(t, s, EdgeStickerFromFaces(s.Color(), s.Flipped().Color()))
	}
	assert.Equal(t, CornerUfr, CornerStickerFromFaces(U, F, R))
	assert.Equal(t, CornerUfr, CornerStickerFromFaces(U, R, F))
	assert.Panics(t, func() { EdgeStickerFromFaces(U, D) })
	assert.Panics(t, func() { CornerStickerFromFaces(U, F, B) })
}

func TestRotateFaceAboutAxis(t *testing.T) {
	assert.Equal(t, R, RotateFace(R, X, 1))
	assert.Equal(t, L, RotateFace(L, X, 3))
	assert.Equal(t, B, RotateFace(F, X, 2))
	assert.NotEqual(t, F, RotateFace(F, X, 1))
	for _, face := range AllFaces {
		for _, axis := range AllAxes {
			assert.Equal(t, face, RotateFace(RotateFace(face, axis, 1), axis, 3))
		}
	}
}

func TestNewRandomDeterministic(t *testing.T) {
	a := NewRandom(6, 42)
	b := NewRandom(6, 42)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewRandom(6, 43)))
	assert.Len(t, a.Layers[1].Obliques, 1)
}

func TestNewRandomParity(t *testing.T) {
	for seed := uint64(0); seed < 256; seed++ {
		c := NewRandom(3, seed)
		assert.Equal(t, c.Corners.Parity(), c.Edges.Parity(), "seed %d", seed)
	}
}

func TestFixedCorners(t *testing.T) {
	c := NewCornersFixed()
	assert.True(t, c.AreSolved())
	assert.Panics(t, func() { c.RotateFace(L, 1) })

	c.RotateFace(R, 1)
	c.RotateFace(U, 1)
	assert.False(t, c.AreSolved())
	coords := c.Coords()
	assert.Equal(t, c, coords.Corners())
	assert.Equal(t, c, CornersFixedFromCoordinate(coords.Combined()))
}

func TestFixedCornerCoordinateRoundTrip(t *testing.T) {
	solved := NewCornersFixed()
	assert.Zero(t, solved.Coords().Combined())
	rng := NewRNG(11)
	for i := 0; i < 1024; i++ {
		coord := uint32(rng.IntN(NumFixedCoords))
		c := CornersFixedFromCoordinate(coord)
		coords := c.Coords()
		require.Equal(t, coord, coords.Combined())
		require.Equal(t, c, coords.Corners())
		require.Equal(t, c, CornersFixedFromCoordinates(coords.Permutation, coords.Orientation))
	}

	for seed := uint64(0); seed < 256; seed++ {
		rng := NewRNG(seed)
		c := NewCornersFixed()
		for range 20 {
			c.RotateFace(FixedFaces[rng.IntN(3)], 1+rng.IntN(3))
		}
		require.Equal(t, c, CornersFixedFromCoordinate(c.Coords().Combined()), "seed %d", seed)
	}
}

func TestFixedMoveTable(t *testing.T) {
	table := SharedFixedMoveTable()
	rng := NewRNG(7)
	c := NewCornersFixed()
	coords := c.Coords()
	for i := 0; i < 100; i++ {
		face := FixedFaces[rng.IntN(3)]
		count := 1 + rng.IntN(3)
		c.RotateFace(face, count)
		coords = table.RotateFace(coords, face, count)
		require.Equal(t, c.Coords(), coords)
	}
	assert.Equal(t, coords, table.RotateFace(coords, U, 4))
	assert.Panics(t, func() { table.RotateFace(coords, D, 1) })
}

func TestTrackerSolvedCallback(t *testing.T) {
	tr := NewTracker(3)
	var solvedAt []int
	tr.SetSolvedCallback(func(moves int) { solvedAt = append(solvedAt, moves) })

	r := types.Move{N: 3, Face: types.FaceR, End: 1, Count: 1}
	tr.ApplyMoves([]types.Move{r, r, r, r})
	assert.Equal(t, []int{4}, solvedAt)
	assert.True(t, tr.IsSolved())
	assert.Equal(t, 4, tr.Moves())

	tr.ApplyMove(types.Move{N: 3, Face: types.FaceU, End: 3, Count: 1})
	assert.Equal(t, []int{4}, solvedAt, "a rotation of a solved cube is not a new solve")

	tr.Reset()
	assert.Zero(t, tr.Moves())
	assert.Equal(t, solved3, tr.CubeString())
}

func TestApplyMoveSizeMismatch(t *testing.T) {
	r := NewRotated(New(4))
	assert.Panics(t, func() { r.ApplyMove(types.Move{N: 3, Face: types.FaceR, End: 1, Count: 1}) })
}

func ExampleCube_String() {
	c := New(3)
	c.Rotate(R, 0, 1, 1)
	fmt.Println(c)
	// Output: UUF UUF UUF / LLL LLL LLL / FFD FFD FFD / RRR RRR RRR / UBB UBB UBB / DDB DDB DDB
}
