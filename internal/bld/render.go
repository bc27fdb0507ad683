package bld

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/nxn_bld/internal/cube"
)

func ordinalSuffix(n int) string {
	switch {
	case n%100 >= 11 && n%100 <= 13:
		return "th"
	case n%10 == 1:
		return "st"
	case n%10 == 2:
		return "nd"
	case n%10 == 3:
		return "rd"
	default:
		return "th"
	}
}

type memoWriter struct {
	sb strings.Builder
	l  *Lettering
}

// spaced writes letters in pairs separated by a space.
func (w *memoWriter) spaced(indices []int) {
	for i, idx := range indices {
		if i != 0 && i%2 == 0 {
			w.sb.WriteByte(' ')
		}
		w.sb.WriteRune(w.l.Letter(idx))
	}
}

func (w *memoWriter) unspaced(indices []int) {
	for _, idx := range indices {
		w.sb.WriteRune(w.l.Letter(idx))
	}
}

// writeCycles writes the cycles of m as letter pairs.
func writeCycles[S, P, O comparable](w *memoWriter, m Memo[S, P, O], index func(S) int) {
	var indices []int
	for _, c := range m.Cycles {
		indices = append(indices, index(c[1]), index(c[2]))
	}
	w.spaced(indices)
}

// writeTargets writes the cycles of m followed by the parity target.
func writeTargets[S, P, O comparable](w *memoWriter, m Memo[S, P, O], index func(S) int) {
	writeCycles(w, m, index)
	if m.Parity != nil {
		w.sb.WriteByte(' ')
		w.sb.WriteRune(w.l.Letter(index(m.Parity[1])))
	}
}

func edgeIndex(s cube.EdgeSticker) int     { return s.Index() }
func cornerIndex(s cube.CornerSticker) int { return s.Index() }
func wingIndex(s cube.WingSticker) int     { return s.EdgeSticker().Index() }

// Render writes the memo of c as letter pairs. Edges are listed for odd
// cubes, corners for n > 1, and every layer gets its X-centers, T-centers
// (odd cubes only), wings and oblique rings. Oblique lines carry no parity
// target. Flipped edges are named by
// their good sticker and twisted corners by the sticker that has to move
// to the reference face.
func Render(c *cube.Cube, cfg Config) string {
	return RenderMemo(MemoCube(c, cfg.Buffers), cfg.Lettering)
}

// RenderMemo renders a memo computed by MemoCube.
func RenderMemo(m CubeMemo, l *Lettering) string {
	w := &memoWriter{l: l}

	if m.Edges != nil {
		w.sb.WriteString("Edges: ")
		writeTargets(w, *m.Edges, edgeIndex)
		if len(m.Edges.Twists) > 0 {
			w.sb.WriteString("; flip ")
			flips := make([]int, len(m.Edges.Twists))
			for i, t := range m.Edges.Twists {
				flips[i] = cube.EdgeStickerFrom(t.Piece, cube.EdgeGood).Index()
			}
			w.unspaced(flips)
		}
		w.sb.WriteByte('\n')
	}

	if m.Corners != nil {
		w.sb.WriteString("Corners: ")
		writeTargets(w, *m.Corners, cornerIndex)
		if len(m.Corners.Twists) > 0 {
			w.sb.WriteString("; twist ")
			twists := make([]int, len(m.Corners.Twists))
			for i, t := range m.Corners.Twists {
				twists[i] = cube.CornerStickerFrom(t.Piece, t.Orientation.Neg()).Index()
			}
			w.unspaced(twists)
		}
	}

	odd := m.N%2 != 0
	for i, layer := range m.Layers {
		fmt.Fprintf(&w.sb, "\n\nLayer %d", i+1)

		w.sb.WriteString("\nX-centers: ")
		writeTargets(w, layer.XCenters, cornerIndex)

		if odd {
			w.sb.WriteString("\nT-centers: ")
			writeTargets(w, layer.TCenters, edgeIndex)
		}

		w.sb.WriteString("\nWings: ")
		writeTargets(w, layer.Wings, wingIndex)

		for j, pair := range layer.Obliques {
			fmt.Fprintf(&w.sb, "\n%d%s left obliques: ", j+1, ordinalSuffix(j+1))
			writeCycles(w, pair.Left, edgeIndex)
			fmt.Fprintf(&w.sb, "\n%d%s right obliques: ", j+1, ordinalSuffix(j+1))
			writeCycles(w, pair.Right, edgeIndex)
		}
	}

	return w.sb.String()
}
