package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxn_bld/internal/cube"
)

// Facelet colors with white on top and green in front.
var faceletStyles = map[cube.Face]lipgloss.Style{
	cube.U: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
	cube.L: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00")),
	cube.F: lipgloss.NewStyle().Foreground(lipgloss.Color("#00C000")),
	cube.R: lipgloss.NewStyle().Foreground(lipgloss.Color("#E00000")),
	cube.B: lipgloss.NewStyle().Foreground(lipgloss.Color("#0050FF")),
	cube.D: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE000")),
}

func faceletCell(f cube.Face, plain bool) string {
	if plain {
		return f.String() + " "
	}
	return faceletStyles[f].Render("■") + " "
}

// renderNet draws the cube as an unfolded cross: U on top, L F R B in the
// middle band and D below. Plain output uses face letters instead of
// colored squares.
func renderNet(c *cube.Cube, plain bool) string {
	n := c.N
	rows := func(face cube.Face) [][]cube.Face {
		facelets := c.Facelets(face)
		out := make([][]cube.Face, n)
		for r := range out {
			out[r] = facelets[r*n : (r+1)*n]
		}
		return out
	}
	indent := strings.Repeat("  ", n)

	var lines []string
	writeRow := func(prefix string, faces ...[]cube.Face) {
		var sb strings.Builder
		sb.WriteString(prefix)
		for _, row := range faces {
			for _, f := range row {
				sb.WriteString(faceletCell(f, plain))
			}
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}

	for _, row := range rows(cube.U) {
		writeRow(indent, row)
	}
	l, f, r, b := rows(cube.L), rows(cube.F), rows(cube.R), rows(cube.B)
	for i := 0; i < n; i++ {
		writeRow("", l[i], f[i], r[i], b[i])
	}
	for _, row := range rows(cube.D) {
		writeRow(indent, row)
	}
	return strings.Join(lines, "\n")
}
