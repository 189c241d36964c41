package maze

import "strings"

// String renders the grid as ASCII art, one "+---+" row per cell boundary.
func (g *Grid) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", g.cols) + "\n")
	for r := 0; r < g.rows; r++ {
		b.WriteString("|")
		for c := 0; c < g.cols; c++ {
			b.WriteString("   ")
			if c < g.cols-1 && g.VerticalGap(r, c) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n+")
		for c := 0; c < g.cols; c++ {
			if r < g.rows-1 && g.HorizontalGap(r, c) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
