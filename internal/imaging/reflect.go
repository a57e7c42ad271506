package imaging

import "github.com/anthonynsimon/bild/parallel"

// Reflect mirrors the grid left to right.
//
// Column j of each row swaps with column Width-1-j. Row order is untouched and,
// for an odd width, the centre column stays where it is. Reflect is its own
// inverse.
func Reflect(g *Grid) {
	if g.Empty() {
		return
	}

	parallel.Line(g.Height, func(start, end int) {
		for y := start; y < end; y++ {
			row := g.Pixels[y]
			for i, j := 0, g.Width-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
	})
}
