package imaging

import "github.com/anthonynsimon/bild/parallel"

// offset is a relative (row, column) position inside a 3x3 window.
type offset struct {
	dy, dx int
}

// window lists the 3x3 neighbourhood in row-major order, top-left first.
// Sobel weights below are indexed in the same order.
var window = [9]offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Blur applies a 3x3 box blur.
//
// Each pixel becomes the per-channel mean of itself and its existing
// 8-connected neighbours. Neighbours outside the grid are left out of both
// the sum and the count, so a corner averages 4 samples, an edge pixel 6 and
// an interior pixel 9. Means are rounded to the nearest integer.
//
// Every sample is read from the unmodified input; the result is built in a
// separate buffer and replaces g.Pixels once all rows are done.
func Blur(g *Grid) {
	if g.Empty() {
		return
	}

	out := NewGrid(g.Height, g.Width)

	parallel.Line(g.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < g.Width; x++ {
				out.Pixels[y][x] = boxMean(g, y, x)
			}
		}
	})

	g.Pixels = out.Pixels
}

// boxMean averages the in-bounds 3x3 neighbourhood around (y, x).
func boxMean(g *Grid, y, x int) RGB {
	var sumR, sumG, sumB, count int
	for _, o := range window {
		ny, nx := y+o.dy, x+o.dx
		if !g.inBounds(ny, nx) {
			continue
		}
		p := g.Pixels[ny][nx]
		sumR += int(p.R)
		sumG += int(p.G)
		sumB += int(p.B)
		count++
	}

	n := float64(count)
	return RGB{
		R: roundChannel(float64(sumR) / n),
		G: roundChannel(float64(sumG) / n),
		B: roundChannel(float64(sumB) / n),
	}
}
