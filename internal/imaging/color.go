package imaging

import "github.com/anthonynsimon/bild/parallel"

// Grayscale replaces every pixel with the unweighted mean of its three channels.
//
// The mean is rounded to the nearest integer, so (1,1,0) becomes (1,1,1) and
// (0,0,1) becomes (0,0,0). The grid is modified in place. Applying Grayscale a
// second time leaves the grid unchanged.
func Grayscale(g *Grid) {
	if g.Empty() {
		return
	}

	parallel.Line(g.Height, func(start, end int) {
		for y := start; y < end; y++ {
			row := g.Pixels[y]
			for x, p := range row {
				avg := roundChannel(float64(int(p.R)+int(p.G)+int(p.B)) / 3.0)
				row[x] = RGB{R: avg, G: avg, B: avg}
			}
		}
	})
}

// Sepia weights for each output channel, applied to the original (R, G, B).
var sepiaMatrix = [3][3]float64{
	{0.393, 0.769, 0.189},
	{0.349, 0.686, 0.168},
	{0.272, 0.534, 0.131},
}

// Sepia maps every pixel through the sepia colour matrix:
//
//	R' = 0.393R + 0.769G + 0.189B
//	G' = 0.349R + 0.686G + 0.168B
//	B' = 0.272R + 0.534G + 0.131B
//
// All three outputs are computed from the original triple. Each result is
// rounded to the nearest integer and clamped to 255, so white becomes
// (255,255,239). The grid is modified in place.
func Sepia(g *Grid) {
	if g.Empty() {
		return
	}

	parallel.Line(g.Height, func(start, end int) {
		for y := start; y < end; y++ {
			row := g.Pixels[y]
			for x, p := range row {
				row[x] = sepiaPixel(p)
			}
		}
	})
}

func sepiaPixel(p RGB) RGB {
	r, gr, b := float64(p.R), float64(p.G), float64(p.B)
	m := &sepiaMatrix
	return RGB{
		R: roundChannel(m[0][0]*r + m[0][1]*gr + m[0][2]*b),
		G: roundChannel(m[1][0]*r + m[1][1]*gr + m[1][2]*b),
		B: roundChannel(m[2][0]*r + m[2][1]*gr + m[2][2]*b),
	}
}
