package imaging

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// Sobel kernels, flattened in the same order as window.
//
//	Gx = -1 0 1    Gy = -1 -2 -1
//	     -2 0 2          0  0  0
//	     -1 0 1          1  2  1
var (
	sobelX = [9]int{-1, 0, 1, -2, 0, 2, -1, 0, 1}
	sobelY = [9]int{-1, -2, -1, 0, 0, 0, 1, 2, 1}
)

// EdgeDetect replaces every pixel with its Sobel gradient magnitude.
//
// Each channel is handled on its own: the horizontal and vertical gradients are
// the weighted sums of that channel over the 3x3 neighbourhood, and the output
// is round(sqrt(Gx² + Gy²)) capped at 255. Neighbours that fall outside the grid
// count as black (value 0) rather than being skipped, which differs from Blur.
// A uniform image therefore turns black everywhere except along its border.
//
// All samples come from the unmodified input; the result replaces g.Pixels once
// every row has been computed.
func EdgeDetect(g *Grid) {
	if g.Empty() {
		return
	}

	out := NewGrid(g.Height, g.Width)

	parallel.Line(g.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < g.Width; x++ {
				out.Pixels[y][x] = sobel(g, y, x)
			}
		}
	})

	g.Pixels = out.Pixels
}

// sobel computes the per-channel gradient magnitude at (y, x).
func sobel(g *Grid, y, x int) RGB {
	var gxR, gxG, gxB, gyR, gyG, gyB int
	for k, o := range window {
		ny, nx := y+o.dy, x+o.dx
		if !g.inBounds(ny, nx) {
			// Black contributes nothing to either sum.
			continue
		}
		p := g.Pixels[ny][nx]
		wx, wy := sobelX[k], sobelY[k]

		gxR += int(p.R) * wx
		gxG += int(p.G) * wx
		gxB += int(p.B) * wx

		gyR += int(p.R) * wy
		gyG += int(p.G) * wy
		gyB += int(p.B) * wy
	}

	return RGB{
		R: magnitude(gxR, gyR),
		G: magnitude(gxG, gyG),
		B: magnitude(gxB, gyB),
	}
}

// magnitude combines two gradients as round(sqrt(gx² + gy²)), capped at 255.
func magnitude(gx, gy int) uint8 {
	return roundChannel(math.Sqrt(float64(gx*gx + gy*gy)))
}
