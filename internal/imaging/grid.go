package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// RGB is one 8-bit-per-channel pixel sample. There is no alpha channel.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Grid is a decoded image held as rows of RGB triples.
//
// Pixels is row-major: Pixels[y][x] is column x of row y. Every row holds exactly
// Width entries and there are exactly Height rows. Whether row 0 is the top or the
// bottom scanline is up to the container that produced the grid; the transforms in
// this package only preserve row order and never reinterpret it.
type Grid struct {
	Height int
	Width  int
	Pixels [][]RGB
}

// NewGrid allocates a black grid of the given dimensions.
//
// Rows share one backing array so large images do not fragment the heap.
// Negative dimensions are treated as zero.
func NewGrid(height, width int) *Grid {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}

	backing := make([]RGB, height*width)
	rows := make([][]RGB, height)
	for y := range rows {
		rows[y] = backing[y*width : (y+1)*width : (y+1)*width]
	}

	return &Grid{Height: height, Width: width, Pixels: rows}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Height, g.Width)
	for y := 0; y < g.Height; y++ {
		copy(c.Pixels[y], g.Pixels[y])
	}
	return c
}

// Empty reports whether the grid has no pixels at all.
func (g *Grid) Empty() bool {
	return g.Height <= 0 || g.Width <= 0
}

// inBounds reports whether (y, x) addresses a pixel of the grid.
func (g *Grid) inBounds(y, x int) bool {
	return y >= 0 && y < g.Height && x >= 0 && x < g.Width
}

// Image converts the grid to an opaque *image.NRGBA.
//
// When bottomUp is set, row 0 of the grid becomes the last row of the image,
// which is how bitmaps with a positive height store their scanlines.
func (g *Grid) Image(bottomUp bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	if g.Empty() {
		return img
	}

	parallel.Line(g.Height, func(start, end int) {
		for y := start; y < end; y++ {
			dy := y
			if bottomUp {
				dy = g.Height - 1 - y
			}
			off := dy * img.Stride
			for x, p := range g.Pixels[y] {
				img.Pix[off+4*x+0] = p.R
				img.Pix[off+4*x+1] = p.G
				img.Pix[off+4*x+2] = p.B
				img.Pix[off+4*x+3] = 0xff
			}
		}
	})

	return img
}

// FromImage builds a grid from any image, dropping alpha. Row 0 of the grid is
// the top row of the image.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := NewGrid(bounds.Dy(), bounds.Dx())

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			g.Pixels[y][x] = RGB{R: c.R, G: c.G, B: c.B}
		}
	}

	return g
}

// MeanColor returns the per-channel average over every pixel of the grid,
// rounded to the nearest integer. An empty grid yields black.
func MeanColor(g *Grid) RGB {
	if g.Empty() {
		return RGB{}
	}

	var sumR, sumG, sumB uint64
	for _, row := range g.Pixels {
		for _, p := range row {
			sumR += uint64(p.R)
			sumG += uint64(p.G)
			sumB += uint64(p.B)
		}
	}

	n := float64(g.Height) * float64(g.Width)
	return RGB{
		R: roundChannel(float64(sumR) / n),
		G: roundChannel(float64(sumG) / n),
		B: roundChannel(float64(sumB) / n),
	}
}

// roundChannel rounds v to the nearest integer (halves away from zero) and
// clamps the result into the 8-bit channel range.
func roundChannel(v float64) uint8 {
	return uint8(clamp(int(math.Round(v)), 0, 255))
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
