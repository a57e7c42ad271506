package imaging

import (
	"image"
	"image/color"
	"testing"
)

// uniformGrid creates a grid where every pixel has the same colour.
func uniformGrid(height, width int, p RGB) *Grid {
	g := NewGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Pixels[y][x] = p
		}
	}
	return g
}

// gridOf builds a grid from literal rows. All rows must have the same length.
func gridOf(t *testing.T, rows ...[]RGB) *Grid {
	t.Helper()
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	g := NewGrid(len(rows), width)
	for y, row := range rows {
		if len(row) != width {
			t.Fatalf("row %d has %d pixels, want %d", y, len(row), width)
		}
		copy(g.Pixels[y], row)
	}
	return g
}

// patternGrid fills a grid with a deterministic, non-uniform pattern.
func patternGrid(height, width int) *Grid {
	g := NewGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Pixels[y][x] = RGB{
				R: uint8((x*37 + y*11) % 256),
				G: uint8((x*x + 3*y) % 256),
				B: uint8((y*y*7 + x) % 256),
			}
		}
	}
	return g
}

// assertGridEqual fails the test if the two grids differ in size or content.
func assertGridEqual(t *testing.T, got, want *Grid) {
	t.Helper()
	if got.Height != want.Height || got.Width != want.Width {
		t.Fatalf("dimensions: got %dx%d, want %dx%d", got.Width, got.Height, want.Width, want.Height)
	}
	if len(got.Pixels) != want.Height {
		t.Fatalf("row count: got %d, want %d", len(got.Pixels), want.Height)
	}
	for y := 0; y < want.Height; y++ {
		if len(got.Pixels[y]) != want.Width {
			t.Fatalf("row %d length: got %d, want %d", y, len(got.Pixels[y]), want.Width)
		}
		for x := 0; x < want.Width; x++ {
			if got.Pixels[y][x] != want.Pixels[y][x] {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got.Pixels[y][x], want.Pixels[y][x])
			}
		}
	}
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(3, 4)
	if g.Height != 3 || g.Width != 4 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", g.Width, g.Height)
	}
	if len(g.Pixels) != 3 {
		t.Fatalf("row count: got %d, want 3", len(g.Pixels))
	}
	for y, row := range g.Pixels {
		if len(row) != 4 {
			t.Errorf("row %d length: got %d, want 4", y, len(row))
		}
		for x, p := range row {
			if p != (RGB{}) {
				t.Errorf("pixel (%d,%d): got %v, want black", x, y, p)
			}
		}
	}
}

func TestNewGrid_RowsDoNotOverlap(t *testing.T) {
	g := NewGrid(2, 2)
	g.Pixels[0] = append(g.Pixels[0], RGB{R: 1})
	if g.Pixels[1][0] != (RGB{}) {
		t.Error("appending to row 0 overwrote row 1")
	}
}

func TestNewGrid_Degenerate(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"zero height", 0, 5},
		{"zero width", 5, 0},
		{"both zero", 0, 0},
		{"negative", -1, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.height, tt.width)
			if !g.Empty() {
				t.Error("grid should be empty")
			}
		})
	}
}

func TestClone(t *testing.T) {
	g := patternGrid(4, 5)
	c := g.Clone()
	assertGridEqual(t, c, g)

	c.Pixels[1][1] = RGB{1, 2, 3}
	if g.Pixels[1][1] == (RGB{1, 2, 3}) {
		t.Error("modifying the clone changed the original")
	}
}

func TestGridImage(t *testing.T) {
	g := gridOf(t,
		[]RGB{{255, 0, 0}, {0, 255, 0}},
		[]RGB{{0, 0, 255}, {10, 20, 30}},
	)

	tests := []struct {
		name     string
		bottomUp bool
		topLeft  color.NRGBA
	}{
		{"top-down", false, color.NRGBA{255, 0, 0, 255}},
		{"bottom-up", true, color.NRGBA{0, 0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := g.Image(tt.bottomUp)
			if img.Bounds() != image.Rect(0, 0, 2, 2) {
				t.Fatalf("bounds: got %v, want 2x2", img.Bounds())
			}
			if got := img.NRGBAAt(0, 0); got != tt.topLeft {
				t.Errorf("top-left: got %v, want %v", got, tt.topLeft)
			}
		})
	}
}

func TestFromImage(t *testing.T) {
	g := patternGrid(7, 9)
	back := FromImage(g.Image(false))
	assertGridEqual(t, back, g)
}

func TestFromImage_Offset(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	img.SetNRGBA(5, 5, color.NRGBA{1, 2, 3, 255})
	img.SetNRGBA(6, 5, color.NRGBA{4, 5, 6, 255})

	g := FromImage(img)
	want := gridOf(t, []RGB{{1, 2, 3}, {4, 5, 6}})
	assertGridEqual(t, g, want)
}

func TestMeanColor(t *testing.T) {
	tests := []struct {
		name string
		grid *Grid
		want RGB
	}{
		{"uniform", uniformGrid(3, 3, RGB{100, 150, 200}), RGB{100, 150, 200}},
		{"empty", NewGrid(0, 0), RGB{}},
		{"half up", gridOf(t, []RGB{{1, 0, 0}, {0, 0, 0}}), RGB{1, 0, 0}},
		{"mixed", gridOf(t, []RGB{{0, 255, 10}, {255, 0, 20}}), RGB{128, 128, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeanColor(tt.grid); got != tt.want {
				t.Errorf("MeanColor: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundChannel(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{254.5, 255},
		{300, 255},
		{-4, 0},
	}

	for _, tt := range tests {
		if got := roundChannel(tt.in); got != tt.want {
			t.Errorf("roundChannel(%v): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},   // within range
		{-1, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tt := range tests {
		got := clamp(tt.val, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%d, %d, %d): got %d, want %d",
				tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}
