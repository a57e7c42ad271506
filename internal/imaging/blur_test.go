package imaging

import "testing"

func TestBlur_Uniform(t *testing.T) {
	g := uniformGrid(6, 7, RGB{12, 200, 99})
	Blur(g)
	assertGridEqual(t, g, uniformGrid(6, 7, RGB{12, 200, 99}))
}

func TestBlur_SinglePixel(t *testing.T) {
	g := uniformGrid(1, 1, RGB{10, 20, 30})
	Blur(g)
	assertGridEqual(t, g, uniformGrid(1, 1, RGB{10, 20, 30}))
}

func TestBlur_IsolatedInteriorPixel(t *testing.T) {
	g := NewGrid(5, 5)
	g.Pixels[2][2] = RGB{90, 180, 255}
	Blur(g)

	// round(90/9)=10, round(180/9)=20, round(255/9)=28
	spot := RGB{10, 20, 28}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := RGB{}
			if y >= 1 && y <= 3 && x >= 1 && x <= 3 {
				want = spot
			}
			if got := g.Pixels[y][x]; got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBlur_CornerPixel(t *testing.T) {
	g := NewGrid(3, 3)
	g.Pixels[0][0] = RGB{200, 200, 200}
	Blur(g)

	want := gridOf(t,
		// corner: 200/4, edge: 200/6, interior: 200/9
		[]RGB{{50, 50, 50}, {33, 33, 33}, {0, 0, 0}},
		[]RGB{{33, 33, 33}, {22, 22, 22}, {0, 0, 0}},
		[]RGB{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	)
	assertGridEqual(t, g, want)
}

func TestBlur_HalfRoundsUp(t *testing.T) {
	// Every pixel of a 2x2 grid is a corner averaging all four: 2/4 = 0.5.
	g := gridOf(t,
		[]RGB{{1, 0, 0}, {0, 0, 0}},
		[]RGB{{0, 0, 0}, {1, 0, 0}},
	)
	Blur(g)
	assertGridEqual(t, g, uniformGrid(2, 2, RGB{1, 0, 0}))
}

func TestBlur_ReadsOriginalNeighbours(t *testing.T) {
	orig := patternGrid(40, 33)
	g := orig.Clone()
	Blur(g)

	for y := 0; y < orig.Height; y++ {
		for x := 0; x < orig.Width; x++ {
			if want := boxMean(orig, y, x); g.Pixels[y][x] != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, g.Pixels[y][x], want)
			}
		}
	}
}

func TestBlur_SingleRow(t *testing.T) {
	g := gridOf(t, []RGB{{0, 0, 0}, {30, 30, 30}, {60, 60, 60}})
	Blur(g)

	// Ends average 2 samples, the middle 3.
	want := gridOf(t, []RGB{{15, 15, 15}, {30, 30, 30}, {45, 45, 45}})
	assertGridEqual(t, g, want)
}

func TestBlur_Empty(t *testing.T) {
	for _, g := range []*Grid{NewGrid(0, 0), NewGrid(0, 3), NewGrid(3, 0)} {
		Blur(g)
		if len(g.Pixels) != g.Height {
			t.Errorf("row count changed: got %d, want %d", len(g.Pixels), g.Height)
		}
	}
}
