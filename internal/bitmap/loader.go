package bitmap

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/bmp-filter/internal/imaging"
)

var (
	// ErrOpen wraps failures to open an input file.
	ErrOpen = errors.New("could not open file")

	// ErrCreate wraps failures to create an output file.
	ErrCreate = errors.New("could not create file")

	// ErrWrite wraps failures while writing or closing an output file.
	ErrWrite = errors.New("could not write file")
)

// ReadFile opens and decodes the bitmap at path.
//
// Errors opening the file wrap ErrOpen; decoding errors are returned as-is
// (FormatError, UnsupportedError or an I/O error).
func ReadFile(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}

// CreateFile creates (or truncates) path for writing. Failures wrap ErrCreate.
func CreateFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreate, err)
	}
	return f, nil
}

// WriteFile encodes b into the already created file f and closes it.
// Failures wrap ErrWrite.
func WriteFile(f *os.File, b *Bitmap) error {
	if err := Encode(f, b); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// HSLColor is a colour in hue (degrees), saturation and lightness (percent).
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorSummary describes one colour in several notations.
type ColorSummary struct {
	Hex string      `json:"hex"` // "#rrggbb"
	RGB imaging.RGB `json:"rgb"`
	HSL HSLColor    `json:"hsl"`
}

// Info describes a decoded bitmap without exposing its pixels.
type Info struct {
	// Width and Height are the pixel dimensions (Height is always positive).
	Width  int `json:"width"`
	Height int `json:"height"`

	// TopDown is true when the first stored scanline is the top of the image.
	TopDown bool `json:"top_down"`

	// Stride is the number of bytes per stored scanline, padding included.
	Stride int `json:"stride"`

	// Padding is the number of alignment bytes at the end of each scanline.
	Padding int `json:"padding"`

	// FileSizeBytes is the size recorded in the file header.
	FileSizeBytes uint32 `json:"file_size_bytes"`

	// MeanColor is the average colour over all pixels.
	MeanColor ColorSummary `json:"mean_color"`
}

// Describe summarises b.
func Describe(b *Bitmap) *Info {
	return &Info{
		Width:         b.Grid.Width,
		Height:        b.Grid.Height,
		TopDown:       b.TopDown(),
		Stride:        b.Stride(),
		Padding:       b.Padding(),
		FileSizeBytes: b.File.Size,
		MeanColor:     summarize(imaging.MeanColor(b.Grid)),
	}
}

// LoadInfo reads the bitmap at path and summarises it.
func LoadInfo(path string) (*Info, error) {
	b, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Describe(b), nil
}

func summarize(p imaging.RGB) ColorSummary {
	c := colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return ColorSummary{
		Hex: c.Hex(),
		RGB: p,
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}
