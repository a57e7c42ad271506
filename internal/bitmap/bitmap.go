package bitmap

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/ironsheep/bmp-filter/internal/imaging"
)

// Allocation limits for a single image. Each dimension is bounded on its own
// as well, since a zero height or width makes the pixel product useless.
const (
	maxPixels    = 1 << 28
	maxDimension = 1 << 20
)

// Bitmap is a decoded 24-bit BMP: its two headers, kept verbatim so they can
// be written back unchanged, and its pixels.
//
// Grid rows are in file order. For the usual bottom-up bitmap (positive
// height) row 0 is the bottom scanline; for a top-down bitmap it is the top.
type Bitmap struct {
	File FileHeader
	Info InfoHeader
	Grid *imaging.Grid
}

// TopDown reports whether the scanlines are stored top row first.
func (b *Bitmap) TopDown() bool {
	return b.Info.Height < 0
}

// Padding returns the number of alignment bytes after each scanline.
func (b *Bitmap) Padding() int {
	return padding(b.Grid.Width)
}

// Stride returns the number of bytes each scanline occupies in the file,
// padding included.
func (b *Bitmap) Stride() int {
	return b.Grid.Width*bytesPerPixel + b.Padding()
}

// Image returns the pixels as an opaque image with the top row first,
// whatever order the file stores them in.
func (b *Bitmap) Image() *image.NRGBA {
	return b.Grid.Image(!b.TopDown())
}

// Decode reads a 24-bit uncompressed BMP from r.
//
// The headers must pass Validate. Pixel data is read scanline by scanline with
// the row padding skipped; missing data is reported as a FormatError wrapping
// io.ErrUnexpectedEOF. Anything after the last scanline is ignored.
func Decode(r io.Reader) (*Bitmap, error) {
	fh, ih, err := readHeaders(r)
	if err != nil {
		return nil, err
	}
	if err := Validate(fh, ih); err != nil {
		return nil, err
	}

	width := int(ih.Width)
	height := int(ih.Height)
	if height < 0 {
		height = -height
	}
	if width > maxDimension || height > maxDimension || int64(width)*int64(height) > maxPixels {
		return nil, FormatError(fmt.Sprintf("image too large: %dx%d", width, height))
	}

	grid := imaging.NewGrid(height, width)
	line := make([]byte, width*bytesPerPixel+padding(width))

	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(r, line); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: %w", FormatError(fmt.Sprintf("truncated pixel data at row %d", y)), io.ErrUnexpectedEOF)
			}
			return nil, fmt.Errorf("failed to read row %d: %w", y, err)
		}

		row := grid.Pixels[y]
		for x := range row {
			// Scanlines store blue, green, red.
			i := x * bytesPerPixel
			row[x] = imaging.RGB{R: line[i+2], G: line[i+1], B: line[i]}
		}
	}

	return &Bitmap{File: fh, Info: ih, Grid: grid}, nil
}

// Encode writes b to w: both headers exactly as decoded, then every row in
// grid order followed by zero padding up to the 4-byte boundary.
//
// The grid must still have the dimensions recorded in the info header.
func Encode(w io.Writer, b *Bitmap) error {
	width := int(b.Info.Width)
	height := int(b.Info.Height)
	if height < 0 {
		height = -height
	}
	if b.Grid == nil || b.Grid.Width != width || b.Grid.Height != height {
		return fmt.Errorf("grid does not match header dimensions %dx%d", width, height)
	}

	bw := bufio.NewWriter(w)
	if err := writeHeaders(bw, b.File, b.Info); err != nil {
		return err
	}

	// Padding bytes at the tail of line stay zero.
	line := make([]byte, b.Stride())
	for y, row := range b.Grid.Pixels {
		for x, p := range row {
			i := x * bytesPerPixel
			line[i], line[i+1], line[i+2] = p.B, p.G, p.R
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("failed to write row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush bitmap: %w", err)
	}
	return nil
}
