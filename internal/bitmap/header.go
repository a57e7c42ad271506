package bitmap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40

	// signature is "BM" read as a little-endian uint16.
	signature = 0x4d42

	bytesPerPixel = 3
)

// FileHeader mirrors BITMAPFILEHEADER: 14 bytes, little-endian, no padding.
type FileHeader struct {
	Type      uint16 // File signature, 0x4d42 ("BM").
	Size      uint32 // Size of the whole file in bytes.
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // Offset from the start of the file to the pixel array.
}

// InfoHeader mirrors BITMAPINFOHEADER: 40 bytes, little-endian, no padding.
type InfoHeader struct {
	Size            uint32 // Size of this header, 40.
	Width           int32  // Width in pixels.
	Height          int32  // Height in pixels; negative means rows are stored top-down.
	Planes          uint16
	BitCount        uint16 // Bits per pixel.
	Compression     uint32 // 0 for BI_RGB.
	SizeImage       uint32
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// FormatError reports that the input is not a well-formed BMP.
type FormatError string

func (e FormatError) Error() string { return "bitmap: invalid format: " + string(e) }

// UnsupportedError reports a valid BMP variant this package does not handle.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "bitmap: unsupported format: " + string(e) }

// readHeaders reads the file header and info header from the start of r.
func readHeaders(r io.Reader) (FileHeader, InfoHeader, error) {
	var fh FileHeader
	var ih InfoHeader

	if err := binary.Read(r, binary.LittleEndian, &fh); err != nil {
		return fh, ih, headerError("file header", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &ih); err != nil {
		return fh, ih, headerError("info header", err)
	}
	return fh, ih, nil
}

func headerError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", FormatError("truncated "+what), io.ErrUnexpectedEOF)
	}
	return fmt.Errorf("failed to read %s: %w", what, err)
}

// writeHeaders writes both headers to w unchanged.
func writeHeaders(w io.Writer, fh FileHeader, ih InfoHeader) error {
	if err := binary.Write(w, binary.LittleEndian, &fh); err != nil {
		return fmt.Errorf("failed to write file header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, &ih); err != nil {
		return fmt.Errorf("failed to write info header: %w", err)
	}
	return nil
}

// Validate checks that the headers describe an uncompressed 24-bit bitmap with
// a 40-byte info header and the pixel array at offset 54.
func Validate(fh FileHeader, ih InfoHeader) error {
	switch {
	case fh.Type != signature:
		return UnsupportedError("not a BMP file")
	case fh.OffBits != fileHeaderLen+infoHeaderLen:
		return UnsupportedError("pixel offset " + strconv.FormatUint(uint64(fh.OffBits), 10))
	case ih.Size != infoHeaderLen:
		return UnsupportedError("info header size " + strconv.FormatUint(uint64(ih.Size), 10))
	case ih.BitCount != 24:
		return UnsupportedError("bit depth " + strconv.FormatUint(uint64(ih.BitCount), 10))
	case ih.Compression != 0:
		return UnsupportedError("compression method " + strconv.FormatUint(uint64(ih.Compression), 10))
	case ih.Width < 0:
		return FormatError("negative width")
	}
	return nil
}

// padding returns the number of zero bytes that follow each scanline of the
// given width so rows land on a 4-byte boundary.
func padding(width int) int {
	return (4 - (width*bytesPerPixel)%4) % 4
}
