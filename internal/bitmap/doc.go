// Package bitmap reads and writes uncompressed 24-bit BMP files.
//
// Only the classic layout is accepted: a 14-byte BITMAPFILEHEADER, a 40-byte
// BITMAPINFOHEADER, no palette, pixel data at offset 54, BI_RGB compression.
// Anything else is rejected with an UnsupportedError before any pixel data is
// read.
//
// Headers are kept verbatim on the decoded Bitmap so Encode can write them
// back byte for byte. Scanlines are stored as blue, green, red and padded to
// a multiple of four bytes; the padding never reaches the imaging.Grid.
package bitmap
