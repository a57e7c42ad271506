// Package imaging implements the pixel transforms applied by bmp-filter.
//
// Every transform works on a Grid: a memory-resident, row-major grid of 8-bit
// RGB triples with explicit height and width. The package never touches files
// or container headers; the bitmap package decodes a Grid and encodes it back.
//
// # Transforms
//
//   - Grayscale: unweighted channel mean on all three channels
//   - Sepia: fixed 3x3 colour matrix
//   - Reflect: left-right mirror of each row
//   - Blur: 3x3 box blur, out-of-bounds neighbours excluded
//   - EdgeDetect: per-channel Sobel magnitude, out-of-bounds neighbours black
//
// Apply selects one of them by Filter tag.
//
// # Numeric Policy
//
// Fractional results are rounded with math.Round (halves away from zero, so
// 0.5 rounds up for the non-negative values seen here) and clamped to [0,255].
// Output is bit-exact for a given input.
//
// # Concurrency
//
// Rows are processed in parallel. Grayscale, Sepia and Reflect update rows in
// place because no pixel depends on another. Blur and EdgeDetect read only the
// input rows and write into a separate buffer that is swapped in after all
// workers finish, so no output pixel ever sees a partially filtered neighbour.
// The caller must not use the grid from other goroutines during a transform.
//
// Zero-height or zero-width grids are valid and every transform leaves them
// unchanged.
package imaging
