// Package cli implements the bmp-filter command line.
//
// A run selects exactly one filter with a single-character flag and names an
// input and an output bitmap:
//
//	bmp-filter -b|-e|-g|-r|-s [-preview out.png] infile outfile
//	bmp-filter -info infile
//
// # Exit Codes
//
//	1  invalid or missing filter flag
//	2  more than one filter flag
//	3  wrong number of arguments
//	4  input could not be opened
//	5  output could not be created
//	6  input is not a 24-bit uncompressed BMP
//	7  output could not be written
//
// Failures are returned as *Error values whose Kind is one of the Err*
// sentinels, so callers can test them with errors.Is and map them with
// ExitCode.
package cli
