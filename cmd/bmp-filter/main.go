package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/bmp-filter/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and --help before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("bmp-filter %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("bmp-filter - apply a filter to a 24-bit BMP image")
			fmt.Println()
			fmt.Println(cli.Usage)
			fmt.Println("       bmp-filter -info infile")
			fmt.Println()
			fmt.Println("Filters (choose exactly one):")
			fmt.Println("  -b    Box blur")
			fmt.Println("  -e    Sobel edge detection")
			fmt.Println("  -g    Grayscale")
			fmt.Println("  -r    Reflect horizontally")
			fmt.Println("  -s    Sepia")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -preview path    Also write the result as PNG/JPEG/etc. (by extension)")
			fmt.Println("  -info            Print image metadata as JSON instead of filtering")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  BMP_FILTER_LOG_LEVEL=debug    Enable debug logging")
			return
		}
	}

	// Diagnostics go to stderr; stdout carries -info output
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logger := log.New(io.Discard, "", 0)
	if os.Getenv("BMP_FILTER_LOG_LEVEL") == "debug" {
		logger = log.Default()
		logger.Printf("bmp-filter v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, logger))
}
