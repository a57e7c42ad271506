package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	disimg "github.com/disintegration/imaging"

	"github.com/ironsheep/bmp-filter/internal/bitmap"
	"github.com/ironsheep/bmp-filter/internal/imaging"
)

// Usage is the one-line synopsis printed for argument errors.
const Usage = "Usage: bmp-filter [flag] infile outfile"

// Options is a parsed command line.
type Options struct {
	// Filter is the single selected transform. Zero in info mode.
	Filter imaging.Filter

	// Input and Output are the bitmap paths. Output is empty in info mode.
	Input  string
	Output string

	// Preview, when set, receives a PNG (or other format chosen by extension)
	// rendering of the filtered image with the top row first.
	Preview string

	// Info switches to describing Input instead of filtering it.
	Info bool
}

// Parse interprets args (without the program name).
//
// Exactly one of -b, -e, -g, -r or -s must be given along with the input and
// output paths. Selectors may be grouped ("-bg") and flags may follow the
// paths; a repeated or grouped second selector counts as a second filter.
// With -info no filter is allowed and only the input path is expected.
func Parse(args []string) (*Options, error) {
	fs := flag.NewFlagSet("bmp-filter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var filters []imaging.Filter
	for _, f := range imaging.Filters {
		fs.Var(&selectorFlag{filter: f, picked: &filters}, string(f.Selector()), f.String())
	}
	preview := fs.String("preview", "", "also write a preview image to this path")
	info := fs.Bool("info", false, "describe the input bitmap as JSON")

	paths, err := parseInterleaved(fs, splitGrouped(args))
	if err != nil {
		// A bad flag after a valid selector is a second selector, not the first.
		if len(filters) > 0 {
			return nil, newError(ErrMultipleFilters, "Only one filter allowed.", err)
		}
		return nil, newError(ErrInvalidFilter, "Invalid filter.", err)
	}

	opts := &Options{Preview: *preview, Info: *info}

	if opts.Info {
		if len(filters) > 0 || opts.Preview != "" || len(paths) != 1 {
			return nil, newError(ErrUsage, "Usage: bmp-filter -info infile", nil)
		}
		opts.Input = paths[0]
		return opts, nil
	}

	switch {
	case len(filters) == 0:
		return nil, newError(ErrInvalidFilter, "Invalid filter.", nil)
	case len(filters) > 1:
		return nil, newError(ErrMultipleFilters, "Only one filter allowed.", nil)
	case len(paths) != 2:
		return nil, newError(ErrUsage, Usage, nil)
	}

	opts.Filter = filters[0]
	opts.Input = paths[0]
	opts.Output = paths[1]
	return opts, nil
}

// Execute carries out opts: decode the input, apply the filter, write the
// output (and preview). In info mode the JSON description goes to stdout.
//
// The output file is created only after the input decoded successfully, so an
// unreadable or unsupported input never leaves an empty output behind.
func Execute(opts *Options, stdout io.Writer, logger *log.Logger) error {
	if opts.Info {
		info, err := bitmap.LoadInfo(opts.Input)
		if err != nil {
			return inputError(opts.Input, err)
		}
		logger.Printf("described %s: %dx%d", opts.Input, info.Width, info.Height)

		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode info: %w", err)
		}
		_, err = fmt.Fprintln(stdout, string(out))
		return err
	}

	b, err := bitmap.ReadFile(opts.Input)
	if err != nil {
		return inputError(opts.Input, err)
	}
	logger.Printf("decoded %s: %dx%d, top-down=%t, padding=%d",
		opts.Input, b.Grid.Width, b.Grid.Height, b.TopDown(), b.Padding())

	if err := imaging.Apply(b.Grid, opts.Filter); err != nil {
		return newError(ErrInvalidFilter, "Invalid filter.", err)
	}
	logger.Printf("applied %s filter", opts.Filter)

	f, err := bitmap.CreateFile(opts.Output)
	if err != nil {
		return newError(ErrCreateOutput, fmt.Sprintf("Could not create %s.", opts.Output), err)
	}
	if err := bitmap.WriteFile(f, b); err != nil {
		return newError(ErrWriteOutput, fmt.Sprintf("Could not write %s.", opts.Output), err)
	}
	logger.Printf("wrote %s", opts.Output)

	if opts.Preview != "" {
		// Image encoders reject a zero-sized image.
		if b.Grid.Empty() {
			logger.Printf("skipped preview %s: image has no pixels", opts.Preview)
			return nil
		}
		if err := disimg.Save(b.Image(), opts.Preview); err != nil {
			return newError(ErrWriteOutput, fmt.Sprintf("Could not write %s.", opts.Preview), err)
		}
		logger.Printf("wrote preview %s", opts.Preview)
	}

	return nil
}

// inputError maps a failure to read path onto the open or unsupported kind.
func inputError(path string, err error) error {
	if errors.Is(err, bitmap.ErrOpen) {
		return newError(ErrOpenInput, fmt.Sprintf("Could not open %s.", path), err)
	}
	return newError(ErrUnsupported, "Unsupported file format.", err)
}

// Run parses args, executes them, reports any failure on stderr and returns
// the process exit code.
func Run(args []string, stdout, stderr io.Writer, logger *log.Logger) int {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	opts, err := Parse(args)
	if err == nil {
		err = Execute(opts, stdout, logger)
	}
	if err != nil {
		var cliErr *Error
		if errors.As(err, &cliErr) {
			fmt.Fprintln(stderr, cliErr.Message)
		} else {
			fmt.Fprintln(stderr, err)
		}
		logger.Printf("%v", err)
	}

	return ExitCode(err)
}
