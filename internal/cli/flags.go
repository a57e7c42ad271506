package cli

import (
	"flag"
	"strconv"
	"strings"

	"github.com/ironsheep/bmp-filter/internal/imaging"
)

// selectorFlag is a boolean flag that records every time it is switched on,
// in the order selectors appear on the command line. Repeating a selector
// counts twice.
type selectorFlag struct {
	filter imaging.Filter
	picked *[]imaging.Filter
}

func (s *selectorFlag) String() string { return "false" }

func (s *selectorFlag) IsBoolFlag() bool { return true }

func (s *selectorFlag) Set(v string) error {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	if on {
		*s.picked = append(*s.picked, s.filter)
	}
	return nil
}

// isSelector reports whether c is one of the filter selector characters.
func isSelector(c byte) bool {
	_, err := imaging.ParseSelector(c)
	return err == nil
}

// splitGrouped expands grouped short selectors such as "-bg" into "-b", "-g".
// Only arguments whose first letter is a selector are split; the remaining
// letters are passed on as they are, so "-bx" becomes "-b", "-x" and fails on
// the unknown flag. Arguments after "--" are left alone.
func splitGrouped(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		if len(a) > 2 && a[0] == '-' && a[1] != '-' && isSelector(a[1]) && !strings.Contains(a, "=") {
			for j := 1; j < len(a); j++ {
				out = append(out, "-"+a[j:j+1])
			}
			continue
		}
		out = append(out, a)
	}
	return out
}

// parseInterleaved parses flags that may appear before, between or after the
// positional arguments, and returns the positionals in order. A "--" ends flag
// parsing; everything after it is positional.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	rest := args
	for len(rest) > 0 {
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		remaining := fs.Args()
		consumed := len(rest) - len(remaining)
		if consumed > 0 && rest[consumed-1] == "--" {
			return append(positional, remaining...), nil
		}
		if len(remaining) == 0 {
			break
		}
		positional = append(positional, remaining[0])
		rest = remaining[1:]
	}
	return positional, nil
}
