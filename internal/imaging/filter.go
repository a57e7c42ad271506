package imaging

import "fmt"

// Filter identifies one of the transforms in this package.
type Filter int

const (
	FilterGrayscale Filter = iota + 1
	FilterSepia
	FilterReflect
	FilterBlur
	FilterEdgeDetect
)

// Filters lists every supported filter in selector order.
var Filters = []Filter{FilterBlur, FilterEdgeDetect, FilterGrayscale, FilterReflect, FilterSepia}

var filterNames = map[Filter]string{
	FilterGrayscale:  "grayscale",
	FilterSepia:      "sepia",
	FilterReflect:    "reflect",
	FilterBlur:       "blur",
	FilterEdgeDetect: "edges",
}

var filterSelectors = map[Filter]byte{
	FilterGrayscale:  'g',
	FilterSepia:      's',
	FilterReflect:    'r',
	FilterBlur:       'b',
	FilterEdgeDetect: 'e',
}

// String returns the lower-case filter name, e.g. "blur".
func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Selector returns the single-character command-line selector for f,
// or 0 if f is not a known filter.
func (f Filter) Selector() byte {
	return filterSelectors[f]
}

// ParseSelector maps a selector character (b, e, g, r or s) to its filter.
func ParseSelector(c byte) (Filter, error) {
	for f, s := range filterSelectors {
		if s == c {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown filter selector %q", c)
}

// Apply runs filter f once over g.
//
// Grayscale, Sepia and Reflect modify the existing rows; Blur and EdgeDetect
// replace g.Pixels with a freshly computed set of rows. Either way g keeps its
// dimensions. An unknown filter returns an error and leaves g untouched.
func Apply(g *Grid, f Filter) error {
	switch f {
	case FilterGrayscale:
		Grayscale(g)
	case FilterSepia:
		Sepia(g)
	case FilterReflect:
		Reflect(g)
	case FilterBlur:
		Blur(g)
	case FilterEdgeDetect:
		EdgeDetect(g)
	default:
		return fmt.Errorf("unknown filter: %s", f)
	}
	return nil
}
