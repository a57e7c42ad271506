package cli

import "errors"

// Failure kinds reported by Execute. Each maps to a fixed process exit code.
var (
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrMultipleFilters = errors.New("only one filter allowed")
	ErrUsage           = errors.New("wrong number of arguments")
	ErrOpenInput       = errors.New("could not open input")
	ErrCreateOutput    = errors.New("could not create output")
	ErrUnsupported     = errors.New("unsupported file format")
	ErrWriteOutput     = errors.New("could not write output")
)

var exitCodes = []struct {
	kind error
	code int
}{
	{ErrInvalidFilter, 1},
	{ErrMultipleFilters, 2},
	{ErrUsage, 3},
	{ErrOpenInput, 4},
	{ErrCreateOutput, 5},
	{ErrUnsupported, 6},
	{ErrWriteOutput, 7},
}

// Error is a dispatch failure: its kind, the line shown to the user, and the
// underlying cause if there is one.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.Error() + ": " + e.Err.Error()
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// ExitCode returns the process exit status for err: 0 for nil, the code of
// its failure kind, or 1 for anything unrecognised.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	for _, ec := range exitCodes {
		if errors.Is(err, ec.kind) {
			return ec.code
		}
	}
	return 1
}
