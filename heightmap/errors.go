package heightmap

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is matched by every construction error of this package.
	ErrMalformedGrid = errors.New("heightmap: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrInvalidElevation indicates a non-digit character or a value outside [0,9].
	ErrInvalidElevation = fmt.Errorf("%w: elevation must be a single decimal digit", ErrMalformedGrid)
)

// ParseError reports where in the source a grid failed to build.
// Line and Column are 1-based; Column is 0 when the whole row is at fault.
// Char is the offending character for text input, 0 otherwise.
type ParseError struct {
	Line   int
	Column int
	Char   rune
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Column > 0 && e.Char != 0:
		return fmt.Sprintf("line %d, column %d (%q): %v", e.Line, e.Column, e.Char, e.Err)
	case e.Column > 0:
		return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the specific error kind.
func (e *ParseError) Unwrap() error { return e.Err }
