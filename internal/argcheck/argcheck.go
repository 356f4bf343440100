// Package argcheck implements the precondition checks shared by the table
// and plot helpers. A failed check yields an *Error naming the offending
// parameter and what was expected of it.
package argcheck

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is matched by every *Error via errors.Is.
var ErrInvalid = errors.New("invalid argument")

// Error describes one rejected argument.
type Error struct {
	Param string // name of the parameter, e.g. "path" or "x"
	Want  string // what the parameter should have been
	Got   string // short description of what was passed
}

func (e *Error) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("error in %q: expected %s", e.Param, e.Want)
	}
	return fmt.Sprintf("error in %q: %s is not %s", e.Param, e.Got, e.Want)
}

func (e *Error) Unwrap() error { return ErrInvalid }

// New returns an *Error for param.
func New(param, want, got string) *Error {
	return &Error{Param: param, Want: want, Got: got}
}

// Path rejects an empty file name.
func Path(param, path string) error {
	if path == "" {
		return New(param, "a non-empty file path", `""`)
	}
	return nil
}

// Values rejects a nil or empty data vector.
func Values(param string, values []float64) error {
	if values == nil {
		return New(param, "a numeric array", "nil")
	}
	if len(values) == 0 {
		return New(param, "a non-empty numeric array", "[]")
	}
	return nil
}

// Pair checks x and y individually and then for equal length.
func Pair(xParam string, x []float64, yParam string, y []float64) error {
	if err := Values(xParam, x); err != nil {
		return err
	}
	if err := Values(yParam, y); err != nil {
		return err
	}
	if len(x) != len(y) {
		return New(yParam, fmt.Sprintf("of the same length as %q (%d)", xParam, len(x)),
			fmt.Sprintf("length %d", len(y)))
	}
	return nil
}

// Finite rejects NaN and infinite values.
func Finite(param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(param, "a finite number", fmt.Sprint(v))
	}
	return nil
}

// OneOf rejects s if it is not one of allowed.
func OneOf(param, s string, allowed ...string) error {
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return New(param, fmt.Sprintf("one of %q", allowed), fmt.Sprintf("%q", s))
}
