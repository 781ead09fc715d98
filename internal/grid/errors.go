package grid

import (
	"errors"
	"fmt"
)

// MalformedGridError reports a buffer that cannot be read as a grid.
type MalformedGridError struct {
	Reason   string
	Position int
}

func (e MalformedGridError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("malformed grid: %s", e.Reason)
	}
	return fmt.Sprintf("malformed grid: %s at position %d", e.Reason, e.Position)
}

// OutOfBoundsError reports index arithmetic that left the grid.
type OutOfBoundsError struct {
	Position int
	Len      int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %d out of bounds for grid of %d bytes", e.Position, e.Len)
}

// IsMalformedGrid checks if an error is a MalformedGridError.
func IsMalformedGrid(err error) bool {
	var me MalformedGridError
	return errors.As(err, &me)
}

// IsOutOfBounds checks if an error is an OutOfBoundsError.
func IsOutOfBounds(err error) bool {
	var oe OutOfBoundsError
	return errors.As(err, &oe)
}
