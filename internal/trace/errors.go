package trace

import (
	"errors"
	"fmt"

	"github.com/thruflo/pipemaze/internal/grid"
)

// TraversalError reports a loop that cannot be walked: a tile that does not
// accept the direction of arrival, a start tile with no connecting
// neighbour, or a walk that never closes.
type TraversalError struct {
	Position int
	Tile     grid.Tile
	Arrival  grid.Direction
	Reason   string
}

func (e TraversalError) Error() string {
	if e.Tile == 0 {
		return fmt.Sprintf("traversal error at position %d: %s", e.Position, e.Reason)
	}
	if e.Tile == grid.Start {
		return fmt.Sprintf("traversal error at start position %d: %s", e.Position, e.Reason)
	}
	return fmt.Sprintf("traversal error at position %d: %s (tile %q, heading %s)",
		e.Position, e.Reason, byte(e.Tile), e.Arrival)
}

// IsTraversal checks if an error is a TraversalError.
func IsTraversal(err error) bool {
	var te TraversalError
	return errors.As(err, &te)
}
