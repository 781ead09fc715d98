package trace

import "github.com/thruflo/pipemaze/internal/grid"

// Loop is a completed trace. It is read-only.
type Loop struct {
	// Length is the number of steps taken to return to Start, which is also
	// the number of cells on the loop.
	Length int
	// Start is the position of the Start tile.
	Start int
	// StartShape is the shape the Start tile must have to close the loop.
	StartShape grid.Shape

	onLoop []bool
	path   []int
	grid   *grid.Grid
}

// Farthest returns the number of steps along the loop to the cell farthest
// from Start.
func (l *Loop) Farthest() int {
	return l.Length / 2
}

// Contains reports whether p is on the loop.
func (l *Loop) Contains(p int) bool {
	return p >= 0 && p < len(l.onLoop) && l.onLoop[p]
}

// ShapeAt returns the connections of the tile at p, substituting the inferred
// shape for the Start tile.
func (l *Loop) ShapeAt(p int) grid.Shape {
	if p == l.Start {
		return l.StartShape
	}
	tile, err := l.grid.TileAt(p)
	if err != nil {
		return 0
	}
	return tile.Shape()
}

// Path returns loop positions in walk order. Path()[k] is reached after k
// steps, so Path()[0] is Start.
func (l *Loop) Path() []int {
	out := make([]int, len(l.path))
	copy(out, l.path)
	return out
}

// Distance returns the fewest steps along the loop between Start and p, or
// -1 when p is not on the loop.
func (l *Loop) Distance(p int) int {
	for k, q := range l.path {
		if q == p {
			return min(k, l.Length-k)
		}
	}
	return -1
}

// Grid returns the grid the loop was traced on.
func (l *Loop) Grid() *grid.Grid {
	return l.grid
}
