// Package interior counts the grid cells enclosed by a traced loop.
//
// Each row is scanned left to right with a parity flag that starts false. A
// loop cell with a north opening is a crossing of the horizontal ray through
// the row and flips the flag; runs of loop cells without one only graze the
// ray and leave it alone. A cell off the loop is inside iff the flag is set
// when the scan reaches it.
package interior

import (
	"github.com/thruflo/pipemaze/internal/grid"
	"github.com/thruflo/pipemaze/internal/trace"
)

// Class is the classification of one buffer position.
type Class uint8

const (
	Outside Class = iota
	Inside
	Loop
	Terminator
)

func (c Class) String() string {
	switch c {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case Loop:
		return "loop"
	default:
		return "terminator"
	}
}

// Map holds one Class per buffer position.
type Map []Class

// Counts tallies loop, inside and outside cells. Terminators are skipped.
func (m Map) Counts() (loop, inside, outside int) {
	for _, c := range m {
		switch c {
		case Loop:
			loop++
		case Inside:
			inside++
		case Outside:
			outside++
		}
	}
	return loop, inside, outside
}

// Classify assigns a Class to every position of g.
func Classify(g *grid.Grid, l *trace.Loop) Map {
	m := make(Map, g.Len())
	scan(g, l, func(p int, c Class) {
		m[p] = c
	})
	return m
}

// Count returns the number of cells strictly inside the loop.
func Count(g *grid.Grid, l *trace.Loop) int {
	n := 0
	scan(g, l, func(_ int, c Class) {
		if c == Inside {
			n++
		}
	})
	return n
}

func scan(g *grid.Grid, l *trace.Loop, visit func(p int, c Class)) {
	inside := false
	for p := 0; p < g.Len(); p++ {
		if g.IsTerminator(p) {
			inside = false
			visit(p, Terminator)
			continue
		}
		if l.Contains(p) {
			if l.ShapeAt(p).Has(grid.North) {
				inside = !inside
			}
			visit(p, Loop)
			continue
		}
		if inside {
			visit(p, Inside)
		} else {
			visit(p, Outside)
		}
	}
}
