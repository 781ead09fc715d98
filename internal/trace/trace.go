// Package trace walks the closed pipe loop that passes through a grid's
// Start tile.
//
// Adjacency is never materialised. Each step looks up the tile under the
// cursor together with the direction of arrival in a fixed transition table,
// which yields the exit direction. The walk ends when it steps back onto
// Start.
package trace

import (
	"github.com/thruflo/pipemaze/internal/grid"
)

type transition struct {
	tile    grid.Tile
	arrival grid.Direction
}

// exits maps a tile and the direction of travel onto it to the direction of
// travel off it. A pair that is absent means the tile has no opening facing
// the arrival.
var exits = map[transition]grid.Direction{
	{grid.Vertical, grid.North}:  grid.North,
	{grid.Vertical, grid.South}:  grid.South,
	{grid.Horizontal, grid.East}: grid.East,
	{grid.Horizontal, grid.West}: grid.West,
	{grid.BendNE, grid.South}:    grid.East,
	{grid.BendNE, grid.West}:     grid.North,
	{grid.BendNW, grid.South}:    grid.West,
	{grid.BendNW, grid.East}:     grid.North,
	{grid.BendSW, grid.North}:    grid.West,
	{grid.BendSW, grid.East}:     grid.South,
	{grid.BendSE, grid.North}:    grid.East,
	{grid.BendSE, grid.West}:     grid.South,
}

// Exit returns the direction of travel after entering tile while moving in
// arrival. ok is false when the tile cannot be entered that way.
func Exit(tile grid.Tile, arrival grid.Direction) (grid.Direction, bool) {
	d, ok := exits[transition{tile, arrival}]
	return d, ok
}

// startProbes is the order in which Start's neighbours are tried.
var startProbes = []grid.Direction{grid.North, grid.South, grid.West}

// StartDirection picks the direction to leave Start in. The first neighbour,
// probing north, south then west, whose shape opens back towards Start wins.
func StartDirection(g *grid.Grid) (grid.Direction, error) {
	start := g.Start()
	for _, d := range startProbes {
		p, err := g.Neighbor(start, d)
		if err != nil {
			continue
		}
		tile, err := g.TileAt(p)
		if err != nil {
			continue
		}
		if tile.Shape().Has(d.Opposite()) {
			return d, nil
		}
	}
	return 0, TraversalError{
		Position: start,
		Tile:     grid.Start,
		Reason:   "no neighbour connects to the start tile",
	}
}

// State is the mutable cursor of a trace in progress.
type State struct {
	Position  int
	Direction grid.Direction
	Steps     int
	OnLoop    []bool
	Path      []int
}

// NewState positions a cursor on Start, heading in dir.
func NewState(g *grid.Grid, dir grid.Direction) *State {
	s := &State{
		Position:  g.Start(),
		Direction: dir,
		OnLoop:    make([]bool, g.Len()),
		Path:      []int{g.Start()},
	}
	s.OnLoop[s.Position] = true
	return s
}

// Step advances the cursor one cell. done is true once the cursor has
// arrived back on Start.
func (s *State) Step(g *grid.Grid) (done bool, err error) {
	next, err := g.Neighbor(s.Position, s.Direction)
	if err != nil {
		return false, err
	}
	tile, err := g.TileAt(next)
	if err != nil {
		return false, err
	}

	s.Position = next
	s.Steps++
	s.OnLoop[next] = true

	if tile == grid.Start {
		return true, nil
	}
	s.Path = append(s.Path, next)

	exit, ok := Exit(tile, s.Direction)
	if !ok {
		return false, TraversalError{
			Position: next,
			Tile:     tile,
			Arrival:  s.Direction,
			Reason:   "tile does not connect to the direction of arrival",
		}
	}
	s.Direction = exit
	return false, nil
}

// Trace walks the loop through g's Start tile and returns it.
func Trace(g *grid.Grid) (*Loop, error) {
	dir, err := StartDirection(g)
	if err != nil {
		return nil, err
	}

	s := NewState(g, dir)
	for {
		done, err := s.Step(g)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		// A simple loop visits each cell at most once.
		if s.Steps > g.Cells() {
			return nil, TraversalError{
				Position: s.Position,
				Reason:   "walk did not return to the start tile",
			}
		}
	}

	if s.Steps%2 != 0 {
		return nil, TraversalError{
			Position: g.Start(),
			Tile:     grid.Start,
			Reason:   "loop length is odd",
		}
	}

	return &Loop{
		Length:     s.Steps,
		Start:      g.Start(),
		StartShape: grid.ShapeOf(dir, s.Direction.Opposite()),
		onLoop:     s.OnLoop,
		path:       s.Path,
		grid:       g,
	}, nil
}
