package grid

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every cardinal direction.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Offset returns the linear index delta for one step in d on a grid whose
// rows are width bytes wide, not counting the terminator.
func (d Direction) Offset(width int) int {
	switch d {
	case North:
		return -width - 1
	case South:
		return width + 1
	case East:
		return 1
	default:
		return -1
	}
}

// Shape is the set of directions a tile connects to.
type Shape uint8

// ShapeOf builds a Shape from directions.
func ShapeOf(dirs ...Direction) Shape {
	var s Shape
	for _, d := range dirs {
		s |= 1 << d
	}
	return s
}

// Has reports whether the shape connects towards d.
func (s Shape) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// Len returns the number of connections.
func (s Shape) Len() int {
	n := 0
	for _, d := range Directions() {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Tile returns the pipe tile drawn with this shape, or Ground when the shape
// is not a two-connection pipe.
func (s Shape) Tile() Tile {
	for _, t := range pipes {
		if t.Shape() == s {
			return t
		}
	}
	return Ground
}
