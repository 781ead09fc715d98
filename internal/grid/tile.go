package grid

// Tile is a single grid symbol.
type Tile byte

const (
	// Vertical connects north and south.
	Vertical Tile = '|'
	// Horizontal connects east and west.
	Horizontal Tile = '-'
	// BendNE connects north and east.
	BendNE Tile = 'L'
	// BendNW connects north and west.
	BendNW Tile = 'J'
	// BendSW connects south and west.
	BendSW Tile = '7'
	// BendSE connects south and east.
	BendSE Tile = 'F'
	// Ground has no connections.
	Ground Tile = '.'
	// Start is the loop's entry cell. Its shape is only known after tracing.
	Start Tile = 'S'
)

// Terminator separates rows in the grid buffer.
const Terminator byte = '\n'

var pipes = []Tile{Vertical, Horizontal, BendNE, BendNW, BendSW, BendSE}

var shapes = map[Tile]Shape{
	Vertical:   ShapeOf(North, South),
	Horizontal: ShapeOf(East, West),
	BendNE:     ShapeOf(North, East),
	BendNW:     ShapeOf(North, West),
	BendSW:     ShapeOf(South, West),
	BendSE:     ShapeOf(South, East),
}

// Shape returns the directions the tile connects. Ground and Start return
// the empty shape.
func (t Tile) Shape() Shape {
	return shapes[t]
}

// IsPipe reports whether the tile is one of the six pipe pieces.
func (t Tile) IsPipe() bool {
	_, ok := shapes[t]
	return ok
}

// Valid reports whether t belongs to the grid alphabet.
func (t Tile) Valid() bool {
	return t.IsPipe() || t == Ground || t == Start
}

func (t Tile) String() string {
	return string(rune(t))
}
