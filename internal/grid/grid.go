// Package grid interprets a flat byte buffer of pipe symbols as a 2-D surface.
//
// Rows are separated by a single '\n'. A position is a linear index into the
// buffer, so the row stride is width+1 and the terminator column is never a
// valid cell. The buffer is never modified once a Grid has been built.
package grid

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Width returns the offset of the first row terminator.
func Width(buf []byte) (int, error) {
	w := bytes.IndexByte(buf, Terminator)
	if w < 0 {
		return 0, MalformedGridError{Reason: "row terminator not found", Position: -1}
	}
	return w, nil
}

// StartPosition returns the index of the first Start tile.
func StartPosition(buf []byte) (int, error) {
	p := bytes.IndexByte(buf, byte(Start))
	if p < 0 {
		return 0, MalformedGridError{Reason: "start tile not found", Position: -1}
	}
	return p, nil
}

// TileAt returns the tile at p.
func TileAt(buf []byte, p int) (Tile, error) {
	if p < 0 || p >= len(buf) {
		return 0, OutOfBoundsError{Position: p, Len: len(buf)}
	}
	return Tile(buf[p]), nil
}

// Grid is an immutable view over a grid buffer.
type Grid struct {
	buf   []byte
	width int
	rows  int
	start int
}

// New validates buf and wraps it in a Grid. The final row may omit its
// terminator. The buffer is retained, callers must not modify it.
func New(buf []byte) (*Grid, error) {
	width, err := Width(buf)
	if err != nil {
		return nil, err
	}
	if width == 0 {
		return nil, MalformedGridError{Reason: "empty first row", Position: 0}
	}

	for p := 0; p < len(buf); p++ {
		col := p % (width + 1)
		b := buf[p]
		if col == width {
			if b != Terminator {
				return nil, MalformedGridError{Reason: fmt.Sprintf("row wider than %d", width), Position: p}
			}
			continue
		}
		if b == Terminator {
			return nil, MalformedGridError{Reason: fmt.Sprintf("row narrower than %d", width), Position: p}
		}
		if !Tile(b).Valid() {
			return nil, MalformedGridError{Reason: fmt.Sprintf("unknown symbol %q", b), Position: p}
		}
	}
	if tail := len(buf) % (width + 1); tail != 0 && tail != width {
		return nil, MalformedGridError{Reason: fmt.Sprintf("row narrower than %d", width), Position: len(buf)}
	}

	start, err := StartPosition(buf)
	if err != nil {
		return nil, err
	}

	return &Grid{
		buf:   buf,
		width: width,
		rows:  (len(buf) + width) / (width + 1),
		start: start,
	}, nil
}

// Load reads a grid from r. Windows line endings are normalised to '\n'.
func Load(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}
	return New(Normalize(data))
}

// LoadFile reads a grid from the file at path.
func LoadFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}
	return New(Normalize(data))
}

// Normalize rewrites "\r\n" line endings as "\n".
func Normalize(data []byte) []byte {
	if !bytes.Contains(data, []byte("\r\n")) {
		return data
	}
	return bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
}

// Bytes returns the underlying buffer. It must not be modified.
func (g *Grid) Bytes() []byte { return g.buf }

// Len returns the buffer length, terminators included.
func (g *Grid) Len() int { return len(g.buf) }

// Width returns the number of cells per row.
func (g *Grid) Width() int { return g.width }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cells returns the number of cells, terminators excluded.
func (g *Grid) Cells() int { return g.width * g.rows }

// Start returns the position of the Start tile.
func (g *Grid) Start() int { return g.start }

// RowCol converts a position to its row and column.
func (g *Grid) RowCol(p int) (row, col int) {
	return p / (g.width + 1), p % (g.width + 1)
}

// Index converts a row and column to a position.
func (g *Grid) Index(row, col int) int {
	return row*(g.width+1) + col
}

// IsTerminator reports whether p addresses a row terminator.
func (g *Grid) IsTerminator(p int) bool {
	return p%(g.width+1) == g.width
}

// TileAt returns the tile at p.
func (g *Grid) TileAt(p int) (Tile, error) {
	if p >= 0 && p < len(g.buf) && g.IsTerminator(p) {
		return 0, OutOfBoundsError{Position: p, Len: len(g.buf)}
	}
	return TileAt(g.buf, p)
}

// Neighbor returns the position one step from p towards d. Steps that leave
// the buffer or wrap around a row edge fail with OutOfBoundsError.
func (g *Grid) Neighbor(p int, d Direction) (int, error) {
	row, col := g.RowCol(p)
	q := p + d.Offset(g.width)
	oob := OutOfBoundsError{Position: q, Len: len(g.buf)}

	if p < 0 || p >= len(g.buf) || col == g.width {
		return 0, OutOfBoundsError{Position: p, Len: len(g.buf)}
	}
	switch d {
	case North:
		if row == 0 {
			return 0, oob
		}
	case East:
		if col+1 == g.width {
			return 0, oob
		}
	case West:
		if col == 0 {
			return 0, oob
		}
	}
	if q < 0 || q >= len(g.buf) {
		return 0, oob
	}
	return q, nil
}
