package core

// Grid stores a 2D field of byte-sized cell values in row-major order.
// All wrapped access goes through Wrap/At so the toroidal boundary math
// lives in exactly one place.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// At returns the cell value at (row, col) after toroidal wrapping. Any
// integer coordinate pair is a valid input.
func (g *Grid) At(row, col int) uint8 {
	row, col = g.Wrap(row, col)
	return g.data[row*g.Cols+col]
}

// Set writes the cell value at (row, col) after toroidal wrapping.
func (g *Grid) Set(row, col int, v uint8) {
	row, col = g.Wrap(row, col)
	g.data[row*g.Cols+col] = v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CopyFrom overwrites this grid's cells with those of src. Both grids must
// share dimensions; a mismatched source is ignored.
func (g *Grid) CopyFrom(src *Grid) {
	if src == nil || src.Rows != g.Rows || src.Cols != g.Cols {
		return
	}
	copy(g.data, src.data)
}
