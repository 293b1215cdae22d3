package types

// Point is a pixel position on the board. Game positions are always
// multiples of the grid's cell size.
type Point struct {
	X, Y int
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the board dimensions in pixels and the size of one cell
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Cols returns the number of cells along X.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells along Y.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Cols() * g.Rows()
}

// Wrap folds p back onto the board, component-wise modulo width and height.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Step moves p one cell in direction d, wrapping around the edges.
func (g Grid) Step(p Point, d Direction) Point {
	v := d.Vector()
	return g.Wrap(Point{X: p.X + v.X*g.CellSize, Y: p.Y + v.Y*g.CellSize})
}

// CellAt returns the top-left corner of the cell at column col and row row.
func (g Grid) CellAt(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Contains reports whether p is a grid-aligned position inside the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height &&
		p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

// Center returns the cell nearest to the middle of the board.
func (g Grid) Center() Point {
	return g.CellAt(g.Cols()/2, g.Rows()/2)
}

// Go's % keeps the sign of the dividend
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
