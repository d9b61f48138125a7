// Package tetris implements the simulation core of a falling-block puzzle
// game: a fixed-size occupancy grid, the active piece's geometry and
// collision model, and the match state machine that ties spawning, gravity,
// steering, line clearing and game-over detection together. The package has
// no opinion about rendering, input devices or timing — a driver feeds
// Match.Tick a per-frame delta and an Input snapshot, and reads the grid
// back for drawing.
package tetris

// Point is an integer cell coordinate. X grows to the right, Y grows upward.
type Point struct {
	X, Y int
}

// Grid is a fixed-size boolean occupancy field stored row-major with
// index 0 at the bottom-left corner. It is created once per match and
// mutated only by piece stamping and full-row elimination.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates an empty width×height grid. Dimensions must be positive.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("tetris: grid dimensions must be positive")
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(x, y int) int { return y*g.width + x }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the occupancy of cell (x,y). The second result reports whether
// the coordinate is inside the grid; out-of-bounds cells are not implicitly
// occupied — callers decide how to treat them.
func (g *Grid) Get(x, y int) (occupied, ok bool) {
	if !g.inBounds(x, y) {
		return false, false
	}
	return g.cells[g.index(x, y)], true
}

// Set writes the occupancy of cell (x,y) and reports whether the coordinate
// was inside the grid. Out-of-bounds writes are a no-op.
func (g *Grid) Set(x, y int, occupied bool) bool {
	if !g.inBounds(x, y) {
		return false
	}
	g.cells[g.index(x, y)] = occupied
	return true
}

// Stamp writes occupied into every world cell of the piece. Cells outside
// the grid are silently skipped; pieces routinely overlap the space above
// the top edge right after spawning.
func (g *Grid) Stamp(p *Piece, occupied bool) {
	for _, cell := range p.WorldCells() {
		g.Set(cell.X, cell.Y, occupied)
	}
}

// RowOccupied reports whether any cell in row y is occupied. Rows outside
// the grid are empty.
func (g *Grid) RowOccupied(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	row := g.cells[g.index(0, y):g.index(0, y+1)]
	for _, occupied := range row {
		if occupied {
			return true
		}
	}
	return false
}

func (g *Grid) rowFull(y int) bool {
	row := g.cells[g.index(0, y):g.index(0, y+1)]
	for _, occupied := range row {
		if !occupied {
			return false
		}
	}
	return true
}

// EliminateFullRows removes every completely occupied row, shifts the rows
// above each removed row down one step, refills the vacated rows at the top
// with empty cells and returns the number of rows removed.
func (g *Grid) EliminateFullRows() int {
	removed := 0
	dst := 0
	for y := 0; y < g.height; y++ {
		if g.rowFull(y) {
			removed++
			continue
		}
		if dst != y {
			copy(g.cells[g.index(0, dst):g.index(0, dst+1)], g.cells[g.index(0, y):g.index(0, y+1)])
		}
		dst++
	}
	for ; dst < g.height; dst++ {
		row := g.cells[g.index(0, dst):g.index(0, dst+1)]
		for x := range row {
			row[x] = false
		}
	}
	return removed
}

// Cells exposes the backing occupancy slice for rendering: row-major,
// index 0 at the bottom-left. Renderers must treat it as read-only.
func (g *Grid) Cells() []bool { return g.cells }
