package tetris

// Piece is the active tetromino: a shape, a world-space anchor and a
// quarter-turn rotation index. A Piece is owned by its Match for the
// lifetime of one placement; once it locks, its cells are copied into the
// grid permanently and the value is discarded.
type Piece struct {
	Shape    Shape
	Anchor   Point
	Rotation int
}

// NewPiece creates a piece of the given shape at the given anchor with
// rotation 0.
func NewPiece(shape Shape, anchor Point) Piece {
	return Piece{Shape: shape, Anchor: anchor}
}

// rotated applies the quarter-turn transform for the given rotation index.
// An index outside {0,1,2,3} is a programming error: normal transitions only
// produce wrapped indices, so this fails fast instead of recovering.
func rotated(pt Point, rotation int) Point {
	switch rotation {
	case 0:
		return pt
	case 1:
		return Point{pt.Y, -pt.X}
	case 2:
		return Point{-pt.X, -pt.Y}
	case 3:
		return Point{-pt.Y, pt.X}
	}
	panic("tetris: rotation index out of range")
}

// WorldCells returns the four world-space cells the piece occupies: each
// local offset rotated by the piece's rotation, then translated by the
// anchor.
func (p *Piece) WorldCells() [4]Point {
	cells := p.Shape.Offsets()
	for i, offset := range cells {
		r := rotated(offset, p.Rotation)
		cells[i] = Point{p.Anchor.X + r.X, p.Anchor.Y + r.Y}
	}
	return cells
}

// HasCollision reports whether any world cell of the piece lies outside the
// side walls or below the floor, or overlaps an occupied cell. Cells above
// the top edge are free: pieces spawn partially above the visible field and
// descend into it.
func (p *Piece) HasCollision(g *Grid) bool {
	for _, cell := range p.WorldCells() {
		if cell.X < 0 || cell.X >= g.Width() || cell.Y < 0 {
			return true
		}
		if occupied, ok := g.Get(cell.X, cell.Y); ok && occupied {
			return true
		}
	}
	return false
}

// TryOffset applies the displacement (dx,dy) one unit step at a time,
// alternating between the axes that still have remaining delta and
// re-testing collision after every step. A blocked step is reverted and the
// sweep stops, keeping whatever progress was already made, so a piece can
// never pass through an occupied cell. Reports whether the full displacement
// was applied.
func (p *Piece) TryOffset(dx, dy int, g *Grid) bool {
	stepX := sign(dx)
	stepY := sign(dy)
	for dx != 0 || dy != 0 {
		if dx != 0 {
			p.Anchor.X += stepX
			if p.HasCollision(g) {
				p.Anchor.X -= stepX
				return false
			}
			dx -= stepX
		}
		if dy != 0 {
			p.Anchor.Y += stepY
			if p.HasCollision(g) {
				p.Anchor.Y -= stepY
				return false
			}
			dy -= stepY
		}
	}
	return true
}

// TryRotate advances the rotation by one quarter turn, wrapping within
// {0,1,2,3}. If the rotated piece collides the rotation is reverted; no
// wall-kick offsets are searched. Reports whether the rotation was applied.
func (p *Piece) TryRotate(g *Grid) bool {
	prev := p.Rotation
	p.Rotation = (p.Rotation + 1) % 4
	if p.HasCollision(g) {
		p.Rotation = prev
		return false
	}
	return true
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
