package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestWorldCellsIdentityRotation(t *testing.T) {
	p := tetris.NewPiece(tetris.ShapeO, tetris.Point{X: 4, Y: 10})

	cells := p.WorldCells()

	assert.ElementsMatch(t, []tetris.Point{
		{X: 4, Y: 10}, {X: 5, Y: 10}, {X: 4, Y: 11}, {X: 5, Y: 11},
	}, cells[:])
}

func TestWorldCellsQuarterTurns(t *testing.T) {
	// Vertical I at rotation 1 becomes horizontal: (0,k) -> (k,0).
	p := tetris.NewPiece(tetris.ShapeI, tetris.Point{X: 4, Y: 10})
	p.Rotation = 1

	cells := p.WorldCells()

	assert.ElementsMatch(t, []tetris.Point{
		{X: 4, Y: 10}, {X: 5, Y: 10}, {X: 6, Y: 10}, {X: 7, Y: 10},
	}, cells[:])

	// Rotation 2 mirrors through the anchor.
	p.Rotation = 2
	cells = p.WorldCells()
	assert.ElementsMatch(t, []tetris.Point{
		{X: 4, Y: 10}, {X: 4, Y: 9}, {X: 4, Y: 8}, {X: 4, Y: 7},
	}, cells[:])
}

func TestWorldCellsPanicsOnInvalidRotation(t *testing.T) {
	p := tetris.NewPiece(tetris.ShapeT, tetris.Point{X: 4, Y: 10})
	p.Rotation = 4

	assert.Panics(t, func() { p.WorldCells() })
}

func TestHasCollisionBounds(t *testing.T) {
	g := tetris.NewGrid(10, 21)

	tests := []struct {
		name    string
		anchor  tetris.Point
		collide bool
	}{
		{"inside", tetris.Point{X: 5, Y: 5}, false},
		{"past left wall", tetris.Point{X: -1, Y: 5}, true},
		{"past right wall", tetris.Point{X: 10, Y: 5}, true},
		{"below floor", tetris.Point{X: 5, Y: -1}, true},
		{"spawn row, extends above ceiling", tetris.Point{X: 5, Y: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tetris.NewPiece(tetris.ShapeI, tt.anchor)
			assert.Equal(t, tt.collide, p.HasCollision(g))
		})
	}
}

func TestHasCollisionOccupiedCell(t *testing.T) {
	g := tetris.NewGrid(10, 21)
	p := tetris.NewPiece(tetris.ShapeI, tetris.Point{X: 5, Y: 5})

	assert.False(t, p.HasCollision(g))
	g.Set(5, 7, true)
	assert.True(t, p.HasCollision(g))
}

func TestTryOffsetZeroIsAlwaysApplied(t *testing.T) {
	g := tetris.NewGrid(10, 21)
	p := tetris.NewPiece(tetris.ShapeT, tetris.Point{X: 5, Y: 5})

	assert.True(t, p.TryOffset(0, 0, g))
	assert.Equal(t, tetris.Point{X: 5, Y: 5}, p.Anchor)
}

func TestTryOffsetBlockedByWall(t *testing.T) {
	g := tetris.NewGrid(10, 21)
	p := tetris.NewPiece(tetris.ShapeI, tetris.Point{X: 0, Y: 5})

	assert.False(t, p.TryOffset(-1, 0, g))
	assert.Equal(t, 0, p.Anchor.X)
}

func TestTryOffsetStopsAtLastFreeCell(t *testing.T) {
	g := tetris.NewGrid(10, 21)
	// A wall of occupied cells at y=2 under a vertical I at y=6.
	for x := 0; x < g.Width(); x++ {
		g.Set(x, 2, true)
	}
	p := tetris.NewPiece(tetris.ShapeI, tetris.Point{X: 5, Y: 6})

	// Requesting a 6-row drop slides the piece down to rest on the wall
	// instead of teleporting through it or discarding the progress.
	assert.False(t, p.TryOffset(0, -6, g))
	assert.Equal(t, 3, p.Anchor.Y)
}

func TestTryOffsetDiagonalSweep(t *testing.T) {
	g := tetris.NewGrid(10, 21)
	p := tetris.NewPiece(tetris.ShapeO, tetris.Point{X: 2, Y: 10})

	assert.True(t, p.TryOffset(3, -3, g))
	assert.Equal(t, tetris.Point{X: 5, Y: 7}, p.Anchor)
}

func TestTryRotateWrapsAndRestores(t *testing.T) {
	g := tetris.NewGrid(10, 21)
	p := tetris.NewPiece(tetris.ShapeT, tetris.Point{X: 5, Y: 10})
	original := p.WorldCells()

	for i := 1; i <= 4; i++ {
		assert.True(t, p.TryRotate(g))
		assert.Equal(t, i%4, p.Rotation)
	}
	assert.Equal(t, original, p.WorldCells())
}

func TestTryRotateBlockedRevertsRotation(t *testing.T) {
	g := tetris.NewGrid(10, 21)
	// Vertical I hugging the right wall: rotating would swing it across
	// x=6..9 -> fine; hug the left wall instead so rotation 1 leaves the
	// grid on the right at x=0..3 -> also fine. Use occupancy to block.
	p := tetris.NewPiece(tetris.ShapeI, tetris.Point{X: 5, Y: 10})
	g.Set(7, 10, true) // rotation 1 would cover (5..8,10)

	assert.False(t, p.TryRotate(g))
	assert.Equal(t, 0, p.Rotation)

	g.Set(7, 10, false)
	assert.True(t, p.TryRotate(g))
	assert.Equal(t, 1, p.Rotation)
}

func TestShapeOffsetsAreFourCells(t *testing.T) {
	for s := 0; s < tetris.NumShapes; s++ {
		shape := tetris.Shape(s)
		offsets := shape.Offsets()
		seen := map[tetris.Point]bool{}
		for _, o := range offsets {
			seen[o] = true
		}
		assert.Len(t, seen, 4, "shape %s should have four distinct cells", shape)
	}
}
