package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestNewGridStartsEmpty(t *testing.T) {
	g := tetris.NewGrid(10, 21)

	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 21, g.Height())
	assert.Len(t, g.Cells(), 10*21)
	for i, occupied := range g.Cells() {
		assert.False(t, occupied, "cell %d should start empty", i)
	}
}

func TestGridGetSet(t *testing.T) {
	g := tetris.NewGrid(10, 21)

	assert.True(t, g.Set(3, 5, true))
	occupied, ok := g.Get(3, 5)
	assert.True(t, ok)
	assert.True(t, occupied)

	assert.True(t, g.Set(3, 5, false))
	occupied, ok = g.Get(3, 5)
	assert.True(t, ok)
	assert.False(t, occupied)
}

func TestGridOutOfBounds(t *testing.T) {
	g := tetris.NewGrid(10, 21)

	tests := []struct {
		name string
		x, y int
	}{
		{"left of grid", -1, 0},
		{"right of grid", 10, 0},
		{"below floor", 0, -1},
		{"above ceiling", 0, 21},
		{"far corner", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occupied, ok := g.Get(tt.x, tt.y)
			assert.False(t, ok)
			assert.False(t, occupied)
			assert.False(t, g.Set(tt.x, tt.y, true))
		})
	}

	// Out-of-bounds writes must not have corrupted any cell.
	for _, occupied := range g.Cells() {
		assert.False(t, occupied)
	}
}

func fillRow(g *tetris.Grid, y int) {
	for x := 0; x < g.Width(); x++ {
		g.Set(x, y, true)
	}
}

func TestEliminateFullRowsNoneFull(t *testing.T) {
	g := tetris.NewGrid(10, 21)
	g.Set(0, 0, true)
	g.Set(9, 3, true)
	g.Set(4, 20, true)

	before := make([]bool, len(g.Cells()))
	copy(before, g.Cells())

	assert.Equal(t, 0, g.EliminateFullRows())
	assert.Equal(t, before, g.Cells())
}

func TestEliminateFullRowsAllFull(t *testing.T) {
	g := tetris.NewGrid(10, 21)
	for y := 0; y < g.Height(); y++ {
		fillRow(g, y)
	}

	assert.Equal(t, 21, g.EliminateFullRows())
	for _, occupied := range g.Cells() {
		assert.False(t, occupied)
	}
}

func TestEliminateSingleFullRowShiftsAboveDown(t *testing.T) {
	g := tetris.NewGrid(10, 21)
	fillRow(g, 2)
	g.Set(7, 3, true)
	g.Set(1, 5, true)
	g.Set(0, 0, true)

	assert.Equal(t, 1, g.EliminateFullRows())

	// Cells above the removed row shift down one; cells below stay put.
	occupied, _ := g.Get(7, 2)
	assert.True(t, occupied)
	occupied, _ = g.Get(1, 4)
	assert.True(t, occupied)
	occupied, _ = g.Get(0, 0)
	assert.True(t, occupied)

	// Old positions are vacated and the top row is empty.
	occupied, _ = g.Get(7, 3)
	assert.False(t, occupied)
	occupied, _ = g.Get(1, 5)
	assert.False(t, occupied)
	assert.False(t, g.RowOccupied(20))
}

func TestEliminateMultipleFullRows(t *testing.T) {
	tests := []struct {
		name     string
		fullRows []int
	}{
		{"adjacent bottom rows", []int{0, 1}},
		{"separated rows", []int{1, 4}},
		{"four rows", []int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tetris.NewGrid(10, 21)
			for _, y := range tt.fullRows {
				fillRow(g, y)
			}
			// A marker above everything, to verify the cumulative shift.
			g.Set(5, g.Height()-1, true)

			assert.Equal(t, len(tt.fullRows), g.EliminateFullRows())

			markerRow := g.Height() - 1 - len(tt.fullRows)
			occupied, _ := g.Get(5, markerRow)
			assert.True(t, occupied, "marker should shift down by one per removed row below it")

			total := 0
			for _, c := range g.Cells() {
				if c {
					total++
				}
			}
			assert.Equal(t, 1, total, "only the marker should remain")
		})
	}
}

func TestRowOccupied(t *testing.T) {
	g := tetris.NewGrid(10, 21)

	assert.False(t, g.RowOccupied(17))
	g.Set(2, 17, true)
	assert.True(t, g.RowOccupied(17))

	// Rows outside the grid are empty, not an error.
	assert.False(t, g.RowOccupied(-1))
	assert.False(t, g.RowOccupied(21))
}

func TestStampSkipsOutOfBoundsCells(t *testing.T) {
	g := tetris.NewGrid(10, 21)
	// Vertical I anchored at the top row pokes three cells above the edge.
	p := tetris.NewPiece(tetris.ShapeI, tetris.Point{X: 5, Y: 20})

	g.Stamp(&p, true)

	occupied, _ := g.Get(5, 20)
	assert.True(t, occupied)
	count := 0
	for _, c := range g.Cells() {
		if c {
			count++
		}
	}
	assert.Equal(t, 1, count, "cells above the top edge are skipped")

	g.Stamp(&p, false)
	occupied, _ = g.Get(5, 20)
	assert.False(t, occupied)
}

func TestNewGridPanicsOnBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 21}, {10, 0}, {-1, 5}} {
		t.Run(fmt.Sprintf("%dx%d", dims[0], dims[1]), func(t *testing.T) {
			assert.Panics(t, func() { tetris.NewGrid(dims[0], dims[1]) })
		})
	}
}
