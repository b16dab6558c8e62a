package core

import (
	"errors"
	"fmt"
)

// ErrGeometry reports a play area that cannot be divided into whole cells.
var ErrGeometry = errors.New("invalid geometry")

// Cell is a grid-aligned square identified by its top-left corner in pixels.
type Cell struct {
	X, Y int
}

// Equal reports whether two cells occupy the same position.
func (c Cell) Equal(o Cell) bool { return c.X == o.X && c.Y == o.Y }

// CellsEqual compares cells by position only. Size is uniform across the
// play area so it never takes part in the comparison.
func CellsEqual(a, b Cell) bool { return a.Equal(b) }

// Geometry describes a square play area of WindowSize pixels split into cells
// of GridSize pixels.
type Geometry struct {
	WindowSize int
	GridSize   int
}

// DefaultGeometry returns the 800x800 play area with 20px cells.
func DefaultGeometry() Geometry {
	return Geometry{WindowSize: 800, GridSize: 20}
}

// Validate rejects sizes for which the far-edge test would be ill defined.
func (g Geometry) Validate() error {
	if g.GridSize <= 0 {
		return fmt.Errorf("%w: grid size %d must be positive", ErrGeometry, g.GridSize)
	}
	if g.WindowSize < g.GridSize {
		return fmt.Errorf("%w: window size %d smaller than grid size %d", ErrGeometry, g.WindowSize, g.GridSize)
	}
	if g.WindowSize%g.GridSize != 0 {
		return fmt.Errorf("%w: window size %d is not a multiple of grid size %d", ErrGeometry, g.WindowSize, g.GridSize)
	}
	return nil
}

// Cols returns the number of cells along one side of the play area.
func (g Geometry) Cols() int { return g.WindowSize / g.GridSize }

// Align floors arbitrary pixel coordinates to the cell containing them.
func (g Geometry) Align(x, y int) Cell {
	return Cell{X: floorTo(x, g.GridSize), Y: floorTo(y, g.GridSize)}
}

// Shift moves c by dx, dy whole cells.
func (g Geometry) Shift(c Cell, dx, dy int) Cell {
	return Cell{X: c.X + dx*g.GridSize, Y: c.Y + dy*g.GridSize}
}

// AtFarEdge reports whether c sits on the last column or the last row.
func (g Geometry) AtFarEdge(c Cell) bool {
	edge := g.WindowSize - g.GridSize
	return c.X == edge || c.Y == edge
}

// AtBoundary extends AtFarEdge with cells that have left the play area
// through the top or left side.
func (g Geometry) AtBoundary(c Cell) bool {
	return g.AtFarEdge(c) || c.X < 0 || c.Y < 0
}

// Contains reports whether c lies inside the play area.
func (g Geometry) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.WindowSize && c.Y < g.WindowSize
}

// Index returns the row-major cell index of c, or -1 when c is outside.
func (g Geometry) Index(c Cell) int {
	if !g.Contains(c) {
		return -1
	}
	cols := g.Cols()
	return (c.Y/g.GridSize)*cols + c.X/g.GridSize
}

func floorTo(v, step int) int {
	r := v % step
	if r < 0 {
		r += step
	}
	return v - r
}
