// Package render turns game state into per-cell color classes and pixels.
package render

import "gridsnake/internal/core"

// Raster classes stored in the cell buffer.
const (
	ClassEmpty uint8 = iota
	ClassBody
	ClassHead
	ClassFruit
)

// Raster holds one byte per play-area cell.
type Raster struct {
	geo  core.Geometry
	grid *core.ByteGrid
}

// NewRaster allocates a raster sized for geo.
func NewRaster(geo core.Geometry) *Raster {
	cols := geo.Cols()
	return &Raster{geo: geo, grid: core.NewByteGrid(cols, cols)}
}

// Cols returns the raster width and height in cells.
func (r *Raster) Cols() int { return r.grid.W }

// Cells exposes the class buffer in row-major order.
func (r *Raster) Cells() []uint8 { return r.grid.Cells() }

// At returns the class stored for c, or ClassEmpty outside the play area.
func (r *Raster) At(c core.Cell) uint8 {
	idx := r.geo.Index(c)
	if idx < 0 {
		return ClassEmpty
	}
	return r.grid.Cells()[idx]
}

// Paint clears the raster and draws fruit, body and head in that order, so
// the snake covers a fruit spawned underneath it. Cells outside the play
// area are skipped.
func (r *Raster) Paint(body []core.Cell, fruit core.Cell) {
	r.grid.Clear()
	r.set(fruit, ClassFruit)
	for i, c := range body {
		class := ClassBody
		if i == len(body)-1 {
			class = ClassHead
		}
		r.set(c, class)
	}
}

func (r *Raster) set(c core.Cell, class uint8) {
	if !r.geo.Contains(c) {
		return
	}
	r.grid.Set(c.X/r.geo.GridSize, c.Y/r.geo.GridSize, class)
}
