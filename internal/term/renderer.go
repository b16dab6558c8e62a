// Package term runs the game in a terminal through tcell.
package term

import (
	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/core"
	"gridsnake/internal/render"
)

// cellWidth is the number of terminal columns used per grid cell so cells
// look roughly square.
const cellWidth = 2

// Renderer draws the play area onto a tcell screen, one grid cell per two
// terminal columns. The last row and column, where the snake dies, are shaded.
type Renderer struct {
	screen tcell.Screen
	raster *render.Raster
	styles []tcell.Style
	edge   tcell.Style
}

// NewRenderer returns a Renderer for geo drawing onto screen.
func NewRenderer(screen tcell.Screen, geo core.Geometry) *Renderer {
	palette := render.DefaultPalette()
	styles := make([]tcell.Style, len(palette))
	for i, c := range palette {
		styles[i] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return &Renderer{
		screen: screen,
		raster: render.NewRaster(geo),
		styles: styles,
		edge:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// Render implements game.Renderer.
func (r *Renderer) Render(body []core.Cell, fruit core.Cell) error {
	r.raster.Paint(body, fruit)
	r.screen.Clear()

	cols := r.raster.Cols()
	cells := r.raster.Cells()
	for row := 0; row < cols; row++ {
		for col := 0; col < cols; col++ {
			class := cells[row*cols+col]
			switch {
			case class != render.ClassEmpty:
				r.fill(col, row, '█', r.styles[class])
			case row == cols-1 || col == cols-1:
				r.fill(col, row, '░', r.edge)
			}
		}
	}
	r.screen.Show()
	return nil
}

func (r *Renderer) fill(col, row int, ch rune, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(col*cellWidth+i, row, ch, nil, style)
	}
}
