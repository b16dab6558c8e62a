//go:build ebiten

package render

import (
	"image/color"

	"gridsnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a one-pixel-per-cell image and scales it up to the
// window, so every cell becomes a filled GridSize square.
type GridPainter struct {
	raster  *Raster
	palette []color.RGBA
	scale   int
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for geo.
func NewGridPainter(geo core.Geometry, palette []color.RGBA) *GridPainter {
	r := NewRaster(geo)
	cols := r.Cols()
	return &GridPainter{
		raster:  r,
		palette: palette,
		scale:   geo.GridSize,
		img:     ebiten.NewImage(cols, cols),
		buf:     make([]byte, 4*cols*cols),
	}
}

// Draw paints body and fruit onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, body []core.Cell, fruit core.Cell) {
	gp.raster.Paint(body, fruit)
	fillPaletteRGBA(gp.buf, gp.raster.Cells(), gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.scale), float64(gp.scale))
	dst.DrawImage(gp.img, op)
}
