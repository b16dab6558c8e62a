//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a centered status banner on top of the play area.
type Overlay struct {
	face  font.Face
	pixel *ebiten.Image
	fg    color.Color
	bg    color.Color
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{
		face: basicfont.Face7x13,
		fg:   color.White,
		bg:   color.RGBA{R: 16, G: 16, B: 20, A: 200},
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw paints msg centered on screen over a translucent box.
func (o *Overlay) Draw(screen *ebiten.Image, msg string) {
	if msg == "" {
		return
	}
	const pad = 8
	bounds := text.BoundString(o.face, msg)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	w, h := bounds.Dx()+2*pad, bounds.Dy()+2*pad
	x, y := (sw-w)/2, (sh-h)/2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(o.bg)
	screen.DrawImage(o.pixel, op)

	text.Draw(screen, msg, o.face, x+pad-bounds.Min.X, y+pad-bounds.Min.Y, o.fg)
}
