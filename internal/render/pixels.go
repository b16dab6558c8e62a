package render

import "image/color"

// DefaultPalette colors each raster class: empty, body, head, fruit.
func DefaultPalette() []color.RGBA {
	return []color.RGBA{
		ClassEmpty: {R: 0, G: 0, B: 0, A: 255},
		ClassBody:  {R: 0, G: 170, B: 0, A: 255},
		ClassHead:  {R: 90, G: 255, B: 90, A: 255},
		ClassFruit: {R: 220, G: 40, B: 40, A: 255},
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
