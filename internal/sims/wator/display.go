package wator

import "image/color"

var watorPalette = []color.RGBA{
	CellEmpty: {R: 69, G: 145, B: 196, A: 255},
	CellFish:  {R: 255, G: 230, B: 120, A: 255},
	CellShark: {R: 200, G: 50, B: 50, A: 255},
}

// Palette exposes the color palette used for rendering the world.
func (w *World) Palette() []color.RGBA {
	return watorPalette
}
