//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"wa-tor/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type censusProvider interface {
	Census() (fish, sharks int)
}

type intParameterReader interface {
	IntParameter(key string) (int, bool)
}

// HUD renders a census readout and an adjustable parameter panel to the
// right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls []core.ParameterControl
	selected int
	setter   core.IntParameterSetter
	reader   intParameterReader
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	if reader, ok := sim.(intParameterReader); ok {
		h.reader = reader
	}
	return h
}

// Update handles parameter navigation and adjustment keys.
func (h *HUD) Update() {
	if h == nil || len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		h.adjust(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		h.adjust(-1)
	}
}

func (h *HUD) adjust(direction int) {
	if h.setter == nil || h.reader == nil {
		return
	}
	ctrl := h.controls[h.selected]
	current, ok := h.reader.IntParameter(ctrl.Key)
	if !ok {
		return
	}
	step := int(ctrl.Step)
	if step <= 0 {
		step = 1
	}
	next := current + direction*step
	if ctrl.HasMin && float64(next) < ctrl.Min {
		next = int(ctrl.Min)
	}
	if ctrl.HasMax && float64(next) > ctrl.Max {
		next = int(ctrl.Max)
	}
	h.setter.SetIntParameter(ctrl.Key, next)
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	line := 0
	put := func(s string, col color.Color) {
		line++
		text.Draw(h.panel, s, face, 8, line*14, col)
	}

	put(h.sim.Name(), color.White)
	if provider, ok := h.sim.(censusProvider); ok {
		fish, sharks := provider.Census()
		put(fmt.Sprintf("fish   %d", fish), color.RGBA{R: 255, G: 230, B: 120, A: 255})
		put(fmt.Sprintf("sharks %d", sharks), color.RGBA{R: 220, G: 90, B: 90, A: 255})
	}

	if len(h.controls) > 0 && h.reader != nil {
		put("", color.White)
		for i, ctrl := range h.controls {
			value, ok := h.reader.IntParameter(ctrl.Key)
			if !ok {
				continue
			}
			cursor := "  "
			col := color.Color(color.RGBA{R: 170, G: 170, B: 180, A: 255})
			if i == h.selected {
				cursor = "> "
				col = color.White
			}
			put(fmt.Sprintf("%s%-16s %d", cursor, ctrl.Label, value), col)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
