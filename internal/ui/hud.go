//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Height is the pixel height of the status strip under the board.
const Height = 20

// Status is what the HUD shows each frame.
type Status interface {
	Generation() int
	Running() bool
}

// HUD renders the generation counter below the simulation view.
type HUD struct {
	status Status
	panel  *ebiten.Image
	width  int
	label  string
	shown  int
}

// NewHUD constructs a HUD strip of the given width.
func NewHUD(status Status, width int) *HUD {
	h := &HUD{status: status, width: width, shown: -1}
	if width > 0 {
		h.panel = ebiten.NewImage(width, Height)
	}
	return h
}

// Update caches the counter text when the generation changes.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if g := h.status.Generation(); g != h.shown {
		h.shown = g
		h.label = strconv.Itoa(g)
	}
}

// Draw paints the strip at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h == nil || h.panel == nil {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(h.panel, h.label, basicfont.Face7x13, 6, 14, color.RGBA{R: 180, G: 160, B: 120, A: 255})
	if !h.status.Running() {
		const paused = "paused"
		text.Draw(h.panel, paused, basicfont.Face7x13, h.width-6-7*len(paused), 14, color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
