//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps the last rendered generation in a single RGBA image.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	on, off color.Color
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), on: on, off: off}
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
	return gp
}

// Render uploads a completed generation. It matches life.RenderFunc.
func (gp *GridPainter) Render(cells []uint8, w, h int) {
	if gp.img == nil || w != gp.w || h != gp.h || len(cells) != w*h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.on, gp.off)
	gp.img.WritePixels(gp.buf)
}

// Draw paints the last uploaded generation onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if gp.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
