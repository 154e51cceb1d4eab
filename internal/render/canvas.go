package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Canvas is an in-memory pixel surface with one pixel per cell.
type Canvas struct {
	img     *image.RGBA
	on, off color.Color
	frames  int
}

// NewCanvas allocates a w*h surface.
func NewCanvas(w, h int, on, off color.Color) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), on: on, off: off}
}

// Render clears the surface to the background colour and paints every live
// cell. Mismatched buffers are ignored.
func (c *Canvas) Render(cells []uint8, w, h int) {
	b := c.img.Bounds()
	if w != b.Dx() || h != b.Dy() || len(cells) != w*h {
		return
	}
	fillBinaryRGBA(c.img.Pix, cells, c.on, c.off)
	c.frames++
}

// Image returns the surface.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Frames returns how many generations have been rendered.
func (c *Canvas) Frames() int { return c.frames }

// WritePNG saves the surface scaled up by scale.
func (c *Canvas) WritePNG(path string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	out := c.img
	if scale > 1 {
		out = upscale(c.img, scale)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return f.Close()
}

func upscale(src *image.RGBA, scale int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	for y := 0; y < dst.Bounds().Dy(); y++ {
		for x := 0; x < dst.Bounds().Dx(); x++ {
			dst.SetRGBA(x, y, src.RGBAAt(x/scale, y/scale))
		}
	}
	return dst
}
