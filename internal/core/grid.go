package core

import "fmt"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Zero-sized grids are
// allowed and have an empty backing slice.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return x + y*g.W }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Population counts the non-zero cells.
func (g *ByteGrid) Population() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Wrap maps a coordinate that is at most one dimension out of range back into
// [0, dim). Anything further out is a caller bug.
func Wrap(coord, dim int) int {
	if coord < 0 {
		coord += dim
	} else if coord >= dim {
		coord -= dim
	}
	if coord < 0 || coord >= dim {
		panic(fmt.Sprintf("core.Wrap: coordinate out of range for dimension %d", dim))
	}
	return coord
}
