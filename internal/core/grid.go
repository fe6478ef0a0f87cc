package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y) without wrapping.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// CopyFrom overwrites the grid contents with the provided cell values. The
// source must have exactly W*H entries.
func (g *ByteGrid) CopyFrom(cells []uint8) bool {
	if len(cells) != len(g.data) {
		return false
	}
	copy(g.data, cells)
	return true
}

// Count returns how many cells currently hold the given value.
func (g *ByteGrid) Count(value uint8) int {
	n := 0
	for _, v := range g.data {
		if v == value {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
