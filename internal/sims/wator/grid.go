package wator

import "fmt"

// NeighborPattern selects which adjacency a neighbor query returns.
type NeighborPattern int

const (
	// Orthogonal is the 4-cell movement neighborhood.
	Orthogonal NeighborPattern = iota
	// Moore is the 8-cell search neighborhood including diagonals.
	Moore
)

var (
	orthogonalOffsets = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	mooreOffsets      = [8][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)

// Grid is a toroidal grid whose cells hold ordered occupant lists. Movement
// only proceeds into cells reported empty, so a cell normally holds at most
// one agent; Place deliberately skips that check so a newborn can share its
// parent's cell until the next tick separates them.
type Grid struct {
	w, h  int
	cells [][]*Agent
}

// NewGrid allocates an empty occupancy grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([][]*Agent, w*h)}
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Neighbors returns the wrapped coordinates adjacent to (x, y) under the
// given pattern, always exactly 4 or 8 of them regardless of grid edges.
func (g *Grid) Neighbors(x, y int, pattern NeighborPattern) [][2]int {
	var offsets [][2]int
	switch pattern {
	case Moore:
		offsets = mooreOffsets[:]
	default:
		offsets = orthogonalOffsets[:]
	}
	out := make([][2]int, len(offsets))
	for i, d := range offsets {
		nx, ny := g.Wrap(x+d[0], y+d[1])
		out[i] = [2]int{nx, ny}
	}
	return out
}

// IsEmpty reports whether the cell at (x, y) has no occupants.
func (g *Grid) IsEmpty(x, y int) bool {
	return len(g.cells[y*g.w+x]) == 0
}

// Occupants returns the ordered occupant list of the cell at (x, y).
func (g *Grid) Occupants(x, y int) []*Agent {
	return g.cells[y*g.w+x]
}

// Place appends the agent to the cell at (x, y). Emptiness is not checked.
func (g *Grid) Place(a *Agent, x, y int) {
	idx := y*g.w + x
	g.cells[idx] = append(g.cells[idx], a)
	a.x, a.y = x, y
}

// Move detaches the agent from its current cell and appends it to (x, y).
// Callers choose only empty destinations when exclusivity is required.
func (g *Grid) Move(a *Agent, x, y int) {
	g.detach(a)
	g.Place(a, x, y)
}

// Remove detaches the agent from its current cell.
func (g *Grid) Remove(a *Agent) {
	g.detach(a)
}

func (g *Grid) detach(a *Agent) {
	idx := a.y*g.w + a.x
	occ := g.cells[idx]
	for i, other := range occ {
		if other == a {
			g.cells[idx] = append(occ[:i], occ[i+1:]...)
			return
		}
	}
	// Reaching an agent that is not where it claims to be means the
	// scheduler's snapshot/skip discipline was violated. Fatal.
	panic(fmt.Sprintf("wator: internal inconsistency: agent %d not present at (%d,%d)", a.id, a.x, a.y))
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = nil
	}
}
