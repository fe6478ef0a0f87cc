package wator

import (
	"wa-tor/internal/core"
)

// Cell classification values recorded in the display buffer.
const (
	CellEmpty uint8 = iota
	CellFish
	CellShark
)

// World bundles the grid, the roster, the shared RNG and the display buffer
// into one simulation context implementing core.Sim.
type World struct {
	cfg Config

	w, h int

	grid  *Grid
	sched *Scheduler
	rng   *core.RNG

	display []uint8
}

// New returns a Wa-Tor simulation with the provided dimensions using
// default populations and rules.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Wa-Tor world configured from the provided options.
// It fails when the configured population cannot fit on the grid; the
// reference implementation would re-sample empty cells forever.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := core.NewRNG(cfg.Seed)
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		grid:    NewGrid(cfg.Width, cfg.Height),
		sched:   NewScheduler(rng),
		rng:     rng,
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	return w, nil
}

// MustNew is NewWithConfig for registry factories and tests with known-good
// configurations.
func MustNew(cfg Config) *World {
	w, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "wator" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer: one classification byte per
// cell, derived from the first occupant only.
func (w *World) Cells() []uint8 { return w.display }

// Census returns the live fish and shark counts.
func (w *World) Census() (fish, sharks int) {
	w.sched.Each(func(a *Agent) {
		if a.kind == KindShark {
			sharks++
		} else {
			fish++
		}
	})
	return fish, sharks
}

// Reset seeds the world using deterministic randomness: the configured fish
// and shark counts are placed on uniformly chosen empty cells.
func (w *World) Reset(seed int64) {
	if w.w == 0 || w.h == 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.grid.Clear()
	w.sched.Clear()

	for i := 0; i < w.cfg.Params.Fish; i++ {
		x, y := w.findEmptyCell()
		w.spawn(KindFish, x, y, w.cfg.Params.FishEnergy)
	}
	for i := 0; i < w.cfg.Params.Sharks; i++ {
		x, y := w.findEmptyCell()
		w.spawn(KindShark, x, y, w.cfg.Params.SharkEnergy)
	}
	w.rebuildDisplay()
}

// Step advances the simulation by one tick.
func (w *World) Step() {
	if w.w == 0 || w.h == 0 {
		return
	}
	w.sched.Tick(w)
	w.rebuildDisplay()
}

// spawn creates an agent, registers it with the scheduler and places it on
// the grid. Occupancy of the target cell is not checked.
func (w *World) spawn(kind Kind, x, y, energy int) *Agent {
	a := &Agent{kind: kind, energy: energy}
	w.sched.Add(a)
	w.grid.Place(a, x, y)
	return a
}

// kill removes the agent from grid and roster atomically; no reference to
// it may be used afterwards.
func (w *World) kill(a *Agent) {
	w.grid.Remove(a)
	w.sched.Remove(a)
}

// findEmptyCell re-samples uniform coordinates until it hits an empty cell.
// Termination is guaranteed by the capacity check in NewWithConfig.
func (w *World) findEmptyCell() (int, int) {
	for {
		x := w.rng.IntN(w.w)
		y := w.rng.IntN(w.h)
		if w.grid.IsEmpty(x, y) {
			return x, y
		}
	}
}

func (w *World) rebuildDisplay() {
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			occ := w.grid.Occupants(x, y)
			switch {
			case len(occ) == 0:
				w.display[idx] = CellEmpty
			case occ[0].kind == KindShark:
				w.display[idx] = CellShark
			default:
				w.display[idx] = CellFish
			}
		}
	}
}

func init() {
	core.Register("wator", func(cfg map[string]string) core.Sim {
		return MustNew(FromMap(cfg))
	})
}
