package wator

// Kind enumerates the agent variants.
type Kind uint8

const (
	// KindFish is the prey variant.
	KindFish Kind = iota
	// KindShark is the predator variant.
	KindShark
)

// Agent is a single fish or shark. Identity is stable for the agent's
// lifetime; position is owned by the grid and updated only through its
// place/move operations.
type Agent struct {
	id   int
	kind Kind
	x, y int

	energy    int
	fertility int
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() int { return a.id }

// Kind returns the agent variant.
func (a *Agent) Kind() Kind { return a.kind }

// Energy returns the agent's remaining energy.
func (a *Agent) Energy() int { return a.energy }

// Fertility returns the agent's current fertility counter.
func (a *Agent) Fertility() int { return a.fertility }

// Pos returns the agent's current cell coordinates.
func (a *Agent) Pos() (int, int) { return a.x, a.y }

// Step runs the agent's single per-tick activation.
func (a *Agent) Step(w *World) {
	switch a.kind {
	case KindShark:
		a.sharkStep(w)
	default:
		a.fishStep(w)
	}
}

// fishStep: move into a random empty orthogonal neighbor, burn one energy,
// reproduce on reaching the fertility threshold, die when energy runs out.
func (a *Agent) fishStep(w *World) {
	a.moveToEmpty(w, Orthogonal)
	a.energy--
	a.reproduce(w, w.cfg.Params.FishFertility, w.cfg.Params.FishEnergy)
	if a.energy <= 0 {
		w.kill(a)
	}
}

// sharkStep: eat an adjacent fish when one exists, otherwise wander; the
// reference runs reproduction before the energy decrement, so we do too.
func (a *Agent) sharkStep(w *World) {
	a.moveAndEat(w)
	a.reproduce(w, w.cfg.Params.SharkFertility, w.cfg.Params.SharkEnergy)
	a.energy--
	if a.energy <= 0 {
		w.kill(a)
	}
}

func (a *Agent) moveToEmpty(w *World, pattern NeighborPattern) {
	candidates := a.emptyNeighbors(w, pattern)
	if len(candidates) == 0 {
		return
	}
	pick := candidates[w.rng.IntN(len(candidates))]
	w.grid.Move(a, pick[0], pick[1])
}

func (a *Agent) moveAndEat(w *World) {
	neighbors := w.grid.Neighbors(a.x, a.y, Moore)
	var prey [][2]int
	for _, pos := range neighbors {
		occ := w.grid.Occupants(pos[0], pos[1])
		// Only the first occupant counts for classification; a second,
		// transient occupant is invisible here.
		if len(occ) > 0 && occ[0].kind == KindFish {
			prey = append(prey, pos)
		}
	}
	if len(prey) == 0 {
		a.moveToEmpty(w, Moore)
		return
	}
	pick := prey[w.rng.IntN(len(prey))]
	fish := w.grid.Occupants(pick[0], pick[1])[0]
	w.kill(fish)
	w.grid.Move(a, pick[0], pick[1])
	a.energy += w.cfg.Params.SharkEnergyFromFish
}

// reproduce bumps the fertility counter and, on reaching the threshold,
// places one offspring at the parent's current cell. The cell is not
// required to be empty; the pair shares it until movement separates them.
// The newborn joins the roster but first activates on the following tick.
func (a *Agent) reproduce(w *World, threshold, initialEnergy int) {
	a.fertility++
	if a.fertility < threshold {
		return
	}
	w.spawn(a.kind, a.x, a.y, initialEnergy)
	a.fertility = 0
}

func (a *Agent) emptyNeighbors(w *World, pattern NeighborPattern) [][2]int {
	neighbors := w.grid.Neighbors(a.x, a.y, pattern)
	empty := neighbors[:0]
	for _, pos := range neighbors {
		if w.grid.IsEmpty(pos[0], pos[1]) {
			empty = append(empty, pos)
		}
	}
	return empty
}
