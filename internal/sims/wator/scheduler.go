package wator

import "wa-tor/internal/core"

// Scheduler is the sole authority on which agents are live. Each tick it
// activates a shuffled snapshot of the roster taken at tick start: agents
// removed earlier in the tick are skipped when their turn arrives, and
// agents added mid-tick wait for the following tick. Every agent therefore
// activates at most once per tick and never after removal.
type Scheduler struct {
	rng *core.RNG

	// order preserves insertion order so that shuffling a seeded RNG over
	// it is reproducible; stale entries are compacted away at tick start.
	order  []*Agent
	live   map[int]*Agent
	nextID int
}

// NewScheduler creates an empty roster driven by the provided RNG.
func NewScheduler(rng *core.RNG) *Scheduler {
	return &Scheduler{rng: rng, live: make(map[int]*Agent)}
}

// Add assigns the agent a fresh id and inserts it into the roster.
func (s *Scheduler) Add(a *Agent) {
	a.id = s.nextID
	s.nextID++
	s.order = append(s.order, a)
	s.live[a.id] = a
}

// Remove takes the agent out of the roster. It never activates again.
func (s *Scheduler) Remove(a *Agent) {
	delete(s.live, a.id)
}

// Alive reports whether the agent is still part of the roster.
func (s *Scheduler) Alive(a *Agent) bool {
	_, ok := s.live[a.id]
	return ok
}

// Len returns the number of live agents.
func (s *Scheduler) Len() int { return len(s.live) }

// Each calls fn for every live agent, in roster insertion order.
func (s *Scheduler) Each(fn func(*Agent)) {
	for _, a := range s.order {
		if _, ok := s.live[a.id]; ok {
			fn(a)
		}
	}
}

// Tick activates every agent that was live at tick start, in a fresh random
// order drawn from the shared RNG.
func (s *Scheduler) Tick(w *World) {
	// Compact away agents that died on previous ticks and fix this tick's
	// activation snapshot before anything runs.
	kept := s.order[:0]
	for _, a := range s.order {
		if _, ok := s.live[a.id]; ok {
			kept = append(kept, a)
		}
	}
	s.order = kept

	snapshot := make([]*Agent, len(kept))
	copy(snapshot, kept)
	s.rng.Shuffle(len(snapshot), func(i, j int) {
		snapshot[i], snapshot[j] = snapshot[j], snapshot[i]
	})

	for _, a := range snapshot {
		if _, ok := s.live[a.id]; !ok {
			// Eaten or starved earlier this tick.
			continue
		}
		a.Step(w)
	}
}

// Clear empties the roster. Agent ids keep increasing across clears so a
// reference from before a reset can never alias a new agent.
func (s *Scheduler) Clear() {
	s.order = s.order[:0]
	s.live = make(map[int]*Agent)
}
