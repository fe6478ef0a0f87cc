package wator

import "testing"

func TestEachAgentActivatesExactlyOncePerTick(t *testing.T) {
	world := emptyWorld(t, 6, 6, nil)
	for _, pos := range [][2]int{{0, 0}, {2, 0}, {4, 0}, {0, 3}, {2, 3}, {4, 3}} {
		world.spawn(KindFish, pos[0], pos[1], 50)
	}

	before := map[int]int{}
	world.sched.Each(func(a *Agent) { before[a.ID()] = a.Energy() })

	world.Step()

	world.sched.Each(func(a *Agent) {
		if got := a.Energy(); got != before[a.ID()]-1 {
			t.Fatalf("agent %d energy %d, expected exactly one decrement from %d",
				a.ID(), got, before[a.ID()])
		}
	})
}

func TestRemovedAgentIsNotActivated(t *testing.T) {
	world := emptyWorld(t, 3, 3, nil)
	doomed := world.spawn(KindFish, 0, 0, 5)
	survivor := world.spawn(KindFish, 2, 2, 5)

	world.kill(doomed)
	world.Step()

	if doomed.Energy() != 5 {
		t.Fatalf("removed agent must not activate, energy %d", doomed.Energy())
	}
	if survivor.Energy() != 4 {
		t.Fatalf("live agent should have activated, energy %d", survivor.Energy())
	}
	if world.sched.Alive(doomed) {
		t.Fatal("removed agent must stay removed")
	}
}

func TestEatenAgentIsSkippedMidTick(t *testing.T) {
	// A shark boxed in next to a single fish eats it no matter who
	// activates first; the fish must then never act again.
	world := emptyWorld(t, 2, 1, func(cfg *Config) {
		cfg.Params.SharkEnergyFromFish = 4
	})
	world.spawn(KindShark, 0, 0, 10)
	fish := world.spawn(KindFish, 1, 0, 1)

	// Run ticks until the fish is gone, then make sure its removal was
	// final: energy either untouched (eaten before acting) or decremented
	// exactly once (starved), never below zero through extra activations.
	for i := 0; i < 3 && world.sched.Alive(fish); i++ {
		world.Step()
	}
	if world.sched.Alive(fish) {
		t.Fatal("fish should have been eaten or starved within 3 ticks")
	}
	if fish.Energy() < 0 {
		t.Fatalf("removed fish must not keep activating, energy %d", fish.Energy())
	}
}

func TestDeathIsFinalAcrossTicks(t *testing.T) {
	world := emptyWorld(t, 8, 8, func(cfg *Config) {
		cfg.Params.Fish = 12
		cfg.Params.FishEnergy = 2
		cfg.Params.FishFertility = 99
	})
	world.Reset(0)

	world.Step()
	world.Step()

	if got := world.sched.Len(); got != 0 {
		t.Fatalf("all fish should starve within 2 ticks, %d left", got)
	}
	for tick := 0; tick < 3; tick++ {
		world.Step()
		for i, v := range world.Cells() {
			if v != CellEmpty {
				t.Fatalf("dead agents reappeared at cell %d on tick %d", i, tick)
			}
		}
	}
}

func TestAgentIDsUniqueAndMonotonic(t *testing.T) {
	world := emptyWorld(t, 4, 4, nil)
	a := world.spawn(KindFish, 0, 0, 5)
	b := world.spawn(KindShark, 1, 0, 5)
	if a.ID() == b.ID() {
		t.Fatal("agent ids must be unique")
	}
	if b.ID() <= a.ID() {
		t.Fatalf("ids should be assigned in increasing order, got %d then %d", a.ID(), b.ID())
	}

	world.sched.Clear()
	c := world.spawn(KindFish, 2, 0, 5)
	if c.ID() <= b.ID() {
		t.Fatalf("ids must keep increasing across clears, got %d after %d", c.ID(), b.ID())
	}
}
