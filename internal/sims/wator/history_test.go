package wator

import (
	"slices"
	"testing"
)

func TestRunCapturesFrameBeforeTick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 8
	cfg.Height = 8
	cfg.Params.Fish = 6
	cfg.Params.Sharks = 2

	world := MustNew(cfg)
	world.Reset(0)
	seeded := append([]uint8(nil), world.Cells()...)

	history := Run(world, 3)

	if len(history.Frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(history.Frames))
	}
	if history.Size != world.Size() {
		t.Fatalf("history size %v does not match world %v", history.Size, world.Size())
	}
	if !slices.Equal(history.Frames[0].Cells(), seeded) {
		t.Fatal("frame 0 must be the seeded state before any activation")
	}

	fish, sharks := history.Census(0)
	if fish != 6 || sharks != 2 {
		t.Fatalf("expected frame 0 census 6/2, got %d/%d", fish, sharks)
	}
}

func TestRunZeroTicks(t *testing.T) {
	world := emptyWorld(t, 4, 4, nil)
	history := Run(world, 0)
	if len(history.Frames) != 0 {
		t.Fatalf("expected no frames, got %d", len(history.Frames))
	}
}

func TestHistoryFramesAreIndependentCopies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 6
	cfg.Height = 6
	cfg.Params.Fish = 8
	cfg.Params.Sharks = 3

	world := MustNew(cfg)
	world.Reset(0)

	history := Run(world, 2)
	frame := append([]uint8(nil), history.Frames[0].Cells()...)

	world.Step()
	world.Step()

	if !slices.Equal(frame, history.Frames[0].Cells()) {
		t.Fatal("recorded frames must not alias the live display buffer")
	}
}
