package wator

import "wa-tor/internal/core"

// History holds the per-tick grid snapshots recorded while driving a world.
// Frames are read-only for consumers; the engine makes no further use of
// them after recording.
type History struct {
	Size   core.Size
	Frames []*core.ByteGrid
}

// Run drives the world for a fixed number of ticks. Each tick a snapshot of
// the current display is captured first, then the scheduler tick runs, so
// frame 0 is the seeded state before any activation.
func Run(w *World, ticks int) *History {
	h := &History{Size: w.Size()}
	if ticks <= 0 {
		return h
	}
	h.Frames = make([]*core.ByteGrid, 0, ticks)
	for t := 0; t < ticks; t++ {
		frame := core.NewByteGrid(h.Size.W, h.Size.H)
		frame.CopyFrom(w.Cells())
		h.Frames = append(h.Frames, frame)
		w.Step()
	}
	return h
}

// Census counts the fish and shark cells recorded in frame i. A cell that
// transiently holds two agents contributes its first occupant only.
func (h *History) Census(i int) (fish, sharks int) {
	frame := h.Frames[i]
	return frame.Count(CellFish), frame.Count(CellShark)
}
