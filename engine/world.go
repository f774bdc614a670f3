package engine

import "github.com/lixenwraith/blocky-snake/core"

// World is the per-session game state shared by all entities
// Owned by the loop goroutine, entities mutate it in place during Update
type World struct {
	Direction core.Direction
	Window    core.Bounds

	// Cherry is nil while no cherry is on the board
	Cherry *core.Point
}

// NewWorld creates a world heading right with no cherry placed
func NewWorld(window core.Bounds) *World {
	return &World{
		Direction: core.DirectionRight,
		Window:    window,
	}
}

// SetCherry publishes a cherry position
func (w *World) SetCherry(p core.Point) {
	w.Cherry = &p
}

// ClearCherry removes the cherry from the board
func (w *World) ClearCherry() {
	w.Cherry = nil
}

// CherryAt reports whether the cherry sits on p
func (w *World) CherryAt(p core.Point) bool {
	return w.Cherry != nil && *w.Cherry == p
}
