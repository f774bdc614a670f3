package entities

import (
	"github.com/lixenwraith/blocky-snake/core"
	"github.com/lixenwraith/blocky-snake/engine"
	"github.com/lixenwraith/blocky-snake/render"
	"golang.org/x/exp/rand"
)

// Cherry places food at a random interior cell whenever the board has none
type Cherry struct {
	pos *core.Point
	rng *rand.Rand
}

// NewCherry creates a cherry drawing positions from rng
func NewCherry(rng *rand.Rand) *Cherry {
	return &Cherry{rng: rng}
}

// Position returns the local copy of the cherry position, ok is false when none is placed
func (c *Cherry) Position() (core.Point, bool) {
	if c.pos == nil {
		return core.Point{}, false
	}
	return *c.pos, true
}

// Update samples a new position only when the world cherry is absent
func (c *Cherry) Update(w *engine.World) engine.Status {
	if w.Cherry != nil {
		p := *w.Cherry
		c.pos = &p
		return engine.StatusOK
	}

	p := w.Window.RandomInterior(c.rng)
	c.pos = &p
	w.SetCherry(p)
	return engine.StatusOK
}

func (c *Cherry) Render(canvas *render.Canvas) {
	if c.pos == nil {
		return
	}
	canvas.SetCell(*c.pos, render.GlyphCherry, render.StyleCherry)
}
