package entities

import (
	"github.com/lixenwraith/blocky-snake/core"
	"github.com/lixenwraith/blocky-snake/engine"
	"github.com/lixenwraith/blocky-snake/render"
)

// Frame is the static border around the interior
type Frame struct {
	height, width int
}

// NewFrame creates a border enclosing an interior of the given size
func NewFrame(height, width int) *Frame {
	return &Frame{height: height, width: width}
}

func (f *Frame) Update(*engine.World) engine.Status {
	return engine.StatusOK
}

func (f *Frame) Render(c *render.Canvas) {
	bottom, right := f.height+1, f.width+1
	for row := 0; row <= bottom; row++ {
		c.SetCell(core.Point{Row: row, Col: 0}, render.GlyphFrame, render.StyleFrame)
		c.SetCell(core.Point{Row: row, Col: right}, render.GlyphFrame, render.StyleFrame)
	}
	for col := 1; col < right; col++ {
		c.SetCell(core.Point{Row: 0, Col: col}, render.GlyphFrame, render.StyleFrame)
		c.SetCell(core.Point{Row: bottom, Col: col}, render.GlyphFrame, render.StyleFrame)
	}
}
