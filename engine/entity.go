package engine

import "github.com/lixenwraith/blocky-snake/render"

// Entity is anything placed in the game that advances on update ticks and draws on render ticks
type Entity interface {
	Update(world *World) Status
	Render(canvas *render.Canvas)
}
