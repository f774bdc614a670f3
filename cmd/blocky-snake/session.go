package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/blocky-snake/config"
	"github.com/lixenwraith/blocky-snake/engine"
	"github.com/lixenwraith/blocky-snake/entities"
	"github.com/lixenwraith/blocky-snake/render"
	"golang.org/x/exp/rand"
)

// newSession wires world, canvas and entities for one game
// Entity order is the update and render order: snake moves and eats before the cherry respawns
func newSession(cfg *config.Config, screen tcell.Screen, clock engine.TimeProvider) *engine.Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("New session: %dx%d at (%d,%d), collision=%s, seed=%d",
		cfg.Width, cfg.Height, cfg.OriginX, cfg.OriginY, cfg.Collision, seed)

	bounds := cfg.Bounds()
	world := engine.NewWorld(bounds)

	return engine.NewGame(
		world,
		render.NewCanvas(screen, bounds),
		clock,
		cfg.Timing(),
		entities.NewSnake(entities.DefaultSnakeBody(cfg.Width), cfg.Collision),
		entities.NewCherry(rand.New(rand.NewSource(seed))),
		entities.NewFrame(cfg.Height, cfg.Width),
	)
}
