package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/blocky-snake/input"
	"github.com/lixenwraith/blocky-snake/render"
)

// GameState is the loop's lifecycle stage
type GameState int

const (
	StateRunning GameState = iota
	StateGameOver
	StateQuit
	StateTerminated
)

func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	case StateQuit:
		return "quit"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// Timing configures the two tick rates and the pause before termination
type Timing struct {
	RenderInterval time.Duration
	UpdateInterval time.Duration
	ExitPause      time.Duration
}

// Game drives one session: input, slow update tick, fast render tick
// All methods must be called from the loop goroutine
type Game struct {
	world    *World
	entities []Entity
	canvas   *render.Canvas
	clock    TimeProvider
	timing   Timing

	state      GameState
	lastRender time.Time
	lastUpdate time.Time
	endedAt    time.Time

	// Set by resize to render on the next tick regardless of cadence
	forceRender bool

	// Last non-OK update outcome
	outcome Status
}

// NewGame creates a running session; entities update and render in the given order
func NewGame(world *World, canvas *render.Canvas, clock TimeProvider, timing Timing, entities ...Entity) *Game {
	now := clock.Now()
	return &Game{
		world:      world,
		entities:   entities,
		canvas:     canvas,
		clock:      clock,
		timing:     timing,
		state:      StateRunning,
		lastRender: now,
		lastUpdate: now,
	}
}

// State returns the current lifecycle stage
func (g *Game) State() GameState {
	return g.state
}

// World returns the session state
func (g *Game) World() *World {
	return g.world
}

// Outcome returns the status that ended the game, StatusOK if it has not ended by collision
func (g *Game) Outcome() Status {
	return g.outcome
}

// HandleEvent applies one terminal event, only keys and resizes matter and only while running
func (g *Game) HandleEvent(ev tcell.Event) {
	if g.state != StateRunning {
		return
	}

	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := input.Translate(ev)
		switch cmd.Action {
		case input.ActionMove:
			g.world.Direction = cmd.Direction
		case input.ActionQuit:
			log.Printf("Quit requested")
			g.end(StateQuit, "Game exited")
		}

	case *tcell.EventResize:
		g.canvas.Sync()
		g.forceRender = true
	}
}

// Tick runs whichever of update and render are due and advances the end-of-game pause
func (g *Game) Tick() GameState {
	now := g.clock.Now()

	switch g.state {
	case StateRunning:
		if !now.Before(g.lastUpdate.Add(g.timing.UpdateInterval)) {
			g.lastUpdate = now
			g.update()
		}
		if g.state == StateRunning && (g.forceRender || !now.Before(g.lastRender.Add(g.timing.RenderInterval))) {
			g.lastRender = now
			g.forceRender = false
			g.render()
		}

	case StateGameOver, StateQuit:
		if !now.Before(g.endedAt.Add(g.timing.ExitPause)) {
			log.Printf("Session terminated after %s", g.state)
			g.state = StateTerminated
		}
	}

	return g.state
}

// NextDeadline returns how long the loop may wait before the next Tick has work
func (g *Game) NextDeadline() time.Duration {
	now := g.clock.Now()

	var next time.Time
	switch g.state {
	case StateRunning:
		if g.forceRender {
			return 0
		}
		next = g.lastUpdate.Add(g.timing.UpdateInterval)
		if r := g.lastRender.Add(g.timing.RenderInterval); r.Before(next) {
			next = r
		}
	case StateGameOver, StateQuit:
		next = g.endedAt.Add(g.timing.ExitPause)
	default:
		return 0
	}

	if d := next.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Run loops until the session terminates or the event source closes
// Each iteration handles at most one event, waking early when a tick is due
func (g *Game) Run(events <-chan tcell.Event) GameState {
	timer := time.NewTimer(g.NextDeadline())
	defer timer.Stop()

	for g.state != StateTerminated {
		select {
		case ev, ok := <-events:
			if !ok {
				log.Printf("Event source closed, terminating")
				g.state = StateTerminated
				continue
			}
			g.HandleEvent(ev)
		case <-timer.C:
		}

		g.Tick()
		timer.Reset(g.NextDeadline())
	}

	return g.state
}

func (g *Game) update() {
	for _, e := range g.entities {
		status := e.Update(g.world)
		if status.IsGameOver() {
			log.Printf("Game over: snake %s", status)
			g.outcome = status
			g.end(StateGameOver, fmt.Sprintf("Game Over: snake %s", status))
			return
		}
	}
}

func (g *Game) render() {
	g.canvas.Clear()
	for _, e := range g.entities {
		e.Render(g.canvas)
	}
	g.canvas.Show()
}

func (g *Game) end(state GameState, message string) {
	g.state = state
	g.endedAt = g.clock.Now()
	g.canvas.Message(message)
}
