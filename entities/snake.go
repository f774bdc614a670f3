package entities

import (
	"github.com/lixenwraith/blocky-snake/core"
	"github.com/lixenwraith/blocky-snake/engine"
	"github.com/lixenwraith/blocky-snake/render"
)

const defaultSnakeLength = 4

// DefaultSnakeBody is the starting body along the top row, head first and heading right
// Narrow playfields get a shorter snake so every cell starts inside
func DefaultSnakeBody(width int) []core.Point {
	n := min(defaultSnakeLength, max(width, 1))
	body := make([]core.Point, n)
	for i := range body {
		body[i] = core.Point{Row: 1, Col: n - i}
	}
	return body
}

// Snake is an ordered chain of cells, head first
type Snake struct {
	body   []core.Point
	policy engine.CollisionPolicy
}

// NewSnake creates a snake from body cells, head first; an empty body panics
func NewSnake(body []core.Point, policy engine.CollisionPolicy) *Snake {
	if len(body) == 0 {
		panic("entities: snake needs at least one cell")
	}
	b := make([]core.Point, len(body))
	copy(b, body)
	return &Snake{body: b, policy: policy}
}

// Body returns a copy of the cells, head first
func (s *Snake) Body() []core.Point {
	b := make([]core.Point, len(s.body))
	copy(b, s.body)
	return b
}

// Head returns the head cell
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the number of cells
func (s *Snake) Len() int {
	return len(s.body)
}

// Update advances the snake one cell in the world direction
func (s *Snake) Update(w *engine.World) engine.Status {
	head := s.body[0].Add(w.Direction.Offset())

	// Reversal into the neck: halt ends the game before the neck moves away,
	// reverse flips the heading and keeps going forward
	if len(s.body) > 1 && head == s.body[1] {
		if s.policy == engine.PolicyHalt {
			return engine.StatusSelfCollision
		}
		w.Direction = w.Direction.Opposite()
		head = s.body[0].Add(w.Direction.Offset())
	}

	if s.policy == engine.PolicyHalt && !w.Window.Contains(head) {
		return engine.StatusWallCollision
	}

	tail := s.body[len(s.body)-1]
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head

	if !w.Window.Contains(head) {
		return engine.StatusWallCollision
	}

	for _, p := range s.body[1:] {
		if p == head {
			return engine.StatusSelfCollision
		}
	}

	// Growth refills the vacated tail cell, so it is not free to move into
	eating := w.CherryAt(head)
	if eating && head == tail {
		return engine.StatusSelfCollision
	}

	if eating {
		s.body = append(s.body, tail)
		w.ClearCherry()
	}

	return engine.StatusOK
}

// Render draws the body then the head on top
func (s *Snake) Render(c *render.Canvas) {
	for i := len(s.body) - 1; i > 0; i-- {
		c.SetCell(s.body[i], render.GlyphSnakeBody, render.StyleSnakeBody)
	}
	c.SetCell(s.body[0], render.GlyphSnakeHead, render.StyleSnakeHead)
}
