package entities

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/blocky-snake/core"
	"github.com/lixenwraith/blocky-snake/engine"
	"github.com/lixenwraith/blocky-snake/render"
	"golang.org/x/exp/rand"
)

func newTestCanvas(t *testing.T, bounds core.Bounds) (tcell.SimulationScreen, *render.Canvas) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen, render.NewCanvas(screen, bounds)
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	mainc, _, _, _ := screen.GetContent(x, y)
	return mainc
}

func TestFrameDrawsFullBorder(t *testing.T) {
	bounds := core.Bounds{Height: 3, Width: 5, OriginX: 2, OriginY: 1}
	screen, canvas := newTestCanvas(t, bounds)

	frame := NewFrame(bounds.Height, bounds.Width)
	if status := frame.Update(engine.NewWorld(bounds)); status != engine.StatusOK {
		t.Errorf("Frame.Update() = %v, want ok", status)
	}

	canvas.Clear()
	frame.Render(canvas)
	canvas.Show()

	for row := 0; row < bounds.OuterHeight(); row++ {
		for col := 0; col < bounds.OuterWidth(); col++ {
			border := row == 0 || row == bounds.Height+1 || col == 0 || col == bounds.Width+1
			got := runeAt(screen, bounds.OriginX+col, bounds.OriginY+row)
			switch {
			case border && got != render.GlyphFrame:
				t.Errorf("border cell (%d,%d) = %q, want %q", row, col, got, render.GlyphFrame)
			case !border && got == render.GlyphFrame:
				t.Errorf("interior cell (%d,%d) drawn as frame", row, col)
			}
		}
	}
}

func TestSnakeAndCherryRender(t *testing.T) {
	bounds := core.Bounds{Height: 10, Width: 20}
	screen, canvas := newTestCanvas(t, bounds)

	snake := NewSnake(pts([2]int{2, 4}, [2]int{2, 3}, [2]int{2, 2}), engine.PolicyHalt)
	w := engine.NewWorld(bounds)
	w.SetCherry(core.Point{Row: 6, Col: 6})
	cherry := NewCherry(rand.New(rand.NewSource(1)))
	cherry.Update(w)

	canvas.Clear()
	snake.Render(canvas)
	cherry.Render(canvas)
	canvas.Show()

	if got := runeAt(screen, 4, 2); got != render.GlyphSnakeHead {
		t.Errorf("head = %q, want %q", got, render.GlyphSnakeHead)
	}
	for _, col := range []int{2, 3} {
		if got := runeAt(screen, col, 2); got != render.GlyphSnakeBody {
			t.Errorf("body at col %d = %q, want %q", col, got, render.GlyphSnakeBody)
		}
	}
	if got := runeAt(screen, 6, 6); got != render.GlyphCherry {
		t.Errorf("cherry = %q, want %q", got, render.GlyphCherry)
	}
}
