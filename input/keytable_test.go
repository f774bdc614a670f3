package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/blocky-snake/core"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Command
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Command{ActionMove, core.DirectionUp}},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Command{ActionMove, core.DirectionDown}},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Command{ActionMove, core.DirectionLeft}},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Command{ActionMove, core.DirectionRight}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Command{Action: ActionQuit}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Command{Action: ActionQuit}},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Command{Action: ActionQuit}},
		{"vi left", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), Command{ActionMove, core.DirectionLeft}},
		{"vi up", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), Command{ActionMove, core.DirectionUp}},
		{"alt-q ignored", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt), Command{}},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Command{}},
		{"unbound key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.ev); got != tt.want {
				t.Errorf("Translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
