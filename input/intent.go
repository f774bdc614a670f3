package input

import "github.com/lixenwraith/blocky-snake/core"

// Action discriminates what a key asks the game to do
type Action uint8

const (
	ActionNone Action = iota
	ActionMove        // arrows, h/j/k/l
	ActionQuit        // q, Esc, Ctrl+C
)

// Command is a translated key press
type Command struct {
	Action    Action
	Direction core.Direction // valid for ActionMove
}
