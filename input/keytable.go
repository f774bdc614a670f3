package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/blocky-snake/core"
)

// KeyTable maps keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Command

	// Plain rune bindings
	Runes map[rune]Command
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyUp:     {ActionMove, core.DirectionUp},
			tcell.KeyDown:   {ActionMove, core.DirectionDown},
			tcell.KeyLeft:   {ActionMove, core.DirectionLeft},
			tcell.KeyRight:  {ActionMove, core.DirectionRight},
			tcell.KeyEscape: {Action: ActionQuit},
			tcell.KeyCtrlC:  {Action: ActionQuit},
		},

		Runes: map[rune]Command{
			'q': {Action: ActionQuit},
			'h': {ActionMove, core.DirectionLeft},
			'j': {ActionMove, core.DirectionDown},
			'k': {ActionMove, core.DirectionUp},
			'l': {ActionMove, core.DirectionRight},
		},
	}
}

var defaultTable = DefaultKeyTable()

// Lookup translates a key event against the table, unknown keys yield ActionNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyRune {
		// Modified runes (Alt+q etc.) are not bindings
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return Command{}
		}
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Translate looks the event up in the default table
func Translate(ev *tcell.EventKey) Command {
	return defaultTable.Lookup(ev)
}
