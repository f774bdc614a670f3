package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/blocky-snake/core"
)

// Canvas draws into the playfield window of a tcell screen
// Cell coordinates are window-relative, the window origin is applied on write
type Canvas struct {
	screen tcell.Screen
	bounds core.Bounds
}

// NewCanvas creates a canvas for the window described by bounds
func NewCanvas(screen tcell.Screen, bounds core.Bounds) *Canvas {
	return &Canvas{
		screen: screen,
		bounds: bounds,
	}
}

// Bounds returns the window the canvas draws into
func (c *Canvas) Bounds() core.Bounds {
	return c.bounds
}

// Clear blanks the whole window including the frame ring
func (c *Canvas) Clear() {
	for row := 0; row < c.bounds.OuterHeight(); row++ {
		for col := 0; col < c.bounds.OuterWidth(); col++ {
			c.SetCell(core.Point{Row: row, Col: col}, ' ', StyleDefault)
		}
	}
}

// SetCell writes a rune at a window-relative cell, cells outside the window are dropped
func (c *Canvas) SetCell(p core.Point, r rune, style tcell.Style) {
	if p.Row < 0 || p.Row >= c.bounds.OuterHeight() || p.Col < 0 || p.Col >= c.bounds.OuterWidth() {
		return
	}
	c.screen.SetContent(c.bounds.OriginX+p.Col, c.bounds.OriginY+p.Row, r, nil, style)
}

// Message replaces the screen content with a single line of text centered on the window
func (c *Canvas) Message(text string) {
	c.screen.Clear()

	runes := []rune(text)
	row := c.bounds.OriginY + c.bounds.OuterHeight()/2
	col := c.bounds.OriginX + (c.bounds.OuterWidth()-len(runes))/2
	if col < 0 {
		col = 0
	}
	for i, r := range runes {
		c.screen.SetContent(col+i, row, r, nil, StyleMessage)
	}
	c.screen.Show()
}

// Show flushes pending cells to the terminal
func (c *Canvas) Show() {
	c.screen.Show()
}

// Sync forces a full redraw, used after resize
func (c *Canvas) Sync() {
	c.screen.Sync()
}
