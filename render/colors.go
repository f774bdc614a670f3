package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for playfield glyphs
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFrame      = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbSnakeBody  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbCherry     = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbMessage    = tcell.NewRGBColor(255, 255, 255) // White
)

// Glyphs
const (
	GlyphFrame     = '#'
	GlyphSnakeHead = 'o'
	GlyphSnakeBody = '='
	GlyphCherry    = '@'
)

var (
	StyleDefault   = tcell.StyleDefault.Background(RgbBackground)
	StyleFrame     = StyleDefault.Foreground(RgbFrame)
	StyleSnakeHead = StyleDefault.Foreground(RgbSnakeHead).Bold(true)
	StyleSnakeBody = StyleDefault.Foreground(RgbSnakeBody)
	StyleCherry    = StyleDefault.Foreground(RgbCherry).Bold(true)
	StyleMessage   = StyleDefault.Foreground(RgbMessage).Bold(true)
)
