package core

import "golang.org/x/exp/rand"

// Bounds describes the playfield window on screen
// Interior cells are rows 1..Height and columns 1..Width, the ring around them is the frame
type Bounds struct {
	Height, Width    int
	OriginX, OriginY int
}

// OuterHeight is the window height including the frame rows
func (b Bounds) OuterHeight() int { return b.Height + 2 }

// OuterWidth is the window width including the frame columns
func (b Bounds) OuterWidth() int { return b.Width + 2 }

// Contains reports whether p lies in the interior
func (b Bounds) Contains(p Point) bool {
	return p.Row >= 1 && p.Row <= b.Height && p.Col >= 1 && p.Col <= b.Width
}

// RandomInterior samples an interior cell uniformly
func (b Bounds) RandomInterior(r *rand.Rand) Point {
	return Point{
		Row: 1 + r.Intn(b.Height),
		Col: 1 + r.Intn(b.Width),
	}
}
