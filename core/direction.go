package core

// Direction is the snake's heading
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// Offset returns the one-step grid delta for the direction
func (d Direction) Offset() Point {
	switch d {
	case DirectionUp:
		return Point{Row: -1}
	case DirectionDown:
		return Point{Row: 1}
	case DirectionLeft:
		return Point{Col: -1}
	case DirectionRight:
		return Point{Col: 1}
	}
	return Point{}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}
