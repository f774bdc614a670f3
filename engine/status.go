package engine

// Status is the outcome of an entity update
type Status int

const (
	StatusOK Status = iota
	StatusWallCollision
	StatusSelfCollision
)

// IsGameOver reports whether the status ends the session
func (s Status) IsGameOver() bool {
	return s == StatusWallCollision || s == StatusSelfCollision
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWallCollision:
		return "hit the wall"
	case StatusSelfCollision:
		return "bit itself"
	}
	return "unknown"
}
