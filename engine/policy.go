package engine

import "fmt"

// CollisionPolicy selects how the snake reacts to reversing into its own neck
type CollisionPolicy int

const (
	// PolicyHalt ends the game on any wall or body hit, walls are checked before moving
	PolicyHalt CollisionPolicy = iota
	// PolicyReverse turns a reversal into the neck into continued forward motion,
	// walls are checked after moving
	PolicyReverse
)

func (p CollisionPolicy) String() string {
	switch p {
	case PolicyHalt:
		return "halt"
	case PolicyReverse:
		return "reverse"
	}
	return "unknown"
}

// ParseCollisionPolicy converts a policy name to its value
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "halt":
		return PolicyHalt, nil
	case "reverse":
		return PolicyReverse, nil
	}
	return PolicyHalt, fmt.Errorf("unknown collision policy %q", s)
}
