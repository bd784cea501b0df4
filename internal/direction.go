package internal

import "fmt"

// Direction is the sign of the cross product of (anchor->p1) and
// (anchor->p2). Left is a counterclockwise turn.
type Direction int

const (
	Right Direction = iota - 1
	Straight
	Left
)

var directionLabels = [3]string{"Right", "Straight", "Left"}

func (d Direction) String() string {
	if d > Left || d < Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionLabels[int(d+1)]
}

func (d Direction) Opposite() Direction {
	return -d
}
