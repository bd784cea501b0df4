package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/floats/scalar"
)

const Tolerance = 1e-9

// Tolerance based equality. The hull algorithms themselves use exact
// comparisons, but anything that has been through trig (rotation, sampling in
// tests) needs some slack.
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Tolerance)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

type PointStack []Point

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop and Peek return false if the stack is empty
func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

// Element depth points from the top. PeekAt(0) is the same as Peek.
func (s *PointStack) PeekAt(depth int) (Point, bool) {
	i := len(*s) - 1 - depth
	if depth < 0 || i < 0 {
		return Point{}, false
	}
	return (*s)[i], true
}

// Swap out the top of the stack. Does nothing on an empty stack.
func (s *PointStack) ReplaceTop(p Point) {
	if len(*s) == 0 {
		return
	}
	(*s)[len(*s)-1] = p
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

// Bottom to top, with the top highlighted. Only meant for debugging.
func (s *PointStack) String() string {
	parts := make([]string, len(*s))
	for i, p := range *s {
		if i == len(*s)-1 {
			parts[i] = aurora.Green(p.String()).String()
		} else {
			parts[i] = p.String()
		}
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

// Points are comparable values, so a set is just a map keyed on them.
type PointSet map[Point]struct{}

func NewPointSet(points ...Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Members in the package's total order
func (set PointSet) Sorted() []Point {
	points := make([]Point, 0, len(set))
	for p := range set {
		points = append(points, p)
	}
	SortPoints(points)
	return points
}
