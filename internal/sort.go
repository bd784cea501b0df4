package internal

import "sort"

// Sort by the lexicographic total order on (x, y).
func SortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Less(points[j])
	})
}

// Copy, sort and deduplicate a collection of points. Both hull algorithms go
// through this (or SortByAngle, which starts the same way), so their results
// never depend on the caller's iteration order.
func CanonicalPoints(points []Point) []Point {
	result := make([]Point, len(points))
	copy(result, points)
	SortPoints(result)

	unique := result[:0]
	for i, p := range result {
		if i > 0 && p == result[i-1] {
			continue
		}
		unique = append(unique, p)
	}
	return unique
}

// Sort points in place into angular order around an anchor, which is the
// leftmost (then lowest) point and always ends up first.
//
// Because the anchor is leftmost, every other point lies within a half turn of
// it, counterclockwise from straight down. That makes the turn direction a
// total order: p comes before q when anchor->p->q turns left. Points on the
// same ray from the anchor are ordered by the total order on points, which on
// a single ray means nearest first. Copies of the anchor are Straight against
// everything, so they land right after it.
//
// Collinearity is decided by Direction, the same test the Graham sweep uses.
func SortByAngle(points []Point) {
	if len(points) < 2 {
		return
	}
	SortPoints(points)
	anchor := points[0]
	rest := points[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		direction := anchor.Direction(rest[i], rest[j])
		if direction == Straight {
			return rest[i].Less(rest[j])
		}
		return direction == Left
	})
}
