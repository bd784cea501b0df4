package internal

import "github.com/sirupsen/logrus"

// Graham scan, anchored on the leftmost point rather than the lowest.
//
// The points are sorted in place with SortByAngle, then swept once with a
// stack. For each point, look at the turn made by the top two stack points
// and the new point:
//
//   - Left: the turn is convex, so push the point.
//   - Straight: the new point is farther along the same line, so it replaces
//     the top of the stack.
//   - Right: the top of the stack is inside the hull. Pop it and look again.
//
// The stack, bottom to top, is the hull in counterclockwise order starting at
// the anchor. Only extreme vertices survive; points in the middle of a hull
// edge are dropped.
func GrahamScan(points []Point, options Options) []Point {
	log := options.logger()
	// Checked on a copy, so that a failed call leaves the input untouched.
	if distinct := len(CanonicalPoints(points)); distinct < 3 {
		throw(ErrInsufficientPoints, "graham scan needs at least 3 distinct points, got %d", distinct)
	}

	SortByAngle(points)

	// Duplicates would register as Straight turns against themselves, so drop
	// them. Equal points end up adjacent after sorting.
	sorted := make([]Point, 0, len(points))
	for i, p := range points {
		if i > 0 && (p == points[0] || p == points[i-1]) {
			continue
		}
		sorted = append(sorted, p)
	}

	return sweep(sorted, log)
}

// One pass over distinct points in SortByAngle order, anchor first. With only
// two points on the stack the turn tested is anchor->top->p, and sorting puts
// p Left of or Straight with top, so the anchor is never left alone. Input
// that was not sorted that way can empty the stack down to the anchor, which
// is reported as ErrHullUnderflow.
func sweep(sorted []Point, log logrus.FieldLogger) []Point {
	stack := make(PointStack, 0, len(sorted))
	stack.Push(sorted[0])
	stack.Push(sorted[1])

	for i := 2; i < len(sorted); {
		p := sorted[i]
		if stack.Len() < 2 {
			throw(ErrHullUnderflow, "stack %v cannot be tested against %v", stack.String(), p)
		}
		top, _ := stack.PeekAt(0)
		below, _ := stack.PeekAt(1)
		direction := below.Direction(top, p)

		entry := log.WithFields(logrus.Fields{
			"point":     p,
			"top":       top,
			"direction": direction,
			"depth":     stack.Len(),
		})

		switch direction {
		case Left:
			entry.Debug("push")
			stack.Push(p)
			i++
		case Straight:
			entry.Debug("replace")
			stack.ReplaceTop(p)
			i++
		case Right:
			entry.Debug("pop")
			stack.Pop()
		}
	}

	return []Point(stack)
}
