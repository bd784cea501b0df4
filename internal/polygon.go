package internal

import "math"

// An ordered ring of vertices. Hulls come out of both algorithms as
// counterclockwise polygons, so this is mostly here to check them.
type Polygon struct {
	Points []Point
}

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.Cross(next)
	}
	return area / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// A polygon is convex if it never turns right while walking its vertices in
// order. Collinear runs are allowed, since the naive algorithm keeps points on
// hull edges, but a polygon with no turns at all (every point on one line) is
// not convex.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	turned := false
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		afterNext := poly.Points[CircularIndex(i+2, n)]
		switch p.Direction(next, afterNext) {
		case Right:
			return false
		case Left:
			turned = true
		}
	}
	return turned
}

// Boundary inclusive containment for a convex counterclockwise polygon. The
// result is meaningless for anything else.
func (poly Polygon) ContainsPoint(p Point) bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		if vertex.Direction(next, p) == Right {
			return false
		}
	}
	return true
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Build the counterclockwise ring for a set of hull points.
//
// Angular order around the anchor is almost a ring already. The one exception
// is the last ray out of the anchor: points on it are sorted nearest first, but
// walking back to the anchor visits them farthest first, so that run gets
// reversed. The sweep never leaves more than one point on that ray, but the
// naive algorithm keeps every point on a hull edge.
func NewHullPolygon(hull []Point) Polygon {
	points := make([]Point, len(hull))
	copy(points, hull)
	SortByAngle(points)
	if len(points) < 3 {
		return Polygon{points}
	}

	anchor := points[0]
	last := len(points) - 1
	start := last
	for start > 1 && anchor.Direction(points[start-1], points[last]) == Straight {
		start--
	}
	for i, j := start, last; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return Polygon{points}
}
