package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// A Triangle stores its vertices sorted by the total order on points, so every
// permutation of the same three points produces an identical (==) Triangle.
// Nothing stops the vertices from being collinear.
type Triangle struct {
	vertices [3]Point
}

func NewTriangle(p0, p1, p2 Point) Triangle {
	vertices := [3]Point{p0, p1, p2}
	SortPoints(vertices[:])
	return Triangle{vertices}
}

func (t Triangle) Vertices() [3]Point {
	return t.vertices
}

// Since the vertices are sorted on x first, the x range is just the first and
// last vertex.
func (t Triangle) RangeX() (min, max float64) {
	return t.vertices[0].X(), t.vertices[2].X()
}

func (t Triangle) RangeY() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range t.vertices {
		min = math.Min(min, v.Y())
		max = math.Max(max, v.Y())
	}
	return min, max
}

// Positive when the canonical vertex order is counterclockwise.
func (t Triangle) SignedArea() float64 {
	a, b, c := t.vertices[0], t.vertices[1], t.vertices[2]
	return b.Subtract(a).Cross(c.Subtract(a)) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) IsDegenerate() bool {
	a, b, c := t.vertices[0], t.vertices[1], t.vertices[2]
	return a.Direction(b, c) == Straight
}

// Barycentric weights (u, v) of p relative to the first vertex, where u runs
// toward the third vertex and v toward the second. See
// http://blackpawn.com/texts/pointinpoly/
//
// A zero area triangle has no barycentric frame (the denominator is zero), so
// that case is an error rather than a pair of infinities.
func (t Triangle) Barycentric(p Point) (u, v float64, err error) {
	origin := t.vertices[0]
	v0 := t.vertices[2].Subtract(origin)
	v1 := t.vertices[1].Subtract(origin)
	v2 := p.Subtract(origin)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return 0, 0, errors.Wrapf(ErrDegenerateTriangle, "%v", t)
	}
	u = (dot11*dot02 - dot01*dot12) / denom
	v = (dot00*dot12 - dot01*dot02) / denom
	return u, v, nil
}

// Strict containment: points on an edge or at a vertex are not contained. The
// hull algorithms depend on this, since a point lying exactly on a hull edge
// must survive as part of the hull. Degenerate triangles contain nothing.
func (t Triangle) Contains(p Point) bool {
	u, v, err := t.Barycentric(p)
	if err != nil {
		return false
	}
	return u > 0 && v > 0 && u+v < 1
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{%v %v %v}", t.vertices[0], t.vertices[1], t.vertices[2])
}
