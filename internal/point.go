package internal

import (
	"fmt"
	"math"
	"math/big"

	"github.com/pkg/errors"
	"github.com/quasilyte/gmath"
)

// Points are immutable values. Every coordinate enters the package through
// NewPoint (or PointFromVec, which calls it), so a Point can never hold NaN.
// Derived quantities like distance and angle are computed on demand.
type Point struct {
	x, y Number
}

func NewPoint(x, y float64) (Point, error) {
	nx, err := NewNumber(x)
	if err != nil {
		return Point{}, errors.Wrap(err, "x coordinate")
	}
	ny, err := NewNumber(y)
	if err != nil {
		return Point{}, errors.Wrap(err, "y coordinate")
	}
	return Point{nx, ny}, nil
}

// Like NewPoint, but panics with a HullError if either coordinate is NaN.
func MustPoint(x, y float64) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		throw(err, "invalid point (%v, %v)", x, y)
	}
	return p
}

func PointFromVec(v gmath.Vec) (Point, error) {
	return NewPoint(v.X, v.Y)
}

func (p Point) X() float64 { return p.x.Float() }
func (p Point) Y() float64 { return p.y.Float() }

func (p Point) Vec() gmath.Vec {
	return gmath.Vec{X: p.X(), Y: p.Y()}
}

func (p Point) Add(other Point) Point {
	return Point{p.x.Add(other.x), p.y.Add(other.y)}
}

func (p Point) Subtract(other Point) Point {
	return Point{p.x.Sub(other.x), p.y.Sub(other.y)}
}

func (p Point) ScalarMultiply(k float64) Point {
	factor := mustNumber(k)
	return Point{p.x.Mul(factor), p.y.Mul(factor)}
}

// The dot product is returned as a raw float, since it is not a coordinate.
func (p Point) Dot(other Point) float64 {
	return p.x.Mul(other.x).Add(p.y.Mul(other.y)).Float()
}

// Z component of the cross product of the two vectors
func (p Point) Cross(other Point) float64 {
	return p.x.Mul(other.y).Sub(p.y.Mul(other.x)).Float()
}

func (p Point) Distance(other Point) float64 {
	return other.Subtract(p).Magnitude()
}

func (p Point) Magnitude() float64 {
	return math.Hypot(p.X(), p.Y())
}

// Angle of the ray from p to other, measured counterclockwise from the
// positive x axis, in (-π, π]. The angle from a point to itself is defined to
// be zero rather than left to atan2's signed zero handling.
func (p Point) Angle(other Point) float64 {
	if p == other {
		return 0
	}
	d := other.Subtract(p)
	return math.Atan2(d.Y(), d.X())
}

// Sine and cosine of the point's angle from the origin. The origin itself
// gives (0, 1), matching an angle of zero.
func (p Point) SinCos() (sin, cos float64) {
	magnitude := p.Magnitude()
	if magnitude == 0 {
		return 0, 1
	}
	return p.Y() / magnitude, p.X() / magnitude
}

// Rotate counterclockwise about the origin by theta radians.
func (p Point) Rotate(theta float64) (Point, error) {
	return PointFromVec(p.Vec().Rotated(gmath.Rad(theta)))
}

// Lexicographic comparison on (x, y). This is the total order that every
// canonicalization in the package is built on.
func (p Point) Cmp(other Point) int {
	if c := p.x.Cmp(other.x); c != 0 {
		return c
	}
	return p.y.Cmp(other.y)
}

func (p Point) Less(other Point) bool {
	return p.Cmp(other) < 0
}

func (p Point) Equal(other Point) bool {
	return p.x.Equal(other.x) && p.y.Equal(other.y)
}

// Tolerance based equality, for tests and for callers who have done lossy
// math (rotation, mostly) on their points.
func (p Point) ApproxEqual(other Point) bool {
	return Equal(p.X(), other.X()) && Equal(p.Y(), other.Y())
}

// Bound on the rounding error of the floating point cross product, relative to
// the magnitude of its two terms. See Shewchuk, "Adaptive Precision
// Floating-Point Arithmetic and Fast Robust Geometric Predicates".
const orientationErrorBound = (3 + 16*0x1p-53) * 0x1p-53

// Orientation of the turn anchor->p1->p2, with p as the anchor. This is the
// exact sign of the cross product, so nearly collinear points get the same
// answer no matter which of them is the anchor.
func (p Point) Direction(p1, p2 Point) Direction {
	leftTerm := p1.x.Sub(p.x).Mul(p2.y.Sub(p.y))
	rightTerm := p1.y.Sub(p.y).Mul(p2.x.Sub(p.x))
	cross := leftTerm.Sub(rightTerm).Float()
	left, right := leftTerm.Float(), rightTerm.Float()
	bound := orientationErrorBound * (math.Abs(left) + math.Abs(right))
	switch {
	case cross > bound:
		return Left
	case -cross > bound:
		return Right
	case math.IsInf(left, 0) || math.IsInf(right, 0):
		return directionOf(cross)
	}
	return exactDirection(p, p1, p2)
}

func directionOf(cross float64) Direction {
	switch {
	case cross > 0:
		return Left
	case cross < 0:
		return Right
	}
	return Straight
}

// Slow path for when the rounded cross product is too close to zero to trust.
// Coordinates are finite here, so they convert to rationals exactly.
func exactDirection(p, p1, p2 Point) Direction {
	rat := func(n Number) *big.Rat {
		return new(big.Rat).SetFloat64(n.value)
	}
	dx1 := new(big.Rat).Sub(rat(p1.x), rat(p.x))
	dy1 := new(big.Rat).Sub(rat(p1.y), rat(p.y))
	dx2 := new(big.Rat).Sub(rat(p2.x), rat(p.x))
	dy2 := new(big.Rat).Sub(rat(p2.y), rat(p.y))
	cross := new(big.Rat).Sub(dx1.Mul(dx1, dy2), dy1.Mul(dy1, dx2))
	return Direction(cross.Sign())
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}
