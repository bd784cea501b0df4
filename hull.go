// Convex hulls of planar point sets.
//
// This package provides two independent algorithms for the same problem: an
// exhaustive O(n⁴) elimination of interior points, which is slow but easy to
// trust, and an O(n log n) Graham scan. Both are built on a Point type whose
// coordinates can never be NaN.
package convexhull

import (
	"github.com/osuushi/convexhull/internal"
)

type Number = internal.Number
type Point = internal.Point
type Triangle = internal.Triangle
type Polygon = internal.Polygon
type Direction = internal.Direction
type Options = internal.Options

const (
	Left     = internal.Left
	Right    = internal.Right
	Straight = internal.Straight
)

var (
	ErrNotANumber         = internal.ErrNotANumber
	ErrInsufficientPoints = internal.ErrInsufficientPoints
	ErrHullUnderflow      = internal.ErrHullUnderflow
	ErrDegenerateTriangle = internal.ErrDegenerateTriangle
)

func NewNumber(v float64) (Number, error) {
	return internal.NewNumber(v)
}

// Create a point, failing if either coordinate is NaN.
func NewPoint(x, y float64) (Point, error) {
	return internal.NewPoint(x, y)
}

// Like NewPoint, but panics on NaN. Handy for literals.
func MustPoint(x, y float64) Point {
	return internal.MustPoint(x, y)
}

func NewTriangle(p0, p1, p2 Point) Triangle {
	return internal.NewTriangle(p0, p1, p2)
}

// Build the counterclockwise polygon described by a hull, as returned by
// either algorithm.
func NewHullPolygon(hull []Point) Polygon {
	return internal.NewHullPolygon(hull)
}

// Compute the hull by eliminating every point that is strictly inside a
// triangle of three other points. Duplicate points are ignored. Points lying on
// a hull edge are part of the result.
//
// This takes O(n⁴) time. Use it for small inputs, or to check GrahamScan.
func NaiveConvexHull(points []Point) ([]Point, error) {
	return NaiveConvexHullWithOptions(points, Options{})
}

func NaiveConvexHullWithOptions(points []Point, options Options) (result []Point, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.NaiveConvexHull(points, options), nil
}

// Compute the hull with a Graham scan, in O(n log n) time. The input slice is
// reordered. The result is the hull's extreme vertices in counterclockwise
// order, starting from the leftmost (then lowest) point.
func GrahamScan(points []Point) ([]Point, error) {
	return GrahamScanWithOptions(points, Options{})
}

func GrahamScanWithOptions(points []Point, options Options) (result []Point, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.GrahamScan(points, options), nil
}
