package internal

import "github.com/sirupsen/logrus"

// The naive convex hull from "Algorithms in a Nutshell". Every point that lies
// strictly inside a triangle formed by three other points is interior; what is
// left over is the hull. That is O(n⁴) containment tests, so this is only
// useful for small inputs and as a reference for checking GrahamScan.
//
// Because containment is strict, points lying on a hull edge are kept. The
// result is sorted with SortByAngle.
func NaiveConvexHull(points []Point, options Options) []Point {
	log := options.logger()
	canonical := CanonicalPoints(points)
	if len(canonical) < 3 {
		throw(ErrInsufficientPoints, "naive hull needs at least 3 distinct points, got %d", len(canonical))
	}

	n := len(canonical)
	interior := make([]bool, n)
	// Triangles are canonicalized, so each unordered triple only needs to be
	// built once.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				triangle := NewTriangle(canonical[i], canonical[j], canonical[k])
				if triangle.IsDegenerate() {
					continue
				}
				for m := 0; m < n; m++ {
					if interior[m] || m == i || m == j || m == k {
						continue
					}
					if triangle.Contains(canonical[m]) {
						interior[m] = true
					}
				}
			}
		}
	}

	hull := make([]Point, 0, n)
	for i, p := range canonical {
		if !interior[i] {
			hull = append(hull, p)
		}
	}
	log.WithFields(logrus.Fields{
		"points":   n,
		"interior": n - len(hull),
		"hull":     len(hull),
	}).Debug("naive hull eliminated interior points")

	SortByAngle(hull)
	return hull
}
