package internal

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid. The rules are:
// 1. Every hull point is an input point.
// 2. The hull, as a ring, is a convex counterclockwise polygon.
// 3. Every input point is inside the hull or on its boundary.
// 4. No hull point is strictly inside a triangle of three other input points.
//
// Rule 4 is O(n⁴), so it is only checked when the input is small.
func AssertValidHull(t *testing.T, input []Point, hull []Point) {
	t.Helper()
	inputSet := NewPointSet(input...)
	for _, p := range hull {
		require.True(t, inputSet.Contains(p), "hull point %v is not an input point", p)
	}

	ring := NewHullPolygon(hull)
	require.True(t, ring.IsConvex(), "hull is not convex: %s", pretty.Sprint(ring.Points))
	require.True(t, ring.IsCCW(), "hull is not counterclockwise: %s", pretty.Sprint(ring.Points))

	for _, p := range input {
		require.True(t, ring.ContainsPoint(p), "input point %v is outside the hull %v", p, ring.Points)
	}

	if len(input) > 20 {
		return
	}
	canonical := CanonicalPoints(input)
	for _, p := range hull {
		for i := range canonical {
			for j := i + 1; j < len(canonical); j++ {
				for k := j + 1; k < len(canonical); k++ {
					if canonical[i] == p || canonical[j] == p || canonical[k] == p {
						continue
					}
					triangle := NewTriangle(canonical[i], canonical[j], canonical[k])
					require.False(t, triangle.Contains(p), "hull point %v is inside %v", p, triangle)
				}
			}
		}
	}
}
