package internal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPoints(t *testing.T) {
	input := []Point{
		MustPoint(2, 2),
		MustPoint(0, 1),
		MustPoint(2, 2),
		MustPoint(0, 0),
		MustPoint(0, 1),
	}
	original := append([]Point(nil), input...)

	assert.Equal(t, []Point{MustPoint(0, 0), MustPoint(0, 1), MustPoint(2, 2)}, CanonicalPoints(input))
	assert.Equal(t, original, input, "input should not be modified")
	assert.Empty(t, CanonicalPoints(nil))
}

func TestSortByAngle(t *testing.T) {
	t.Run("anchor first, then counterclockwise", func(t *testing.T) {
		points := []Point{
			MustPoint(0, 3),
			MustPoint(3, 3),
			MustPoint(-1, 1),
			MustPoint(3, 0),
			MustPoint(0, -1),
			MustPoint(2, 4),
		}
		SortByAngle(points)
		assert.Equal(t, []Point{
			MustPoint(-1, 1), // Leftmost
			MustPoint(0, -1),
			MustPoint(3, 0),
			MustPoint(3, 3),
			MustPoint(2, 4),
			MustPoint(0, 3),
		}, points)
	})

	t.Run("ties on a ray are nearest first", func(t *testing.T) {
		points := []Point{
			MustPoint(3, 3),
			MustPoint(0, 2),
			MustPoint(1, 1),
			MustPoint(0, 0),
			MustPoint(2, 2),
			MustPoint(0, 1),
			MustPoint(2, 0),
		}
		SortByAngle(points)
		assert.Equal(t, []Point{
			MustPoint(0, 0),
			MustPoint(2, 0),
			MustPoint(1, 1),
			MustPoint(2, 2),
			MustPoint(3, 3),
			MustPoint(0, 1),
			MustPoint(0, 2),
		}, points)
	})

	t.Run("independent of input order", func(t *testing.T) {
		expected := LatticeTriangle(4)
		SortByAngle(expected)
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 20; i++ {
			points := LatticeTriangle(4)
			rng.Shuffle(len(points), func(i, j int) {
				points[i], points[j] = points[j], points[i]
			})
			SortByAngle(points)
			assert.Equal(t, expected, points)
		}
	})

	t.Run("agrees with Direction", func(t *testing.T) {
		points := nearlyCollinearRay()
		SortByAngle(points)
		anchor := points[0]
		for i := 1; i < len(points); i++ {
			for j := i + 1; j < len(points); j++ {
				direction := anchor.Direction(points[i], points[j])
				assert.NotEqual(t, Right, direction, "%v sorted before %v", points[i], points[j])
				if direction == Straight {
					assert.True(t, points[i].Less(points[j]), "%v sorted before %v on one ray", points[i], points[j])
				}
			}
		}
	})

	t.Run("copies of the anchor come right after it", func(t *testing.T) {
		points := []Point{MustPoint(1, 1), MustPoint(0, 0), MustPoint(0, 1), MustPoint(0, 0)}
		SortByAngle(points)
		assert.Equal(t, []Point{MustPoint(0, 0), MustPoint(0, 0), MustPoint(1, 1), MustPoint(0, 1)}, points)
	})

	t.Run("tiny inputs", func(t *testing.T) {
		var empty []Point
		SortByAngle(empty)
		assert.Empty(t, empty)

		one := []Point{MustPoint(1, 1)}
		SortByAngle(one)
		assert.Equal(t, []Point{MustPoint(1, 1)}, one)
	})
}
