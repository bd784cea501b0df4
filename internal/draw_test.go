package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawHull(t *testing.T) {
	points := Grid(4)
	hull := NaiveConvexHull(points, Options{})
	c := DrawHull(points, hull, 10, false)
	// 3 units at 10px per unit, plus padding on both sides
	assert.Equal(t, 30+drawPadding*2, c.Width())
	assert.Equal(t, 30+drawPadding*2, c.Height())

	// Center of the grid is inside the hull, and gets the fill color
	r, g, b, _ := c.Image().At(c.Width()/2, c.Height()/2).RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, g)
	assert.Zero(t, b)
}

func TestDrawHull_Labels(t *testing.T) {
	points := Wheel(5, 2)
	hull := GrahamScan(append([]Point(nil), points...), Options{})
	plain := DrawHull(points, hull, 20, false)
	labelled := DrawHull(points, hull, 20, true)
	assert.Equal(t, plain.Width(), labelled.Width())
	assert.NotEqual(t, plain.Image(), labelled.Image())
}

func TestDrawHull_Empty(t *testing.T) {
	c := DrawHull(nil, nil, 10, false)
	assert.Equal(t, drawPadding*2, c.Width())
}
