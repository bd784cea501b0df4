package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/convexhull/internal/dbg"
)

// Padding around the shape so that points on the hull aren't drawn on the
// edge of the image
const drawPadding = 40

// Render the input points and their hull. Hull points are drawn larger, and
// the hull itself is outlined. When labels is set, each hull point is tagged
// with its dbg name.
func DrawHull(points, hull []Point, scale float64, labels bool) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, list := range [][]Point{points, hull} {
		for _, p := range list {
			minX = math.Min(minX, p.X())
			minY = math.Min(minY, p.Y())
			maxX = math.Max(maxX, p.X())
			maxY = math.Max(maxY, p.Y())
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	toCanvas := func(p Point) (float64, float64) {
		// Flip so the origin is at the bottom left
		x := drawPadding + scale*(p.X()-minX)
		y := float64(height) - (drawPadding + scale*(p.Y()-minY))
		return x, y
	}

	ring := NewHullPolygon(hull)
	if len(ring.Points) > 0 {
		c.SetLineWidth(2)
		c.MoveTo(toCanvas(ring.Points[0]))
		for _, p := range ring.Points[1:] {
			c.LineTo(toCanvas(p))
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range points {
		x, y := toCanvas(p)
		c.DrawCircle(x, y, 2)
		c.Fill()
	}

	c.SetRGB(1, 1, 0)
	for _, p := range hull {
		x, y := toCanvas(p)
		c.DrawCircle(x, y, 4)
		c.Fill()
		if labels {
			c.DrawStringAnchored(dbg.Name(p), x, y-8, 0.5, 0)
		}
	}
	return c
}

// This is for debugging purposes only. Prints the drawing to the terminal
// (iTerm only).
func dbgDraw(points, hull []Point, scale float64) {
	c := DrawHull(points, hull, scale, true)
	c.SavePNG("/tmp/hull.png")
	imgcat.CatFile("/tmp/hull.png", os.Stdout)
}
