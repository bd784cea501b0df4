package internal

import (
	"embed"
	"log"
	"math"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into point clouds. This is not a full (or
// even correct) svg parser. Every <circle> is a point at its center, and its
// class says where the point sits relative to the hull:
//
//   - hull: an extreme vertex of the hull
//   - edge: on a hull edge, between two extreme vertices
//   - inside: strictly inside the hull
//
// If anything goes wrong, it bails out of the test binary.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type Fixture struct {
	Vertices []Point
	Edge     []Point
	Inside   []Point
}

// Every point in the fixture
func (f *Fixture) Points() []Point {
	var points []Point
	points = append(points, f.Vertices...)
	points = append(points, f.Edge...)
	points = append(points, f.Inside...)
	return points
}

func LoadFixture(name string) *Fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer file.Close()
	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	fixture := &Fixture{}
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circleEl.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circleEl.Attributes["cy"], err)
		}
		p := MustPoint(x, y)
		switch class := circleEl.Attributes["class"]; class {
		case "hull":
			fixture.Vertices = append(fixture.Vertices, p)
		case "edge":
			fixture.Edge = append(fixture.Edge, p)
		case "inside":
			fixture.Inside = append(fixture.Inside, p)
		default:
			log.Fatalf("Unknown point class %q in fixture %q", class, name)
		}
	}
	return fixture
}

// Some ad hoc code specified fixtures

// The n×n integer lattice with its lower left corner at the origin
func Grid(n int) []Point {
	var points []Point
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			points = append(points, MustPoint(float64(i), float64(j)))
		}
	}
	return points
}

// Every lattice point in the isoceles triangle with its apex at the origin,
// opening to the right, with base vertices (size, -size) and (size, size).
func LatticeTriangle(size int) []Point {
	var points []Point
	for x := 0; x <= size; x++ {
		for y := -x; y <= x; y++ {
			points = append(points, MustPoint(float64(x), float64(y)))
		}
	}
	return points
}

// Points on a circle, plus the center. Only the center is inside.
func Wheel(n int, radius float64) []Point {
	points := []Point{MustPoint(0, 0)}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, MustPoint(radius*math.Cos(angle), radius*math.Sin(angle)))
	}
	return points
}
