package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/osuushi/convexhull"
	"github.com/osuushi/convexhull/internal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the hull algorithms. Input on stdin should be newline separated
// points in the form "x y". Blank lines and lines starting with # are skipped.
// The hull is printed one point per line, counterclockwise around the ring
// starting from the leftmost point.
var (
	algorithm = kingpin.Flag("algorithm", "Hull algorithm to use.").Short('a').Default("graham").Enum("graham", "naive")
	pngPath   = kingpin.Flag("png", "Also draw the points and hull to this PNG file.").String()
	scale     = kingpin.Flag("scale", "Pixels per unit when drawing.").Default("20").Float64()
	verbose   = kingpin.Flag("verbose", "Trace the algorithm and dump the result.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(os.Stdin, os.Stdout, log); err != nil {
		log.WithError(err).Fatal("convex hull failed")
	}
}

func run(in io.Reader, out io.Writer, log *logrus.Logger) error {
	points, err := readPoints(in)
	if err != nil {
		return err
	}
	log.WithField("points", len(points)).Info("read input")

	// The scan reorders its input, and we still want the original for drawing
	input := make([]convexhull.Point, len(points))
	copy(input, points)

	options := convexhull.Options{Log: log}
	var hull []convexhull.Point
	switch *algorithm {
	case "naive":
		hull, err = convexhull.NaiveConvexHullWithOptions(points, options)
	default:
		hull, err = convexhull.GrahamScanWithOptions(points, options)
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"algorithm": *algorithm,
		"hull":      len(hull),
	}).Info("computed hull")

	if *verbose {
		pretty.Fprintf(out, "%# v\n", hull)
	}
	// The naive hull keeps edge points, and its last edge comes back toward
	// the anchor nearest first, so walk it as a ring.
	for _, p := range convexhull.NewHullPolygon(hull).Points {
		fmt.Fprintf(out, "%v %v\n", p.X(), p.Y())
	}

	if *pngPath != "" {
		c := internal.DrawHull(input, hull, *scale, false)
		if err := c.SavePNG(*pngPath); err != nil {
			return errors.Wrapf(err, "writing %s", *pngPath)
		}
		log.WithField("path", *pngPath).Info("wrote drawing")
	}
	return nil
}

func readPoints(in io.Reader) ([]convexhull.Point, error) {
	var points []convexhull.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, errors.Wrap(scanner.Err(), "reading input")
}

func parsePoint(line string) (convexhull.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return convexhull.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return convexhull.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return convexhull.Point{}, errors.Wrap(err, "y")
	}
	return convexhull.NewPoint(x, y)
}
