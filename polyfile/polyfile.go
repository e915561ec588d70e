// Package polyfile reads and writes the three plain-text formats used to
// drive the triangulator from the command line and to inspect its output:
// .poly (input outlines), .tind (output triangles as point indices), and
// .tpts (output triangles as raw coordinates).
package polyfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/seidel/engine"
	"github.com/osuushi/seidel/geom"
	"github.com/pkg/errors"
)

// ReadPoly parses the .poly format: one "x y" pair per line, with outlines
// separated by a line consisting of a single "*". A trailing separator is
// optional, and an empty outline block (two separators with nothing, or
// only blank lines, between them) is skipped rather than producing a
// zero-length outline.
func ReadPoly(r io.Reader) (engine.OutlineList, error) {
	scanner := bufio.NewScanner(r)
	var outlines engine.OutlineList
	var cur engine.Outline

	flush := func() {
		if len(cur) > 0 {
			outlines = append(outlines, cur)
		}
		cur = nil
	}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "*" {
			flush()
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("polyfile: line %d: expected \"x y\", got %q", lineNum, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "polyfile: line %d: bad x coordinate", lineNum)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "polyfile: line %d: bad y coordinate", lineNum)
		}
		cur = append(cur, geom.Point{X: x, Y: y})
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "polyfile: reading .poly")
	}
	if len(outlines) == 0 {
		return nil, errors.New("polyfile: .poly file contained no outlines")
	}
	return outlines, nil
}

// WritePoly serializes outlines in the .poly format, separating outlines
// with a "*" line but omitting the final trailing separator.
func WritePoly(w io.Writer, outlines engine.OutlineList) error {
	bw := bufio.NewWriter(w)
	for i, outline := range outlines {
		if i > 0 {
			if _, err := fmt.Fprintln(bw, "*"); err != nil {
				return errors.Wrap(err, "polyfile: writing .poly")
			}
		}
		for _, p := range outline {
			if _, err := fmt.Fprintf(bw, "%g %g\n", p.X, p.Y); err != nil {
				return errors.Wrap(err, "polyfile: writing .poly")
			}
		}
	}
	return errors.Wrap(bw.Flush(), "polyfile: writing .poly")
}

// ReadTind parses the .tind format: one triangle per line, given as three
// 0-based point indices "i j k" referencing a points slice the caller
// already has (typically from a matching .poly file via Triangulator.Points).
func ReadTind(r io.Reader) ([]engine.Triangle, error) {
	scanner := bufio.NewScanner(r)
	var triangles []engine.Triangle
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, errors.Errorf("tind: line %d: expected \"i j k\", got %q", lineNum, line)
		}
		idx := [3]engine.PointIndex{}
		for k, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "tind: line %d: bad index", lineNum)
			}
			idx[k] = engine.PointIndex(n)
		}
		triangles = append(triangles, engine.Triangle{A: idx[0], B: idx[1], C: idx[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "tind: reading")
	}
	return triangles, nil
}

// WriteTind serializes triangles in the .tind format.
func WriteTind(w io.Writer, triangles []engine.Triangle) error {
	bw := bufio.NewWriter(w)
	for _, t := range triangles {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", t.A, t.B, t.C); err != nil {
			return errors.Wrap(err, "tind: writing")
		}
	}
	return errors.Wrap(bw.Flush(), "tind: writing")
}

// ReadTpts parses the .tpts format: one triangle per line, given as three
// raw "[x1 y1] [x2 y2] [x3 y3]" coordinate pairs rather than indices into
// any particular points array.
func ReadTpts(r io.Reader) ([][3]geom.Point, error) {
	scanner := bufio.NewScanner(r)
	var triangles [][3]geom.Point
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		line = strings.NewReplacer("[", "", "]", "").Replace(line)
		fields := strings.Fields(line)
		if len(fields) != 6 {
			return nil, errors.Errorf("tpts: line %d: expected 3 coordinate pairs, got %q", lineNum, line)
		}
		var tri [3]geom.Point
		for k := 0; k < 3; k++ {
			x, err := strconv.ParseFloat(fields[2*k], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "tpts: line %d: bad x coordinate", lineNum)
			}
			y, err := strconv.ParseFloat(fields[2*k+1], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "tpts: line %d: bad y coordinate", lineNum)
			}
			tri[k] = geom.Point{X: x, Y: y}
		}
		triangles = append(triangles, tri)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "tpts: reading")
	}
	return triangles, nil
}

// WriteTpts serializes triangles in the .tpts format, resolving indices
// against points.
func WriteTpts(w io.Writer, points []geom.Point, triangles []engine.Triangle) error {
	bw := bufio.NewWriter(w)
	for _, t := range triangles {
		a, b, c := points[t.A], points[t.B], points[t.C]
		if _, err := fmt.Fprintf(bw, "[%g %g] [%g %g] [%g %g]\n", a.X, a.Y, b.X, b.Y, c.X, c.Y); err != nil {
			return errors.Wrap(err, "tpts: writing")
		}
	}
	return errors.Wrap(bw.Flush(), "tpts: writing")
}
