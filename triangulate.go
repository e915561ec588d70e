// An asymptotically fast triangulation package for Go, implementing
// Seidel's randomized incremental algorithm.
//
// This package converts a set of simple polygons, which may be non-convex,
// may be disjoint, and may contain holes, into a set of triangles
// referencing only the original points. For lower-level access -
// trapezoid decomposition, fill rules, step-wise execution - see the
// engine subpackage.
package seidel

import (
	"github.com/osuushi/seidel/engine"
	"github.com/osuushi/seidel/geom"
)

type Point = geom.Point
type Triangle = engine.Triangle

// Triangulate takes a set of point lists and converts them into triangles.
//
// The polygons must be simple and non-intersecting. "Solid" polygons must
// give their points in counterclockwise order, while "holes" must be in
// clockwise order. The order of the polygons relative to each other is
// irrelevant.
//
// A false ok means either the input failed the simple-polygon check or an
// internal invariant was violated while building the trapezoid tree or
// triangulating; in both cases no triangles are returned.
func Triangulate(polygonPoints ...[]Point) (triangles []Triangle, ok bool) {
	outlines := make(engine.OutlineList, len(polygonPoints))
	for i, points := range polygonPoints {
		outlines[i] = engine.Outline(points)
	}

	t := engine.New(outlines)
	if !t.IsSimplePolygon() {
		return nil, false
	}
	if !t.BuildTrapezoidTree(nil) {
		return nil, false
	}
	return t.Triangulate(nil)
}
