// Package geom provides the planar geometry primitives that the Seidel
// trapezoidation and triangulation engine is built on: points, implicit
// lines, the orientation predicate, and segment intersection tests.
//
// Every comparison in this package that involves a Y (or, for the
// horizontal variant, an X) value is lexicographically tie-broken so that
// no two distinct points ever compare equal. This "simulated rotation" is
// what lets the rest of the engine assume no two points share a Y
// coordinate, which is the central simplifying assumption of Seidel's
// algorithm.
package geom

import "math"

// Epsilon is the tolerance used for float comparisons throughout the
// package. Without it, nearly-horizontal or nearly-vertical segments would
// produce spuriously thin slivers from floating point noise.
const Epsilon = 1e-9

// Point is a planar point.
type Point struct {
	X, Y float64
}

// Vector is a displacement; it shares Point's representation because the
// algorithms here only ever need the difference of two points.
type Vector struct {
	X, Y float64
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

// Equal reports whether two floats are within Epsilon of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// SamePoint reports whether two points coincide within Epsilon on both axes.
// This is distinct from lexicographic Below/Above, which never considers two
// distinct points equal; SamePoint is used only for true coincidence checks
// on raw input, such as duplicate-vertex detection.
func SamePoint(p, q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Relation describes the result of a lexicographic point comparison.
type Relation int

const (
	Below Relation = iota
	Above
)

// VerticalRelation returns whether p lies below or above q, in the
// lexicographic sense used throughout the engine: p is Below q iff
// p.Y < q.Y, or p.Y == q.Y and p.X < q.X. Because ties are broken on X, no
// two distinct points are ever considered equal by this relation.
func VerticalRelation(p, q Point) Relation {
	if Equal(p.Y, q.Y) {
		if p.X < q.X {
			return Below
		}
		return Above
	}
	if p.Y < q.Y {
		return Below
	}
	return Above
}

// HorizontalRelation is VerticalRelation with the axes swapped: p is "Below"
// (i.e. to the Left) of q iff p.X < q.X, or p.X == q.X and p.Y < q.Y.
func HorizontalRelation(p, q Point) Relation {
	if Equal(p.X, q.X) {
		if p.Y < q.Y {
			return Below
		}
		return Above
	}
	if p.X < q.X {
		return Below
	}
	return Above
}

// IsBelow reports whether p is lexicographically below q.
func IsBelow(p, q Point) bool { return VerticalRelation(p, q) == Below }

// IsLeftOf reports whether p is lexicographically to the left of q.
func IsLeftOf(p, q Point) bool { return HorizontalRelation(p, q) == Below }

// Orientation computes the signed area of the triple (p1, p2, p3), scaled by
// two. Zero means the points are collinear; a positive value means the
// triple turns clockwise; a negative value means it turns
// counterclockwise.
func Orientation(p1, p2, p3 Point) float64 {
	return (p2.Y-p1.Y)*(p3.X-p2.X) - (p2.X-p1.X)*(p3.Y-p2.Y)
}

// Winding is the classification of an Orientation value; ClassifyOrientation
// uses Epsilon for it, since exact zero rarely occurs with floating point
// input.
type Winding int

const (
	Clockwise Winding = iota
	CounterClockwise
	Collinear
)

func ClassifyOrientation(val float64) Winding {
	if Equal(val, 0) {
		return Collinear
	}
	if val > 0 {
		return Clockwise
	}
	return CounterClockwise
}

// Centroid returns the average of the triangle's three vertices.
func Centroid(a, b, c Point) Point {
	return Point{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3}
}

// SignedTriangleArea returns twice the signed area of the triangle a, b, c;
// positive for CCW winding, negative for CW.
func SignedTriangleArea(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// SignedPolygonArea returns the signed area of the closed polygon described
// by points, positive for CCW winding, negative for CW.
func SignedPolygonArea(points []Point) float64 {
	area := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return area / 2
}
