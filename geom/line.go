package geom

import "math"

// Line is the implicit form a*x + b*y + c = 0, with (a, b) normalized to
// unit length. By convention (a, b) is the direction of the segment that
// generated the line, rotated 90 degrees counterclockwise; this makes the
// sign of SignedDistance consistent with "left of the segment" tests
// elsewhere in the engine.
type Line struct {
	A, B, C float64
}

// ThroughPoints builds the line passing through lower and upper, oriented so
// that (a, b) is the CCW rotation of the lower->upper direction vector.
func ThroughPoints(lower, upper Point) Line {
	dx := upper.X - lower.X
	dy := upper.Y - lower.Y
	// CCW rotation of (dx, dy) is (-dy, dx).
	a, b := -dy, dx
	length := math.Hypot(a, b)
	if length < Epsilon {
		// Degenerate (coincident) points; fall back to a vertical line through
		// the point so callers don't divide by zero downstream.
		return Line{A: 1, B: 0, C: -lower.X}
	}
	a /= length
	b /= length
	c := -(a*lower.X + b*lower.Y)
	return Line{a, b, c}
}

// SignedDistance returns a*p.X + b*p.Y + c, which is positive on one side of
// the line and negative on the other. Since (a, b) is unit length, this is
// the true Euclidean signed distance.
func (l Line) SignedDistance(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// IsLeftOf reports whether p lies (strictly) on the positive side of the
// line, which by our CCW-rotation convention is the left side when walking
// from the line's lower point to its upper point.
func (l Line) IsLeftOf(p Point) bool {
	return l.SignedDistance(p) > Epsilon
}

// IsRightOf reports whether p lies (strictly) on the negative side.
func (l Line) IsRightOf(p Point) bool {
	return l.SignedDistance(p) < -Epsilon
}

// IsHorizontal reports whether the line has no X-extent sensitivity, i.e.
// walking along it never changes Y. Equivalently, a == 0.
func (l Line) IsHorizontal() bool {
	return Equal(l.A, 0)
}

// IsVertical reports whether the line is a vertical line, i.e. b == 0.
func (l Line) IsVertical() bool {
	return Equal(l.B, 0)
}

// SolveForX returns the X coordinate of the line at the given Y. Undefined
// (and will divide by near-zero) if the line is horizontal.
func (l Line) SolveForX(y float64) float64 {
	return -(l.B*y + l.C) / l.A
}

// SolveForY returns the Y coordinate of the line at the given X. Undefined
// if the line is vertical.
func (l Line) SolveForY(x float64) float64 {
	return -(l.A*x + l.C) / l.B
}
