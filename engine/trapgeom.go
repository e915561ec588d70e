package engine

import (
	"math"

	"github.com/osuushi/seidel/geom"
)

// xValueForDirection returns the X coordinate where the trapezoid's
// boundary on dir.X meets its boundary on dir.Y. A nil (unbounded) side
// yields an infinite X so that overlap and intersection tests naturally
// treat an unbounded trapezoid as spanning the whole sweep line.
func (t *Triangulator) xValueForDirection(trap *Trapezoid, dir Direction) float64 {
	segIdx := trap.RightSeg
	if dir.X == Left {
		segIdx = trap.LeftSeg
	}
	if segIdx == NoSeg {
		if dir.X == Left {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	boundary := trap.LowerPoint
	if dir.Y == Up {
		boundary = trap.UpperPoint
	}
	if boundary == NoPoint {
		fatalf("cannot get x value for trapezoid %d with no boundary point", trap.Number)
	}

	seg := &t.segments[segIdx]
	boundaryY := t.points[boundary].Coord.Y
	if seg.Line.IsHorizontal() {
		return t.points[boundary].Coord.X
	}
	return seg.Line.SolveForX(boundaryY)
}

// nonzeroOverlapAbove reports whether bottom and top share more than a
// single point's worth of horizontal extent where they meet - the
// condition under which a split's new trapezoid keeps a neighbor.
func (t *Triangulator) nonzeroOverlapAbove(bottom, top *Trapezoid) bool {
	topMinX := t.xValueForDirection(top, Direction{Left, Down})
	topMaxX := t.xValueForDirection(top, Direction{Right, Down})
	bottomMinX := t.xValueForDirection(bottom, Direction{Left, Up})
	bottomMaxX := t.xValueForDirection(bottom, Direction{Right, Up})

	minX := math.Max(topMinX, bottomMinX)
	maxX := math.Min(topMaxX, bottomMaxX)
	return (maxX - minX) > geom.Epsilon
}

// bottomIntersectsSegment reports whether seg crosses the trapezoid's lower
// boundary strictly between its left and right sides. Used while walking
// upward through a chain of trapezoids a new segment passes through, to
// find which of up to two upper neighbors the segment continues into.
func (t *Triangulator) bottomIntersectsSegment(trap *Trapezoid, seg SegIndex) bool {
	if trap.LowerPoint == NoPoint {
		return false
	}
	s := &t.segments[seg]

	if trap.LowerPoint == s.Upper || trap.LowerPoint == s.Lower {
		if trap.LeftSeg != NoSeg && t.segments[trap.LeftSeg].Lower == trap.LowerPoint {
			return false
		}
		if trap.RightSeg != NoSeg && t.segments[trap.RightSeg].Lower == trap.LowerPoint {
			return false
		}
	}

	bottomY := t.points[trap.LowerPoint].Coord.Y
	x := s.Line.SolveForX(bottomY)
	p := geom.Point{X: x, Y: bottomY}

	leftOK := trap.LeftSeg == NoSeg || t.segments[trap.LeftSeg].Line.IsRightOf(p)
	rightOK := trap.RightSeg == NoSeg || t.segments[trap.RightSeg].Line.IsLeftOf(p)
	return leftOK && rightOK
}

// isInsideStructural reports whether a fully bounded trapezoid lies in the polygon's
// interior under the structural even-odd convention: both sides present,
// and the left segment points down (which for a valid simple single-winding
// polygon implies the right segment points up). classify.go generalizes
// this for holes and for the non-zero fill rule.
func (t *Triangulator) isInsideStructural(trap *Trapezoid) bool {
	if trap.LeftSeg == NoSeg || trap.RightSeg == NoSeg {
		return false
	}
	return t.segments[trap.LeftSeg].PointsDown()
}
