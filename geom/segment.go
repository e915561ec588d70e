package geom

import "math"

// onSegment assumes p, a, and b are collinear and reports whether p lies
// within the closed bounding box of a and b. This is the standard
// complement to the orientation test for the collinear special case.
func onSegment(p, a, b Point) bool {
	return math.Min(a.X, b.X)-Epsilon <= p.X && p.X <= math.Max(a.X, b.X)+Epsilon &&
		math.Min(a.Y, b.Y)-Epsilon <= p.Y && p.Y <= math.Max(a.Y, b.Y)+Epsilon
}

// PointOnSegment reports whether p lies on the closed segment a-b.
func PointOnSegment(p, a, b Point) bool {
	if ClassifyOrientation(Orientation(a, b, p)) != Collinear {
		return false
	}
	return onSegment(p, a, b)
}

// SegmentsIntersect is the classic four-orientation segment intersection
// test. When excludeSharedEndpoint is true, segments that meet only at a
// shared endpoint (and otherwise lie on opposite sides of one another, as
// is legitimately the case for adjacent edges of an outline) are reported
// as not intersecting. When false, a shared endpoint counts as a genuine
// intersection.
func SegmentsIntersect(a1, a2, b1, b2 Point, excludeSharedEndpoint bool) bool {
	if excludeSharedEndpoint {
		switch {
		case SamePoint(a1, b1), SamePoint(a1, b2), SamePoint(a2, b1), SamePoint(a2, b2):
			return segmentsCrossIgnoringSharedEndpoint(a1, a2, b1, b2)
		}
	}

	o1 := ClassifyOrientation(Orientation(a1, a2, b1))
	o2 := ClassifyOrientation(Orientation(a1, a2, b2))
	o3 := ClassifyOrientation(Orientation(b1, b2, a1))
	o4 := ClassifyOrientation(Orientation(b1, b2, a2))

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear special cases: one endpoint lies on the other segment.
	if o1 == Collinear && onSegment(b1, a1, a2) {
		return true
	}
	if o2 == Collinear && onSegment(b2, a1, a2) {
		return true
	}
	if o3 == Collinear && onSegment(a1, b1, b2) {
		return true
	}
	if o4 == Collinear && onSegment(a2, b1, b2) {
		return true
	}

	return false
}

// segmentsCrossIgnoringSharedEndpoint handles the adjacent-edges case: two
// segments that legitimately share one endpoint are only considered
// intersecting if they also cross properly away from that shared point
// (i.e. one segment passes through the interior of the other), which would
// indicate a self-intersecting outline.
func segmentsCrossIgnoringSharedEndpoint(a1, a2, b1, b2 Point) bool {
	o1 := ClassifyOrientation(Orientation(a1, a2, b1))
	o2 := ClassifyOrientation(Orientation(a1, a2, b2))
	o3 := ClassifyOrientation(Orientation(b1, b2, a1))
	o4 := ClassifyOrientation(Orientation(b1, b2, a2))

	// Two segments that share an endpoint and are not collinear meet only
	// at that endpoint.
	if o1 != Collinear || o2 != Collinear || o3 != Collinear || o4 != Collinear {
		return false
	}

	// Collinear segments overlap beyond the shared vertex only when one has
	// an endpoint strictly inside the other; two collinear segments leaving
	// the shared vertex in opposite directions do not.
	strictlyInside := func(p, a, b Point) bool {
		return onSegment(p, a, b) && !SamePoint(p, a) && !SamePoint(p, b)
	}
	return strictlyInside(b1, a1, a2) || strictlyInside(b2, a1, a2) ||
		strictlyInside(a1, b1, b2) || strictlyInside(a2, b1, b2)
}

// RectIntersectsSegment reports whether the segment a-b crosses the
// axis-aligned rectangle spanned by min and max. When excludeBoundary is
// true, a hit on a rectangle edge is ignored only where one of the
// segment's endpoints coincides with that edge's corner; other contacts
// with the boundary still count.
func RectIntersectsSegment(min, max, a, b Point, excludeBoundary bool) bool {
	// Trivial accept: either endpoint is strictly inside.
	inside := func(p Point) bool {
		return p.X > min.X+Epsilon && p.X < max.X-Epsilon &&
			p.Y > min.Y+Epsilon && p.Y < max.Y-Epsilon
	}
	if inside(a) || inside(b) {
		return true
	}

	corners := [4]Point{
		{min.X, min.Y}, {max.X, min.Y}, {max.X, max.Y}, {min.X, max.Y},
	}
	for i := 0; i < 4; i++ {
		c1 := corners[i]
		c2 := corners[(i+1)%4]
		if SegmentsIntersect(a, b, c1, c2, false) {
			if excludeBoundary && (SamePoint(a, c1) || SamePoint(a, c2) || SamePoint(b, c1) || SamePoint(b, c2)) {
				continue
			}
			return true
		}
	}
	return false
}
