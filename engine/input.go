package engine

import "github.com/osuushi/seidel/geom"

// Outline is one closed polygon contour, given as an ordered point list; the
// last point implicitly connects back to the first.
type Outline []geom.Point

// OutlineList is a set of outlines that together describe a (possibly
// multi-contour, possibly holed) polygon. Outer boundaries and holes are
// distinguished only by winding (see OutlineWindings), not by any explicit
// nesting relationship.
type OutlineList []Outline

// buildInputModel concatenates every outline's points into a single array,
// emits one segment per consecutive pair (wrapping at the end of each
// outline), and records each segment's upper/lower and left/right endpoint
// classification plus each point's incident-segment adjacency. It also
// computes each outline's winding from the signed area sum.
//
// An outline with fewer than three vertices makes the whole input invalid;
// the triangulator is still fully constructed (so callers can inspect it),
// but IsSimplePolygon will report false without running the sweep.
func (t *Triangulator) buildInputModel(outlines OutlineList) {
	shapeOK := true
	for _, outline := range outlines {
		if len(outline) < 3 {
			shapeOK = false
		}
	}
	t.shapeValid = shapeOK

	numPoints := 0
	for _, outline := range outlines {
		numPoints += len(outline)
	}

	t.points = make([]PointRecord, numPoints)
	t.segments = make([]SegmentRecord, numPoints)
	t.outlineWindings = make([]Winding, 0, len(outlines))
	t.outlineRanges = make([][2]int, 0, len(outlines))

	base := 0
	for _, outline := range outlines {
		n := len(outline)
		t.outlineRanges = append(t.outlineRanges, [2]int{base, base + n})

		windingSum := 0.0
		for j := 0; j < n; j++ {
			idx := base + j
			t.points[idx].Coord = outline[j]
		}

		for j := 0; j < n; j++ {
			segIdx := SegIndex(base + j)
			aIdx := PointIndex(base + j)
			bIdx := PointIndex(base + (j+1)%n)

			a := t.points[aIdx].Coord
			b := t.points[bIdx].Coord
			windingSum += (b.X - a.X) * (b.Y + a.Y)

			seg := &t.segments[segIdx]
			if geom.VerticalRelation(a, b) == geom.Below {
				seg.Lower, seg.Upper = aIdx, bIdx
				seg.Upward = true
			} else {
				seg.Lower, seg.Upper = bIdx, aIdx
				seg.Upward = false
			}

			lowerCoord := t.points[seg.Lower].Coord
			upperCoord := t.points[seg.Upper].Coord
			lowerIsLeft := geom.HorizontalRelation(lowerCoord, upperCoord) == geom.Below
			if lowerIsLeft {
				seg.Left, seg.Right = seg.Lower, seg.Upper
			} else {
				seg.Left, seg.Right = seg.Upper, seg.Lower
			}
			seg.Line = geom.ThroughPoints(lowerCoord, upperCoord)

			// Record the signed 1-based segment index on each endpoint: positive
			// if this point is the segment's left endpoint, negative if it's the
			// right endpoint.
			signedIdx := int32(segIdx) + 1
			lowerSigned := signedIdx
			upperSigned := signedIdx
			if lowerIsLeft {
				upperSigned = -signedIdx
			} else {
				lowerSigned = -signedIdx
			}
			addAdjacency(&t.points[seg.Lower], lowerSigned)
			addAdjacency(&t.points[seg.Upper], upperSigned)
		}

		w := CCW
		if windingSum > 0 {
			w = CW
		}
		t.outlineWindings = append(t.outlineWindings, w)

		base += n
	}
}

func addAdjacency(p *PointRecord, signedSegIdx int32) {
	if p.Seg1 == 0 {
		p.Seg1 = signedSegIdx
	} else {
		p.Seg2 = signedSegIdx
	}
}
