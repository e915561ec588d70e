package engine

import (
	"sort"

	"github.com/google/btree"
	"github.com/osuushi/seidel/geom"
)

// eventKind distinguishes the two sweep events each segment contributes.
type eventKind int

const (
	leaveEvent eventKind = iota
	enterEvent
)

// sweepEvent is one entry in the Shamos-Hoey event queue.
type sweepEvent struct {
	point PointIndex
	seg   SegIndex
	kind  eventKind
}

// eventOrder provides the total order the event queue is kept in: primarily
// by the event point's horizontal relation (left to right), with "leaves"
// preceding "enters" at a shared point (since any point shared by two
// segments must be a true polygon vertex where one edge ends and the next
// begins), and finally by segment index so that no two distinct events ever
// compare equal in the backing B-tree.
type eventOrder struct {
	points []PointRecord
}

func (o eventOrder) less(a, b sweepEvent) bool {
	pa := o.points[a.point].Coord
	pb := o.points[b.point].Coord
	if geom.HorizontalRelation(pa, pb) == geom.Below && !geom.SamePoint(pa, pb) {
		return true
	}
	if geom.HorizontalRelation(pb, pa) == geom.Below && !geom.SamePoint(pa, pb) {
		return false
	}
	if a.kind != b.kind {
		return a.kind == leaveEvent
	}
	return a.seg < b.seg
}

// checkSimplePolygon runs the Shamos-Hoey sweep to reject self-intersecting
// or duplicate-point input, and returns whether the polygon is simple.
//
// The event queue is a B-tree so that the sweep pops strictly-increasing
// events in O(log n) per step; the status structure (segments crossing the
// sweep line) is kept as a slice in sweep order, re-positioned with a
// binary search on each insert, which is adequate for the segment counts
// this engine targets and mirrors how the structure is commonly implemented
// in plane-sweep packages: a full self-balancing status tree is reserved
// for workloads where n is large enough that the O(n) shift on insert/delete
// actually dominates.
func (t *Triangulator) checkSimplePolygon() bool {
	if !t.shapeValid {
		return false
	}
	if t.hasInvalidDuplicatePoints() {
		return false
	}

	order := eventOrder{points: t.points}
	queue := btree.New(32)

	for i := range t.segments {
		seg := &t.segments[i]
		queue.ReplaceOrInsert(btreeItem{sweepEvent{seg.Left, SegIndex(i), enterEvent}, order})
		queue.ReplaceOrInsert(btreeItem{sweepEvent{seg.Right, SegIndex(i), leaveEvent}, order})
	}

	var status []SegIndex

	shares := func(a, b SegIndex) bool {
		sa, sb := &t.segments[a], &t.segments[b]
		return sa.Upper == sb.Upper || sa.Upper == sb.Lower || sa.Lower == sb.Upper || sa.Lower == sb.Lower
	}

	intersects := func(a, b SegIndex) bool {
		sa, sb := &t.segments[a], &t.segments[b]
		pa1, pa2 := t.points[sa.Upper].Coord, t.points[sa.Lower].Coord
		pb1, pb2 := t.points[sb.Upper].Coord, t.points[sb.Lower].Coord
		return geom.SegmentsIntersect(pa1, pa2, pb1, pb2, shares(a, b))
	}

	simple := true

	for queue.Len() > 0 {
		minItem := queue.DeleteMin()
		ev := minItem.(btreeItem).event
		atX := t.points[ev.point].Coord.X

		switch ev.kind {
		case enterEvent:
			pos := sort.Search(len(status), func(i int) bool {
				return t.statusLess(ev.seg, status[i], atX) || status[i] == ev.seg
			})
			status = append(status, NoSeg)
			copy(status[pos+1:], status[pos:])
			status[pos] = ev.seg

			if pos > 0 && intersects(ev.seg, status[pos-1]) {
				simple = false
			}
			if pos < len(status)-1 && intersects(ev.seg, status[pos+1]) {
				simple = false
			}
		case leaveEvent:
			pos := indexOf(status, ev.seg)
			if pos < 0 {
				continue
			}
			var above, below SegIndex = NoSeg, NoSeg
			if pos > 0 {
				below = status[pos-1]
			}
			if pos < len(status)-1 {
				above = status[pos+1]
			}
			status = append(status[:pos], status[pos+1:]...)
			if above != NoSeg && below != NoSeg && intersects(above, below) {
				simple = false
			}
		}

		if !simple {
			break
		}
	}

	return simple
}

// statusLess orders two segments by where they cross the vertical sweep
// line at atX: intersect each segment's line with that vertical line, and
// compare the resulting Y values, breaking ties by the segments' right
// endpoints (per the lexicographic vertical relation).
func (t *Triangulator) statusLess(a, b SegIndex, atX float64) bool {
	ya := t.yAtX(a, atX)
	yb := t.yAtX(b, atX)
	if !geom.Equal(ya, yb) {
		return ya < yb
	}
	ra := t.points[t.segments[a].Right].Coord
	rb := t.points[t.segments[b].Right].Coord
	return geom.VerticalRelation(ra, rb) == geom.Below
}

func (t *Triangulator) yAtX(seg SegIndex, x float64) float64 {
	line := t.segments[seg].Line
	if line.IsHorizontal() {
		return t.points[t.segments[seg].Left].Coord.Y
	}
	return line.SolveForY(x)
}

func indexOf(s []SegIndex, v SegIndex) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// hasInvalidDuplicatePoints reports whether two distinct points (different
// array slots) share exact coordinates. Since every polygon vertex gets its
// own slot, any coincidence between distinct slots indicates either two
// outlines touching at a point or a degenerate repeated vertex; both are
// rejected conservatively. (The spec carves out an exception for points
// that are endpoints of the *same* adjacent pair of segments, but since
// distinct slots are never literally the same outline vertex, that
// exception cannot arise here; see DESIGN.md.)
func (t *Triangulator) hasInvalidDuplicatePoints() bool {
	order := make([]int, len(t.points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := t.points[order[i]].Coord, t.points[order[j]].Coord
		return geom.HorizontalRelation(a, b) == geom.Below
	})
	for i := 1; i < len(order); i++ {
		a := t.points[order[i-1]].Coord
		b := t.points[order[i]].Coord
		if geom.SamePoint(a, b) {
			return true
		}
	}
	return false
}

// btreeItem adapts a sweepEvent into a btree.Item using the shared
// eventOrder comparator.
type btreeItem struct {
	event sweepEvent
	order eventOrder
}

func (i btreeItem) Less(other btree.Item) bool {
	return i.order.less(i.event, other.(btreeItem).event)
}
