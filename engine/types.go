// Package engine implements Seidel's randomized incremental algorithm for
// trapezoidizing and triangulating simple polygons, including multi-contour
// polygons with holes. It is the core described by the design: a
// simple-polygon validator, an incremental trapezoidal decomposition with a
// search DAG, a fill-rule-driven interior classifier, and a monotone-chain
// triangulator, plus a step-wise driver for bounded, resumable execution.
//
// The package is not reentrant per Triangulator instance: every owned
// trapezoid and DAG node is mutated only by the goroutine holding the
// instance. Independent instances share no state.
package engine

import "github.com/osuushi/seidel/geom"

// PointIndex indexes into a Triangulator's point array. -1 means "no point"
// (an unbounded trapezoid boundary).
type PointIndex int32

// NoPoint is the sentinel for an absent point reference.
const NoPoint PointIndex = -1

// SegIndex indexes into a Triangulator's segment array. -1 means "no
// segment" (an unbounded trapezoid boundary).
type SegIndex int32

// NoSeg is the sentinel for an absent segment reference.
const NoSeg SegIndex = -1

// TrapHandle references a pool-allocated Trapezoid. The Generation field
// lets us detect use of a handle to a trapezoid that has since been freed
// and its slot reused; comparing handles with == naturally fails once the
// slot's generation has moved on.
type TrapHandle struct {
	index      int32
	generation int32
}

// NilTrap is the handle with index -1; IsNil reports true for it. The zero
// TrapHandle is not nil: it refers to slot 0.
var NilTrap = TrapHandle{index: -1}

func (h TrapHandle) IsNil() bool { return h.index < 0 }

// NodeHandle references a pool-allocated search DAG node, with the same
// generation-tagging scheme as TrapHandle.
type NodeHandle struct {
	index      int32
	generation int32
}

var NilNode = NodeHandle{index: -1}

func (h NodeHandle) IsNil() bool { return h.index < 0 }

// XDirection is the left/right side of a trapezoid or a segment.
type XDirection int

const (
	Left XDirection = iota
	Right
)

// YDirection is the upper/lower side of a trapezoid.
type YDirection int

const (
	Down YDirection = iota
	Up
)

// Direction bundles an X and Y side together. It disambiguates DAG
// traversal when a query point coincides exactly with a node's key point or
// one of a segment node's endpoints.
type Direction struct {
	X XDirection
	Y YDirection
}

// DefaultDirection is used by callers (tests, point-containment queries)
// that don't care how ties are broken.
var DefaultDirection = Direction{X: Left, Y: Down}

func (d Direction) Opposite() Direction {
	x := Left
	if d.X == Left {
		x = Right
	}
	y := Down
	if d.Y == Down {
		y = Up
	}
	return Direction{X: x, Y: y}
}

// FillRule selects how the interior classifier turns a signed crossing
// count into an inside/outside decision.
type FillRule int

const (
	EvenOdd FillRule = iota
	NonZero
)

// Winding is the orientation of an outline or an emitted triangle.
type Winding int

const (
	CW Winding = iota
	CCW
)

// NodeKind tags the variant held by a search DAG Node.
type NodeKind int

const (
	KindPoint NodeKind = iota
	KindSegment
	KindTrapezoid
)

// Node is a search DAG node. Exactly one of PointIdx, SegIdx, or Trap is
// meaningful, selected by Kind. Branching at a Point node goes Below to
// Left, Above to Right; branching at a Segment node goes IsLeftOf to Left,
// otherwise Right: see locate in dag.go. A Trapezoid node is a leaf.
//
// Because segment merges can make two parent nodes point at the same child
// (see thread.go's vertical merge step, mergeChunk), this is a DAG rather
// than a tree in the general case, even though it is built one
// point/segment insertion at a time like a tree. A node can end up with more
// than one real parent, so there is deliberately no Parent field here: a
// single handle can't represent that, and maintaining one incrementally
// across splits and merges is exactly the kind of owning-reference
// bookkeeping this package avoids elsewhere (see store.go). Callers that
// need to walk upward (classify.go) rebuild the parent relation on demand
// with buildParentIndex in dag.go.
type Node struct {
	Kind     NodeKind
	PointIdx PointIndex
	SegIdx   SegIndex
	Trap     TrapHandle

	Left, Right NodeHandle
}

// PointRecord is the per-vertex bookkeeping the engine maintains once an
// outline has been folded into the triangulator's flat point array.
type PointRecord struct {
	Coord geom.Point

	// Seg1 and Seg2 are 1-based signed segment indices: positive means this
	// point is that segment's left endpoint, negative means its right
	// endpoint, zero means the slot is unused. A point has at most two
	// incident segments since outlines are simple cycles.
	Seg1, Seg2 int32

	// Node is not set anywhere in this package and keeps its zero value.
	Node NodeHandle
}

// SegmentRecord is one edge of an outline, with endpoints classified by the
// lexicographic vertical/horizontal relations.
type SegmentRecord struct {
	Upper, Lower PointIndex
	Left, Right  PointIndex
	Line         geom.Line
	// Upward is true if traversing the outline visits Lower then Upper.
	Upward bool
}

// PointsDown reports whether walking the outline through this segment
// visits its upper endpoint before its lower endpoint - the complement of
// Upward. A right-to-left horizontal segment "points down" under the
// lexicographic rotation, which is what makes IsInside's convention work.
func (s SegmentRecord) PointsDown() bool { return !s.Upward }

// Triangle is three point indices, in counterclockwise order. Triangulate
// takes no winding option; every triangle is emitted counterclockwise.
type Triangle struct {
	A, B, C PointIndex
}
