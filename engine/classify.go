package engine

// classifyInterior tags every fully-bounded live trapezoid with Inside,
// according to the configured FillRule. Builds the DAG's parent relation
// once (see buildParentIndex in dag.go) and reuses it for every trapezoid,
// since the tree is finished mutating by the time this runs.
func (t *Triangulator) classifyInterior() {
	parent := t.buildParentIndex()
	for _, h := range t.liveTrapezoids() {
		trap := t.trapezoid(h)
		trap.Inside = t.isInside(trap, parent)
	}
}

// crossingDelta reports a bounding segment's contribution to the signed
// winding total accumulated while walking out of the polygon: a segment
// drawn upward (in the outline's traversal direction) is crossed against
// the outline's orientation, so it subtracts; a downward one adds. Mirrors
// the original's countCrossings.
func (t *Triangulator) crossingDelta(seg SegIndex) int {
	if t.segments[seg].Upward {
		return -1
	}
	return 1
}

// isInside classifies one fully-bounded trapezoid by walking the search DAG
// out to the polygon's exterior and counting how many bounding segments lie
// between it and the outside, rather than scanning every segment in the
// input and casting a ray (an O(segments)-per-trapezoid alternative this
// package doesn't use). Ported from the original's
// DetermineInsideTrapezoids (original_source/Source/SeidelTriangulator.cpp):
//
//  1. From trap's own DAG leaf, ascend via parent links until reaching the
//     nearest ancestor Segment node that is one of trap's own two bounding
//     segments (trap.LeftSeg or trap.RightSeg). Whichever one is hit first
//     fixes "direction" - Left if it was the left bound, Right if the right
//     bound - for the rest of the walk, and its crossing contributes to the
//     running total.
//  2. Descend from that ancestor on the *other* side from direction (the
//     side trap itself isn't under), alternating at Point nodes by parity
//     of how many have been crossed so far and reversing at interior
//     Segment nodes, until a Trapezoid leaf is reached.
//  3. If that adjacent trapezoid is itself bound on both sides, it has its
//     own ancestor bounding segment (on the same "direction" side) further
//     up the tree; ascend to it, add its crossing, and keep descending.
//     Once an adjacent trapezoid is missing a bound on that side, the walk
//     has reached the unbounded exterior: the accumulated crossing total,
//     read under the configured FillRule, decides trap's own Inside value.
func (t *Triangulator) isInside(trap *Trapezoid, parent map[NodeHandle]NodeHandle) bool {
	if !trap.hasAllBounds() {
		return false
	}

	matchNode, dir, seg := t.ascendToEitherBoundingSegment(trap.Node, trap.LeftSeg, trap.RightSeg, parent)
	crossing := t.crossingDelta(seg)

	node := t.node(matchNode).Right
	if dir == Left {
		node = t.node(matchNode).Left
	}

	pointCount := 0
	for {
		n := t.node(node)
		if n == nil {
			fatalf("classify: fell off search DAG walking out of trapezoid %d", trap.Number)
		}
		switch n.Kind {
		case KindPoint:
			pointCount++
			if pointCount%2 == 1 {
				node = n.Left
			} else {
				node = n.Right
			}

		case KindSegment:
			if dir == Left {
				node = n.Right
			} else {
				node = n.Left
			}

		case KindTrapezoid:
			pointCount = 0
			adj := t.trapezoid(n.Trap)
			if adj.LeftSeg != NoSeg && adj.RightSeg != NoSeg {
				target := adj.RightSeg
				if dir == Left {
					target = adj.LeftSeg
				}
				matchNode = t.ascendToSegment(adj.Node, target, parent)
				crossing += t.crossingDelta(target)
				if dir == Left {
					node = t.node(matchNode).Left
				} else {
					node = t.node(matchNode).Right
				}
				continue
			}

			if t.fillRule == NonZero {
				return crossing != 0
			}
			return crossing%2 != 0
		}
	}
}

// ascendToEitherBoundingSegment walks up from start until it reaches the
// nearest ancestor Segment node whose SegIdx is leftSeg or rightSeg,
// returning that node, which side matched, and the segment itself.
func (t *Triangulator) ascendToEitherBoundingSegment(start NodeHandle, leftSeg, rightSeg SegIndex, parent map[NodeHandle]NodeHandle) (NodeHandle, XDirection, SegIndex) {
	node := start
	for {
		p, ok := parent[node]
		if !ok || p == t.root {
			fatalf("classify: no bounding-segment ancestor found below the DAG root")
		}
		node = p
		if n := t.node(node); n.Kind == KindSegment {
			if n.SegIdx == leftSeg {
				return node, Left, leftSeg
			}
			if n.SegIdx == rightSeg {
				return node, Right, rightSeg
			}
		}
	}
}

// ascendToSegment walks up from start until it reaches the nearest ancestor
// Segment node for exactly target.
func (t *Triangulator) ascendToSegment(start NodeHandle, target SegIndex, parent map[NodeHandle]NodeHandle) NodeHandle {
	node := start
	for {
		p, ok := parent[node]
		if !ok || p == t.root {
			fatalf("classify: lost ancestor search for bounding segment %d", target)
		}
		node = p
		if n := t.node(node); n.Kind == KindSegment && n.SegIdx == target {
			return node
		}
	}
}
