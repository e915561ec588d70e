package engine

import "github.com/osuushi/seidel/geom"

// locate walks the search DAG from root to find the trapezoid containing
// point p. dir disambiguates the two cases where p coincides exactly with a
// DAG node's key: a Point node branches on equality using dir.Y, and a
// Segment node branches on equality using dir.X (p is one of the segment's
// own endpoints). Every other query resolves from the comparison alone.
func (t *Triangulator) locate(root NodeHandle, p PointIndex, dir Direction) TrapHandle {
	node := t.node(root)
	if node == nil {
		fatalf("locate: nil node in search DAG")
	}
	coord := t.points[p].Coord

	for {
		switch node.Kind {
		case KindTrapezoid:
			return node.Trap
		case KindPoint:
			key := t.points[node.PointIdx].Coord
			var next NodeHandle
			switch {
			case node.PointIdx == p:
				if dir.Y == Down {
					next = node.Left
				} else {
					next = node.Right
				}
			case geom.VerticalRelation(coord, key) == geom.Below:
				next = node.Left
			default:
				next = node.Right
			}
			node = t.node(next)
		case KindSegment:
			seg := &t.segments[node.SegIdx]
			if seg.Upper == p || seg.Lower == p {
				if dir.X == Left {
					node = t.node(node.Left)
				} else {
					node = t.node(node.Right)
				}
				continue
			}
			if seg.Line.IsLeftOf(coord) {
				node = t.node(node.Left)
			} else {
				node = t.node(node.Right)
			}
		default:
			fatalf("locate: invalid node kind %v", node.Kind)
		}
		if node == nil {
			fatalf("locate: fell off search DAG")
		}
	}
}

// buildParentIndex walks the search DAG from root and records, for every
// node reached, the handle of the first node found to point at it. A node
// can legitimately have more than one real parent once a vertical merge
// (thread.go's mergeChunk) makes two distinct leaf positions reference the
// same merged trapezoid node; since any one valid parent chain is enough to
// reach a bounding ancestor (classify.go's outward walk only needs to find
// *a* matching Segment ancestor, not every one), recording the first parent
// encountered - rather than threading a Parent field through every split
// and merge - is both simpler and immune to the staleness that an
// incrementally-maintained field would invite. Rebuilt fresh whenever
// needed rather than cached, since it's only used once per triangulation
// and the DAG is finished mutating by then.
func (t *Triangulator) buildParentIndex() map[NodeHandle]NodeHandle {
	parent := make(map[NodeHandle]NodeHandle)
	visited := make(map[NodeHandle]bool)

	var walk func(nh NodeHandle)
	walk = func(nh NodeHandle) {
		if nh.IsNil() || visited[nh] {
			return
		}
		visited[nh] = true
		n := t.node(nh)
		if n == nil || n.Kind == KindTrapezoid {
			return
		}
		for _, child := range [2]NodeHandle{n.Left, n.Right} {
			if child.IsNil() {
				continue
			}
			if _, ok := parent[child]; !ok {
				parent[child] = nh
			}
			walk(child)
		}
	}
	walk(t.root)
	return parent
}

// newTrapLeaf allocates a trapezoid and a DAG leaf node for it, wiring them
// to each other, and returns both handles.
func (t *Triangulator) newTrapLeaf() (TrapHandle, NodeHandle) {
	th := t.allocTrapezoid()
	nh := t.allocNode(Node{Kind: KindTrapezoid, Trap: th})
	trap := t.trapezoid(th)
	trap.Node = nh
	return th, nh
}

// replaceLeaf overwrites the node at handle nh in place, turning a
// trapezoid leaf into an internal Point or Segment node with two new leaf
// children. Overwriting in place (rather than allocating a new node and
// relinking the parent) is what lets a single trapezoid leaf end up with
// multiple parents after a later merge: every parent edge that already
// points at nh keeps working unchanged.
func (t *Triangulator) replaceLeaf(nh NodeHandle, newNode Node) {
	*t.node(nh) = newNode
}
