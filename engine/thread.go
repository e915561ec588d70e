package engine

// seedWithSegment builds the very first four trapezoids and the three-node
// DAG that roots them, from the single segment segIdx. Every subsequent
// segment is threaded into this structure by threadSegment. Grounded
// directly on the teacher's NewQueryGraph: the segment's two endpoints
// split the plane into an unbounded trapezoid above the upper point, one
// below the lower point, and a left/right pair between them straddling the
// segment itself.
func (t *Triangulator) seedWithSegment(segIdx SegIndex) {
	seg := &t.segments[segIdx]
	upper, lower := seg.Upper, seg.Lower

	topH, topN := t.newTrapLeaf()
	leftH, leftN := t.newTrapLeaf()
	rightH, rightN := t.newTrapLeaf()
	bottomH, bottomN := t.newTrapLeaf()

	top, left, right, bottom := t.trapezoid(topH), t.trapezoid(leftH), t.trapezoid(rightH), t.trapezoid(bottomH)

	top.LowerPoint, top.UpperPoint = upper, NoPoint
	left.UpperPoint, left.LowerPoint = upper, lower
	left.RightSeg = segIdx
	right.UpperPoint, right.LowerPoint = upper, lower
	right.LeftSeg = segIdx
	bottom.UpperPoint, bottom.LowerPoint = lower, NoPoint

	top.Lower1, top.Lower2 = leftH, rightH
	left.Upper1, left.Lower1 = topH, bottomH
	right.Upper1, right.Lower1 = topH, bottomH
	bottom.Upper1, bottom.Upper2 = leftH, rightH

	bottomNode := t.allocNode(Node{Kind: KindSegment, SegIdx: segIdx, Left: leftN, Right: rightN})
	lowerYNode := t.allocNode(Node{Kind: KindPoint, PointIdx: lower, Left: bottomN, Right: bottomNode})
	rootNode := t.allocNode(Node{Kind: KindPoint, PointIdx: upper, Left: lowerYNode, Right: topN})

	t.root = rootNode
}

// splitTrapezoidHorizontally divides the trapezoid held at leaf nh into an
// upper and lower half at point p, replacing the leaf with a Point node.
// Ported from SplitTrapezoidHorizontally: the upper half keeps the original
// upper neighbors, the lower half keeps the original lower neighbors, and
// they become each other's sole neighbor across the new seam.
func (t *Triangulator) splitTrapezoidHorizontally(nh NodeHandle, p PointIndex) {
	leaf := t.node(nh)
	origH := leaf.Trap
	orig := t.trapezoid(origH)

	pc := t.points[p].Coord
	if orig.UpperPoint != NoPoint {
		if up := t.points[orig.UpperPoint].Coord; up.Y < pc.Y || (up.Y == pc.Y && up.X < pc.X) {
			fatalf("cannot split trapezoid %d on point above its top", orig.Number)
		}
	}
	if orig.LowerPoint != NoPoint {
		if lo := t.points[orig.LowerPoint].Coord; lo.Y > pc.Y || (lo.Y == pc.Y && lo.X > pc.X) {
			fatalf("cannot split trapezoid %d on point below its bottom", orig.Number)
		}
	}

	upperH, upperN := t.newTrapLeaf()
	lowerH, lowerN := t.newTrapLeaf()
	upperT, lowerT := t.trapezoid(upperH), t.trapezoid(lowerH)

	*upperT = *orig
	*lowerT = *orig
	upperT.Node, lowerT.Node = upperN, lowerN
	upperT.LowerPoint = p
	lowerT.UpperPoint = p

	upperT.Lower1, upperT.Lower2 = lowerH, NilTrap
	lowerT.Upper1, lowerT.Upper2, lowerT.Upper3 = upperH, NilTrap, NilTrap

	for _, nb := range orig.uppers() {
		if nbt := t.trapezoid(nb); nbt != nil {
			nbt.replaceOrAddLower(origH, upperH)
		}
	}
	for _, nb := range orig.lowers() {
		if nbt := t.trapezoid(nb); nbt != nil {
			nbt.replaceOrAddUpper(origH, lowerH)
		}
	}

	t.freeTrapezoid(origH)

	t.replaceLeaf(nh, Node{Kind: KindPoint, PointIdx: p, Left: lowerN, Right: upperN})
}

// threadSegment inserts one new segment into an already-nonempty DAG: it
// locates the trapezoids containing the segment's endpoints, splits them
// horizontally if the endpoint wasn't already a DAG vertex, walks the chain
// of trapezoids the segment passes through splitting each one in two, then
// merges consecutive split halves that ended up with identical bounding
// segments on both sides.
func (t *Triangulator) threadSegment(segIdx SegIndex) {
	if t.root.IsNil() {
		t.seedWithSegment(segIdx)
		return
	}

	seg := &t.segments[segIdx]
	upper, lower := seg.Upper, seg.Lower
	descend := t.descendDirection(segIdx)
	topDir := Direction{X: descend, Y: Down}

	topLeaf := t.findLeaf(upper, topDir)
	if !t.hasPoint(t.trapezoid(t.node(topLeaf).Trap), upper) {
		t.splitTrapezoidHorizontally(topLeaf, upper)
	}

	// Re-locate the bottom point from scratch rather than reusing topLeaf:
	// the split above (if any) already updated the DAG, so a fresh lookup
	// naturally lands in the right place without needing to track which
	// half of the top split we're in.
	bottomLeaf := t.findLeaf(lower, topDir.Opposite())
	if !t.hasPoint(t.trapezoid(t.node(bottomLeaf).Trap), lower) {
		t.splitTrapezoidHorizontally(bottomLeaf, lower)
		// The segment's interior lies in the upper half of the freshly split
		// bottom trapezoid.
		bottomLeaf = t.node(bottomLeaf).Right
	}

	curLeaf := bottomLeaf
	var leftChain, rightChain []TrapHandle

	for {
		curTrap := t.node(curLeaf).Trap
		cur := t.trapezoid(curTrap)
		// splitBySegment frees curTrap's slot, so anything needed from the
		// pre-split trapezoid - its top point, its upper-neighbor handles -
		// must be captured before calling it. The neighbor handles themselves
		// stay valid afterward: splitBySegment only redirects their back
		// pointers to the new left/right halves, it doesn't free them.
		reachedTop := cur.UpperPoint == upper
		uppersBefore := cur.uppers()

		leftH, rightH := t.splitBySegment(curTrap, segIdx)
		leftChain = append(leftChain, leftH)
		rightChain = append(rightChain, rightH)

		if reachedTop {
			break
		}

		next := NilTrap
		for _, nb := range uppersBefore {
			// A single upper neighbor is the only place the segment can
			// continue, even where the exact test below cannot decide at a
			// zero-height boundary.
			if len(uppersBefore) == 1 || t.bottomIntersectsSegment(t.trapezoid(nb), segIdx) {
				next = nb
				break
			}
		}
		// FLAG: a trapezoid chain for a correctly-threaded segment should
		// always find its continuation among the current trapezoid's upper
		// neighbors before reaching the segment's top point. If none of them
		// report an intersecting bottom edge, this falls through with next
		// still nil and the walk stops early, leaving the chain short of the
		// segment's top. That can only happen from an upstream invariant
		// violation (a malformed threading of an earlier segment), but rather
		// than silently accept a short chain, assert loudly: it's cheaper to
		// debug a panic here than a wrong triangulation downstream.
		if next.IsNil() {
			fatalf("threadSegment: lost segment %d's chain below its top point", segIdx)
		}
		curLeaf = t.trapezoid(next).Node
	}

	t.mergeChain(leftChain, segIdx, Left)
	t.mergeChain(rightChain, segIdx, Right)
}

// findLeaf locates the DAG leaf whose trapezoid currently contains point p.
func (t *Triangulator) findLeaf(p PointIndex, dir Direction) NodeHandle {
	trap := t.locate(t.root, p, dir)
	return t.trapezoid(trap).Node
}

// descendDirection approximates, for a not-yet-threaded segment, which side
// of any DAG segment node it should be considered on if its own endpoint
// coincides exactly with that node's key point. It uses the new segment's
// own lean (which way its lower endpoint sits relative to its upper one) as
// a stand-in for a true comparison against whichever segment already owns
// the shared vertex. This is a simplification carried over from an
// underspecified corner of the source algorithm - see DESIGN.md - and is
// flagged here rather than silently patched.
func (t *Triangulator) descendDirection(segIdx SegIndex) XDirection {
	seg := &t.segments[segIdx]
	upper := t.points[seg.Upper].Coord
	lower := t.points[seg.Lower].Coord
	if lower.X < upper.X {
		return Left
	}
	return Right
}

// splitBySegment divides trap into left/right halves along segIdx, exactly
// as SplitBySegment does: both halves inherit trap's bounds and neighbors,
// filtered down to whichever neighbor still overlaps after the cut. Both
// new leaves still point at trap's old DAG node; mergeChain rewires that
// once it knows the full chunking of mergeable runs.
func (t *Triangulator) splitBySegment(origH TrapHandle, segIdx SegIndex) (leftH, rightH TrapHandle) {
	orig := t.trapezoid(origH)
	leftH = t.allocTrapezoid()
	rightH = t.allocTrapezoid()
	left, right := t.trapezoid(leftH), t.trapezoid(rightH)
	*left, *right = *orig, *orig
	left.RightSeg = segIdx
	right.LeftSeg = segIdx
	left.Upper1, left.Upper2, left.Upper3 = NilTrap, NilTrap, NilTrap
	left.Lower1, left.Lower2 = NilTrap, NilTrap
	right.Upper1, right.Upper2, right.Upper3 = NilTrap, NilTrap, NilTrap
	right.Lower1, right.Lower2 = NilTrap, NilTrap

	for _, nb := range orig.uppers() {
		nbt := t.trapezoid(nb)
		if nbt == nil {
			continue
		}
		nbt.removeLower(origH)
		if t.nonzeroOverlapAbove(left, nbt) {
			left.addUpper(nb)
			nbt.addLower(leftH)
		}
		if t.nonzeroOverlapAbove(right, nbt) {
			right.addUpper(nb)
			nbt.addLower(rightH)
		}
	}
	for _, nb := range orig.lowers() {
		nbt := t.trapezoid(nb)
		if nbt == nil {
			continue
		}
		nbt.removeUpper(origH)
		if t.nonzeroOverlapAbove(nbt, left) {
			left.addLower(nb)
			nbt.addUpper(leftH)
		}
		if t.nonzeroOverlapAbove(nbt, right) {
			right.addLower(nb)
			nbt.addUpper(rightH)
		}
	}

	// Both halves keep pointing at the original DAG leaf node for now;
	// mergeChain installs the real Segment node once it knows the run of
	// mergeable halves either side of segIdx.
	left.Node = orig.Node
	right.Node = orig.Node

	t.freeTrapezoid(origH)
	return leftH, rightH
}

// mergeChain collapses consecutive, vertically-adjacent trapezoids in
// chain that ended up with identical left/right bounding segments into one
// taller trapezoid, then installs a Segment DAG node (with child side
// populated from whichever of mergeChain's two calls runs second) at each
// original leaf position in the chain. This is the piece of the DAG that
// turns it from a tree into a true DAG: once two leaves are merged, the
// merged trapezoid's single new sink can be reached from more than one
// parent node.
func (t *Triangulator) mergeChain(chain []TrapHandle, segIdx SegIndex, side XDirection) {
	i := 0
	for i < len(chain) {
		j := i + 1
		for j < len(chain) && t.trapezoid(chain[i]).canMergeWith(t.trapezoid(chain[j])) {
			j++
		}
		t.mergeChunk(chain[i:j], segIdx, side)
		i = j
	}
}

func (t *Triangulator) mergeChunk(chunk []TrapHandle, segIdx SegIndex, side XDirection) {
	bottomH := chunk[0]
	topH := chunk[len(chunk)-1]
	bottom, top := t.trapezoid(bottomH), t.trapezoid(topH)

	mergedH := t.allocTrapezoid()
	merged := t.trapezoid(mergedH)
	*merged = *bottom
	merged.UpperPoint = top.UpperPoint
	merged.Upper1, merged.Upper2, merged.Upper3 = top.Upper1, top.Upper2, top.Upper3

	for _, nb := range merged.uppers() {
		if nbt := t.trapezoid(nb); nbt != nil {
			nbt.replaceOrAddLower(topH, mergedH)
		}
	}
	for _, nb := range bottom.lowers() {
		if nbt := t.trapezoid(nb); nbt != nil {
			nbt.replaceOrAddUpper(bottomH, mergedH)
		}
	}

	mergedNode := t.allocNode(Node{Kind: KindTrapezoid, Trap: mergedH})
	merged.Node = mergedNode

	for _, trapH := range chunk {
		leafNode := t.node(t.trapezoid(trapH).Node)
		// splitBySegment pointed both the left and right half of a given
		// original trapezoid at the same pre-split leaf node. mergeChain runs
		// once for the left chain and once for the right chain, so by the
		// time the second call reaches this leaf it's already been turned
		// into a Segment node by the first call - overwriting it again would
		// destroy the side the first call set, so only fill in our side.
		if leafNode.Kind != KindSegment || leafNode.SegIdx != segIdx {
			*leafNode = Node{Kind: KindSegment, SegIdx: segIdx}
		}
		if side == Left {
			leafNode.Left = mergedNode
		} else {
			leafNode.Right = mergedNode
		}
		t.freeTrapezoid(trapH)
	}
}
