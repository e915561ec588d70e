package engine

// Trapezoid neighbor bookkeeping. Up to two neighbors are kept above and
// below in the stable state, but a horizontal split transiently
// collapses a side to one neighbor, and a vertical split transiently needs
// a third upper slot (Upper3) while a downward cusp's two new trapezoids
// are both still adjacent to the same trapezoid above. See thread.go.

func (t *Trapezoid) uppers() []TrapHandle {
	var out []TrapHandle
	for _, h := range [...]TrapHandle{t.Upper1, t.Upper2, t.Upper3} {
		if !h.IsNil() {
			out = append(out, h)
		}
	}
	return out
}

func (t *Trapezoid) lowers() []TrapHandle {
	var out []TrapHandle
	for _, h := range [...]TrapHandle{t.Lower1, t.Lower2} {
		if !h.IsNil() {
			out = append(out, h)
		}
	}
	return out
}

// addUpper appends h to the first open upper slot. Seeing all three slots
// already full is an invariant violation: the algorithm guarantees at most
// three transient upper neighbors during threading, and at most two once a
// segment insertion completes.
func (t *Trapezoid) addUpper(h TrapHandle) {
	switch {
	case t.Upper1.IsNil():
		t.Upper1 = h
	case t.Upper2.IsNil():
		t.Upper2 = h
	case t.Upper3.IsNil():
		t.Upper3 = h
	default:
		fatalf("trapezoid %d already has three upper neighbors", t.Number)
	}
}

func (t *Trapezoid) addLower(h TrapHandle) {
	switch {
	case t.Lower1.IsNil():
		t.Lower1 = h
	case t.Lower2.IsNil():
		t.Lower2 = h
	default:
		fatalf("trapezoid %d already has two lower neighbors", t.Number)
	}
}

func (t *Trapezoid) removeUpper(h TrapHandle) {
	switch h {
	case t.Upper1:
		t.Upper1 = NilTrap
	case t.Upper2:
		t.Upper2 = NilTrap
	case t.Upper3:
		t.Upper3 = NilTrap
	}
}

func (t *Trapezoid) removeLower(h TrapHandle) {
	switch h {
	case t.Lower1:
		t.Lower1 = NilTrap
	case t.Lower2:
		t.Lower2 = NilTrap
	}
}

func (t *Trapezoid) replaceOrAddUpper(orig, replacement TrapHandle) {
	switch orig {
	case t.Upper1:
		t.Upper1 = replacement
	case t.Upper2:
		t.Upper2 = replacement
	case t.Upper3:
		t.Upper3 = replacement
	default:
		t.addUpper(replacement)
	}
}

func (t *Trapezoid) replaceOrAddLower(orig, replacement TrapHandle) {
	switch orig {
	case t.Lower1:
		t.Lower1 = replacement
	case t.Lower2:
		t.Lower2 = replacement
	default:
		t.addLower(replacement)
	}
}

// canMergeWith reports whether two vertically adjacent trapezoids produced
// by the same segment split have identical bounding segments, and so can be
// collapsed into one taller trapezoid.
func (t *Trapezoid) canMergeWith(other *Trapezoid) bool {
	return t.LeftSeg == other.LeftSeg && t.RightSeg == other.RightSeg
}

// hasPoint reports whether p is already one of the (up to six) points
// bounding the trapezoid: its own top/bottom, or an endpoint of its left or
// right segment. If so, inserting p into this trapezoid needs no horizontal
// split.
func (t *Triangulator) hasPoint(trap *Trapezoid, p PointIndex) bool {
	if trap.UpperPoint == p || trap.LowerPoint == p {
		return true
	}
	if trap.LeftSeg != NoSeg {
		s := &t.segments[trap.LeftSeg]
		if s.Upper == p || s.Lower == p {
			return true
		}
	}
	if trap.RightSeg != NoSeg {
		s := &t.segments[trap.RightSeg]
		if s.Upper == p || s.Lower == p {
			return true
		}
	}
	return false
}
