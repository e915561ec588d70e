package engine

import "github.com/osuushi/seidel/geom"

// extractMonotoneChains decomposes every interior trapezoid into Y-monotone
// polygon vertex loops (CCW), one per connected run of interior trapezoids
// that share no diagonal with a neighboring loop, ready for
// triangulateMonotoneChain.
//
// Ported from the teacher's advanced.ConvertToMonotones: trapezoids whose
// top and bottom point don't both already lie on the same bounding segment
// get a synthetic diagonal segment splitting them in two first (so every
// surviving trapezoid has its top and bottom point on one consistent
// side), then each is walked from the top of its run to the bottom,
// recording which of its two boundary segments each newly-reached bottom
// point lies on.
func (t *Triangulator) extractMonotoneChains() [][]PointIndex {
	inside := map[TrapHandle]bool{}
	for _, h := range t.liveTrapezoids() {
		if t.trapezoid(h).Inside {
			inside[h] = true
		}
	}

	t.splitTrapezoidsOnDiagonals(inside)

	var chains [][]PointIndex
	for h := range inside {
		if !inside[h] {
			continue
		}

		top := h
		for {
			above := t.anyUpper(t.trapezoid(top))
			if above.IsNil() || !inside[above] {
				break
			}
			top = above
		}

		left := []PointIndex{t.trapezoid(top).UpperPoint}
		var right []PointIndex

		cur := top
	trapLoop:
		for {
			trap := t.trapezoid(cur)
			bottom := trap.LowerPoint
			leftBottom := t.segments[trap.LeftSeg].Lower
			rightBottom := t.segments[trap.RightSeg].Lower

			switch {
			case bottom == leftBottom && bottom == rightBottom:
				left = append(left, bottom)
				delete(inside, cur)
				break trapLoop
			case bottom == leftBottom:
				left = append(left, bottom)
			case bottom == rightBottom:
				right = append(right, bottom)
			default:
				fatalf("monotone walk: trapezoid %d's bottom point lies on neither bounding segment", trap.Number)
			}

			delete(inside, cur)
			below := t.anyLower(trap)
			if below.IsNil() || !inside[below] {
				break trapLoop
			}
			cur = below
		}

		chain := left
		for i := len(right) - 1; i >= 0; i-- {
			chain = append(chain, right[i])
		}
		if len(chain) >= 3 {
			chains = append(chains, chain)
		}
	}
	return chains
}

func (t *Triangulator) anyUpper(trap *Trapezoid) TrapHandle {
	if u := trap.uppers(); len(u) > 0 {
		return u[0]
	}
	return NilTrap
}

func (t *Triangulator) anyLower(trap *Trapezoid) TrapHandle {
	if l := trap.lowers(); len(l) > 0 {
		return l[0]
	}
	return NilTrap
}

// splitTrapezoidsOnDiagonals mutates inside in place, replacing every
// trapezoid that needs a diagonal with the two trapezoids produced by
// splitting it along that diagonal. This runs after classifyInterior and
// after the trapezoid tree has already served its purpose for point
// location, so reusing splitBySegment's neighbor-relinking logic (and
// appending a throwaway SegmentRecord for the diagonal's line) is safe even
// though these diagonals are never real input edges.
func (t *Triangulator) splitTrapezoidsOnDiagonals(inside map[TrapHandle]bool) {
	for h := range inside {
		trap := t.trapezoid(h)
		top, bottom := trap.UpperPoint, trap.LowerPoint
		leftSeg := &t.segments[trap.LeftSeg]
		rightSeg := &t.segments[trap.RightSeg]

		if top == leftSeg.Upper && bottom == leftSeg.Lower {
			continue
		}
		if top == rightSeg.Upper && bottom == rightSeg.Lower {
			continue
		}

		diag := t.appendDiagonalSegment(top, bottom)
		leftH, rightH := t.splitBySegment(h, diag)

		delete(inside, h)
		for _, nh := range [2]TrapHandle{leftH, rightH} {
			nt := t.trapezoid(nh)
			nt.Inside = true
			nt.HasDiagonal = true
			inside[nh] = true
		}
	}
}

func (t *Triangulator) appendDiagonalSegment(top, bottom PointIndex) SegIndex {
	tc, bc := t.points[top].Coord, t.points[bottom].Coord
	left, right := top, bottom
	if geom.HorizontalRelation(bc, tc) == geom.Below {
		left, right = bottom, top
	}
	idx := SegIndex(len(t.segments))
	t.segments = append(t.segments, SegmentRecord{
		Upper: top, Lower: bottom,
		Left: left, Right: right,
		Line: geom.ThroughPoints(bc, tc),
	})
	return idx
}

// triangulateMonotoneChain ear-clips one Y-monotone polygon, given as a CCW
// vertex loop, into triangles via a single top-to-bottom stack sweep.
// Ported from the teacher's internal.TriangulateMonotone: it first
// rediscovers the left/right chain split from the topmost vertex (a
// monotone polygon's two chains are exactly the two ways to walk from its
// top vertex to its bottom vertex), then sweeps the merged, top-to-bottom
// vertex order with a stack, emitting a triangle whenever three consecutive
// stack entries form a visible (CCW) ear.
func triangulateMonotoneChain(points []PointRecord, chain []PointIndex) []Triangle {
	n := len(chain)
	if n < 3 {
		fatalf("cannot triangulate degenerate monotone polygon with %d points", n)
	}
	if n == 3 {
		return []Triangle{{chain[0], chain[1], chain[2]}}
	}

	coord := func(p PointIndex) geom.Point { return points[p].Coord }
	above := func(a, b PointIndex) bool {
		return geom.VerticalRelation(coord(a), coord(b)) != geom.Below
	}

	topIdx := 0
	for i, p := range chain {
		if above(p, chain[topIdx]) {
			topIdx = i
		}
	}

	sorted := make([]PointIndex, 0, n)
	sorted = append(sorted, chain[topIdx])
	leftChain := map[PointIndex]bool{}

	leftOffset, rightOffset := 1, 1
	var bottom PointIndex
	for {
		lp := chain[circularIndex(topIdx+leftOffset, n)]
		rp := chain[circularIndex(topIdx-rightOffset, n)]
		if lp == rp {
			bottom = lp
			break
		}
		if above(lp, rp) {
			leftChain[lp] = true
			sorted = append(sorted, lp)
			leftOffset++
		} else {
			sorted = append(sorted, rp)
			rightOffset++
		}
	}

	var triangles []Triangle
	stack := []PointIndex{sorted[0], sorted[1]}

	appendTri := func(a, b, c PointIndex) {
		if geom.SignedTriangleArea(coord(a), coord(b), coord(c)) < 0 {
			fatalf("monotone triangulation produced a clockwise triangle (%d,%d,%d)", a, b, c)
		}
		triangles = append(triangles, Triangle{a, b, c})
	}

	for i := 2; i < len(sorted); i++ {
		p := sorted[i]
		onLeft := leftChain[p]
		top := stack[len(stack)-1]

		if onLeft != leftChain[top] {
			for len(stack) > 0 {
				a := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if len(stack) > 0 {
					b := stack[len(stack)-1]
					if onLeft {
						appendTri(p, a, b)
					} else {
						appendTri(a, p, b)
					}
				}
			}
			stack = []PointIndex{sorted[i-1], sorted[i]}
		} else {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for len(stack) > 0 {
				topOfStack := stack[len(stack)-1]
				var a, b, c PointIndex
				if onLeft {
					a, b, c = p, topOfStack, v
				} else {
					a, b, c = p, v, topOfStack
				}
				if geom.SignedTriangleArea(coord(a), coord(b), coord(c)) <= 0 {
					break
				}
				v = topOfStack
				stack = stack[:len(stack)-1]
				triangles = append(triangles, Triangle{a, b, c})
			}
			stack = append(stack, v, p)
		}
	}

	l := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if leftChain[l] {
			appendTri(bottom, p, l)
		} else {
			appendTri(bottom, l, p)
		}
		l = p
	}

	return triangles
}

func circularIndex(i, n int) int {
	return (i%n + n) % n
}
