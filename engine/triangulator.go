package engine

import (
	"math/rand"

	"github.com/osuushi/seidel/geom"
)

// Option configures a Triangulator at construction time.
type Option func(*Triangulator)

// WithFillRule selects even-odd (the default) or non-zero winding for
// interior classification. See classify.go.
func WithFillRule(rule FillRule) Option {
	return func(t *Triangulator) { t.fillRule = rule }
}

// WithDeterministicSeed pins the random source used to shuffle segment
// insertion order, which otherwise defaults to a fixed seed. Seidel's
// algorithm is randomized incremental only for its expected running time;
// correctness never depends on the seed, so tests can rely on a stable
// default and callers processing adversarial or attacker-supplied input can
// opt into a different seed instead of a time-based one, keeping the whole
// run reproducible if they log the seed they chose.
func WithDeterministicSeed(seed int64) Option {
	return func(t *Triangulator) { t.seed = seed }
}

// Triangulator holds one polygon's full processing state: the flattened
// input model, the trapezoid/DAG pool, and the results of whichever phases
// have run so far. It is built once per polygon and is not safe for
// concurrent use; see the package doc comment.
type Triangulator struct {
	store

	points          []PointRecord
	segments        []SegmentRecord
	outlineWindings []Winding
	outlineRanges   [][2]int
	shapeValid      bool

	fillRule FillRule
	seed     int64
	rng      *rand.Rand

	isSimple     bool
	simpleSet    bool
	root         NodeHandle
	treeBuilt    bool
	triangulated bool

	triangles      []Triangle
	diagonals      [][2]PointIndex
	monotoneChains [][]PointIndex
}

// defaultSeed is used whenever no WithDeterministicSeed option is given.
// Seidel's algorithm only uses randomness to bound expected running time, so
// a fixed seed costs nothing but determinism.
const defaultSeed = 0x5eed1e

// New builds a Triangulator over the given outlines. Malformed input (an
// outline with fewer than three points) never returns an error: the
// Triangulator is still fully constructed so callers can inspect it, but
// IsSimplePolygon will report false without running the validity sweep. This
// mirrors the rest of the package's error model: no exceptions for control
// flow, only explicit bool/struct returns.
func New(outlines OutlineList, opts ...Option) *Triangulator {
	t := &Triangulator{
		root: NilNode,
		seed: defaultSeed,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.rng = rand.New(rand.NewSource(t.seed))
	t.buildInputModel(outlines)
	return t
}

// IsSimplePolygon reports whether the input is a valid simple polygon (no
// self-intersections, no duplicate vertices across outlines, and every
// outline has at least three points). The sweep runs lazily, once, on first
// call.
func (t *Triangulator) IsSimplePolygon() bool {
	if !t.simpleSet {
		t.isSimple = t.checkSimplePolygon()
		t.simpleSet = true
	}
	return t.isSimple
}

// Points returns the flattened point array backing every PointIndex.
func (t *Triangulator) Points() []geom.Point {
	out := make([]geom.Point, len(t.points))
	for i, p := range t.points {
		out[i] = p.Coord
	}
	return out
}

// OutlineWindings reports the winding (CW/CCW) the input model computed for
// each outline, in input order.
func (t *Triangulator) OutlineWindings() []Winding {
	return append([]Winding(nil), t.outlineWindings...)
}

// NumSegments reports how many segments the input model holds.
func (t *Triangulator) NumSegments() int { return len(t.segments) }

// SegmentLine returns the implicit line through segment seg's endpoints.
// Exposed mainly for debug rendering; seg must be a valid index (not NoSeg).
func (t *Triangulator) SegmentLine(seg SegIndex) geom.Line {
	return t.segments[seg].Line
}

// Trapezoids returns every live trapezoid once BuildTrapezoidTree has run.
func (t *Triangulator) Trapezoids() []*Trapezoid {
	handles := t.liveTrapezoids()
	out := make([]*Trapezoid, len(handles))
	for i, h := range handles {
		out[i] = t.trapezoid(h)
	}
	return out
}

// TrapInfo reports the outcome of BuildTrapezoidTree.
type TrapInfo struct {
	NumTrapezoids int
	NumSteps      int
}

// BuildTrapezoidTree runs the full incremental decomposition: every segment
// is inserted (in a deterministically shuffled order) into the search DAG,
// producing a complete trapezoidation of the plane with respect to the
// input outlines. It returns false, leaving no partial tree installed, if
// the input was never a valid simple polygon.
func (t *Triangulator) BuildTrapezoidTree(info *TrapInfo) (ok bool) {
	if !t.IsSimplePolygon() {
		return false
	}
	if t.treeBuilt {
		if info != nil {
			info.NumTrapezoids = len(t.liveTrapezoids())
		}
		return true
	}

	defer func() {
		if r := recover(); r != nil {
			if err := recoverInvariant(r); err != nil {
				t.reset()
				t.root = NilNode
				ok = false
				return
			}
		}
	}()

	order := make([]SegIndex, len(t.segments))
	for i := range order {
		order[i] = SegIndex(i)
	}
	t.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	steps := 0
	for _, seg := range order {
		t.threadSegment(seg)
		steps++
	}

	t.treeBuilt = true
	if info != nil {
		info.NumTrapezoids = len(t.liveTrapezoids())
		info.NumSteps = steps
	}
	return true
}

// DeleteTrapezoidTree tears down the trapezoid pool and DAG in O(n),
// returning the Triangulator to its freshly-constructed state (the input
// model itself is untouched, so BuildTrapezoidTree can run again).
func (t *Triangulator) DeleteTrapezoidTree() {
	t.reset()
	t.root = NilNode
	t.treeBuilt = false
	t.triangulated = false
	t.triangles = nil
	t.diagonals = nil
	t.monotoneChains = nil
}

// TriInfo reports the outcome of Triangulate.
type TriInfo struct {
	NumTriangles int
	NumChains    int
}

// Triangulate runs interior classification followed by monotone
// decomposition and ear-clip triangulation, returning the resulting
// triangles (as point index triples) in the outline's original point
// indexing. It requires BuildTrapezoidTree to have already succeeded.
func (t *Triangulator) Triangulate(info *TriInfo) (triangles []Triangle, ok bool) {
	if !t.treeBuilt {
		return nil, false
	}
	if t.triangulated {
		if info != nil {
			info.NumTriangles = len(t.triangles)
			info.NumChains = len(t.monotoneChains)
		}
		return t.triangles, true
	}

	defer func() {
		if r := recover(); r != nil {
			if err := recoverInvariant(r); err != nil {
				triangles, ok = nil, false
			}
		}
	}()

	t.classifyInterior()

	chains := t.extractMonotoneChains()
	var tris []Triangle
	for _, chain := range chains {
		tris = append(tris, triangulateMonotoneChain(t.points, chain)...)
	}

	t.monotoneChains = chains
	t.triangles = tris
	t.triangulated = true

	if info != nil {
		info.NumTriangles = len(tris)
		info.NumChains = len(chains)
	}
	return tris, true
}
