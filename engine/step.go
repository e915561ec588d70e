package engine

// StepPhase identifies which part of the pipeline a StepDriver is currently
// advancing.
type StepPhase int

const (
	PhaseValidate StepPhase = iota
	PhaseThreadSegments
	PhaseClassify
	PhaseMonotoneChains
	PhaseDone
)

// StepDriver runs a Triangulator's pipeline in bounded increments, so a
// caller driving an interactive visualization can advance one unit of work
// at a time - one threaded segment, one classified trapezoid - instead of
// blocking for the whole computation. The driver's position (which segment
// is next, how far the classification scan has gotten) lives on the driver,
// but the trapezoid pool and search DAG it builds live on the Triangulator,
// so discarding a driver mid-run leaves a partially built tree there;
// DeleteTrapezoidTree resets it.
type StepDriver struct {
	t     *Triangulator
	phase StepPhase

	segmentOrder []SegIndex
	nextSegment  int

	monotoneTraps []TrapHandle
	monotoneIdx   int
	classifyUp    map[NodeHandle]NodeHandle

	triangles []Triangle
	chains    [][]PointIndex
}

// NewStepDriver prepares a driver over t. t should not have had
// BuildTrapezoidTree or Triangulate called on it yet; the driver runs every
// phase itself.
func NewStepDriver(t *Triangulator) *StepDriver {
	return &StepDriver{t: t, phase: PhaseValidate}
}

// Checkpoint is a snapshot of a StepDriver's phase and counters. It holds
// nothing else: Resume overwrites those fields only and does not restore the
// trapezoids, the search DAG or the driver's segment order, so a Checkpoint
// does not carry progress over to another driver or another process.
type Checkpoint struct {
	Phase       StepPhase
	NextSegment int
	MonotoneIdx int
}

// Checkpoint captures the driver's current position.
func (d *StepDriver) Checkpoint() Checkpoint {
	return Checkpoint{Phase: d.phase, NextSegment: d.nextSegment, MonotoneIdx: d.monotoneIdx}
}

// Resume restores a driver's position from a previously captured Checkpoint.
func (d *StepDriver) Resume(c Checkpoint) {
	d.phase = c.Phase
	d.nextSegment = c.NextSegment
	d.monotoneIdx = c.MonotoneIdx
}

// Done reports whether every phase has finished.
func (d *StepDriver) Done() bool { return d.phase == PhaseDone }

// Step advances the pipeline by at most maxSteps units of work, returning
// how many steps were actually taken. It returns 0 once Done reports true.
// A non-positive maxSteps is treated as 0 steps, not unbounded: callers
// that want to run to completion should loop calling Step until Done.
func (d *StepDriver) Step(maxSteps int) int {
	taken := 0
	for taken < maxSteps && d.phase != PhaseDone {
		switch d.phase {
		case PhaseValidate:
			if !d.t.IsSimplePolygon() {
				d.phase = PhaseDone
				taken++
				continue
			}
			d.segmentOrder = make([]SegIndex, len(d.t.segments))
			for i := range d.segmentOrder {
				d.segmentOrder[i] = SegIndex(i)
			}
			d.t.rng.Shuffle(len(d.segmentOrder), func(i, j int) {
				d.segmentOrder[i], d.segmentOrder[j] = d.segmentOrder[j], d.segmentOrder[i]
			})
			d.phase = PhaseThreadSegments
			taken++

		case PhaseThreadSegments:
			if d.nextSegment >= len(d.segmentOrder) {
				d.t.treeBuilt = true
				d.phase = PhaseClassify
				taken++
				continue
			}
			d.t.threadSegment(d.segmentOrder[d.nextSegment])
			d.nextSegment++
			taken++

		case PhaseClassify:
			if d.monotoneTraps == nil {
				d.monotoneTraps = d.t.liveTrapezoids()
				d.classifyUp = d.t.buildParentIndex()
			}
			if d.monotoneIdx >= len(d.monotoneTraps) {
				d.monotoneIdx = 0
				d.monotoneTraps = nil
				d.classifyUp = nil
				d.phase = PhaseMonotoneChains
				taken++
				continue
			}
			trap := d.t.trapezoid(d.monotoneTraps[d.monotoneIdx])
			trap.Inside = d.t.isInside(trap, d.classifyUp)
			d.monotoneIdx++
			taken++

		case PhaseMonotoneChains:
			d.chains = d.t.extractMonotoneChains()
			for _, chain := range d.chains {
				d.triangles = append(d.triangles, triangulateMonotoneChain(d.t.points, chain)...)
			}
			d.t.monotoneChains = d.chains
			d.t.triangles = d.triangles
			d.t.triangulated = true
			d.phase = PhaseDone
			taken++
		}
	}
	return taken
}

// Result returns the triangles produced so far. It's meaningful once Done
// reports true; mid-run it reflects only chains completed so far (always
// empty before PhaseMonotoneChains finishes, since that phase emits all of
// its triangles as one unit of work).
func (d *StepDriver) Result() []Triangle { return d.triangles }
