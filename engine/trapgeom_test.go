package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isInsideStructural is the teacher's original, structural classification
// rule (kept alongside classify.go's DAG-walk approach, see DESIGN.md).
// For a single simple CCW outline with no holes, it should agree with the
// DAG-walk classifier on every fully-bounded trapezoid.
func TestIsInsideStructuralAgreesWithDAGWalkOnSimpleOutline(t *testing.T) {
	outline := Outline{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}
	tr := New(OutlineList{outline})
	require.True(t, tr.BuildTrapezoidTree(nil))

	parent := tr.buildParentIndex()
	bounded := 0
	for _, trap := range tr.Trapezoids() {
		if trap.LeftSeg == NoSeg || trap.RightSeg == NoSeg {
			continue
		}
		bounded++
		assert.Equal(t, tr.isInside(trap, parent), tr.isInsideStructural(trap))
	}
	assert.Greater(t, bounded, 0)
}

func TestIsInsideStructuralFalseForUnboundedTrapezoid(t *testing.T) {
	outline := Outline{pt(0, 0), pt(4, 0), pt(2, 3)}
	tr := New(OutlineList{outline})
	require.True(t, tr.BuildTrapezoidTree(nil))

	foundUnbounded := false
	for _, trap := range tr.Trapezoids() {
		if trap.LeftSeg == NoSeg || trap.RightSeg == NoSeg {
			foundUnbounded = true
			assert.False(t, tr.isInsideStructural(trap))
		}
	}
	assert.True(t, foundUnbounded)
}
