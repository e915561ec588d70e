package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientation(t *testing.T) {
	p1 := Point{0, 0}
	p2 := Point{1, 0}
	p3cw := Point{1, -1}
	p3ccw := Point{1, 1}
	p3col := Point{2, 0}

	assert.Equal(t, Clockwise, ClassifyOrientation(Orientation(p1, p2, p3cw)))
	assert.Equal(t, CounterClockwise, ClassifyOrientation(Orientation(p1, p2, p3ccw)))
	assert.Equal(t, Collinear, ClassifyOrientation(Orientation(p1, p2, p3col)))
}

func TestVerticalRelationTieBreak(t *testing.T) {
	p := Point{X: 0, Y: 5}
	q := Point{X: 1, Y: 5}
	assert.Equal(t, Below, VerticalRelation(p, q))
	assert.Equal(t, Above, VerticalRelation(q, p))
}

func TestSegmentsIntersectCrossing(t *testing.T) {
	assert.True(t, SegmentsIntersect(
		Point{0, 0}, Point{2, 2},
		Point{0, 2}, Point{2, 0},
		false,
	))
}

func TestSegmentsIntersectSharedEndpointExcluded(t *testing.T) {
	shared := Point{1, 1}
	a2 := Point{0, 0}
	b2 := Point{2, 0}
	assert.False(t, SegmentsIntersect(shared, a2, shared, b2, true))
}

func TestSegmentsIntersectSharedEndpointCountsWhenNotExcluded(t *testing.T) {
	shared := Point{1, 1}
	a2 := Point{0, 0}
	b2 := Point{2, 0}
	assert.True(t, SegmentsIntersect(shared, a2, shared, b2, false))
}

func TestLineSolveForX(t *testing.T) {
	line := ThroughPoints(Point{0, 0}, Point{2, 2})
	assert.InDelta(t, 1, line.SolveForX(1), Epsilon*10)
}

func TestLineIsLeftOf(t *testing.T) {
	// Vertical line through x=0, lower (0,0) -> upper (0,1)
	line := ThroughPoints(Point{0, 0}, Point{0, 1})
	assert.True(t, line.IsLeftOf(Point{-1, 0.5}))
	assert.True(t, line.IsRightOf(Point{1, 0.5}))
}

func TestSignedPolygonArea(t *testing.T) {
	// CCW unit square
	square := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	assert.Greater(t, SignedPolygonArea(square), 0.0)
}
