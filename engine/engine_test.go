package engine

import (
	"testing"

	"github.com/osuushi/seidel/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func sumTriangleAreas(points []geom.Point, tris []Triangle) float64 {
	total := 0.0
	for _, tr := range tris {
		a, b, c := points[tr.A], points[tr.B], points[tr.C]
		total += geom.SignedTriangleArea(a, b, c) / 2
	}
	return total
}

func TestTriangleS1(t *testing.T) {
	outline := Outline{pt(0, 0), pt(4, 0), pt(2, 3)}
	tr := New(OutlineList{outline})
	require.True(t, tr.IsSimplePolygon())

	var tinfo TrapInfo
	require.True(t, tr.BuildTrapezoidTree(&tinfo))
	assert.Greater(t, tinfo.NumTrapezoids, 0)

	tris, ok := tr.Triangulate(nil)
	require.True(t, ok)
	assert.Len(t, tris, 1)

	polyArea := geom.SignedPolygonArea([]geom.Point{pt(0, 0), pt(4, 0), pt(2, 3)})
	assert.InDelta(t, polyArea, sumTriangleAreas(tr.Points(), tris), 1e-6)
}

func TestSquareS2(t *testing.T) {
	outline := Outline{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}
	tr := New(OutlineList{outline})
	require.True(t, tr.IsSimplePolygon())
	require.True(t, tr.BuildTrapezoidTree(nil))

	tris, ok := tr.Triangulate(nil)
	require.True(t, ok)
	assert.Len(t, tris, 2)

	polyArea := geom.SignedPolygonArea([]geom.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)})
	assert.InDelta(t, polyArea, sumTriangleAreas(tr.Points(), tris), 1e-6)
}

func TestSquareWithHoleS3(t *testing.T) {
	outer := Outline{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)} // CCW
	hole := Outline{pt(3, 3), pt(3, 7), pt(7, 7), pt(7, 3)}      // CW

	tr := New(OutlineList{outer, hole})
	require.True(t, tr.IsSimplePolygon())
	require.True(t, tr.BuildTrapezoidTree(nil))

	tris, ok := tr.Triangulate(nil)
	require.True(t, ok)
	require.NotEmpty(t, tris)

	outerArea := geom.SignedPolygonArea([]geom.Point{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)})
	holeArea := geom.SignedPolygonArea([]geom.Point{pt(3, 3), pt(3, 7), pt(7, 7), pt(7, 3)})
	expected := outerArea + holeArea // hole is CW, so its signed area is negative
	assert.InDelta(t, expected, sumTriangleAreas(tr.Points(), tris), 1e-6)
}

func TestConcaveCShapeS4(t *testing.T) {
	outline := Outline{
		pt(0, 0), pt(6, 0), pt(6, 2), pt(2, 2),
		pt(2, 4), pt(6, 4), pt(6, 6), pt(0, 6),
	}
	tr := New(OutlineList{outline})
	require.True(t, tr.IsSimplePolygon())
	require.True(t, tr.BuildTrapezoidTree(nil))

	tris, ok := tr.Triangulate(nil)
	require.True(t, ok)
	assert.Len(t, tris, len(outline)-2)
}

func TestBowTieIsNotSimpleS5(t *testing.T) {
	outline := Outline{pt(0, 0), pt(4, 4), pt(4, 0), pt(0, 4)}
	tr := New(OutlineList{outline})
	assert.False(t, tr.IsSimplePolygon())
	assert.False(t, tr.BuildTrapezoidTree(nil))
}

func TestHorizontalCollinearityS6(t *testing.T) {
	outline := Outline{pt(0, 0), pt(2, 0), pt(4, 0), pt(4, 4), pt(0, 4)}
	tr := New(OutlineList{outline})
	require.True(t, tr.IsSimplePolygon())
	require.True(t, tr.BuildTrapezoidTree(nil))

	tris, ok := tr.Triangulate(nil)
	require.True(t, ok)
	assert.Len(t, tris, len(outline)-2)
}

func TestDegenerateOutlineRejected(t *testing.T) {
	tr := New(OutlineList{{pt(0, 0), pt(1, 1)}})
	assert.False(t, tr.IsSimplePolygon())
}

func TestDeleteTrapezoidTreeAllowsRebuild(t *testing.T) {
	outline := Outline{pt(0, 0), pt(4, 0), pt(2, 3)}
	tr := New(OutlineList{outline})
	require.True(t, tr.BuildTrapezoidTree(nil))
	tr.DeleteTrapezoidTree()
	assert.True(t, tr.BuildTrapezoidTree(nil))
}

func TestStepDriverMatchesDirectBuild(t *testing.T) {
	outline := Outline{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}
	tr := New(OutlineList{outline})

	driver := NewStepDriver(tr)
	steps := 0
	for !driver.Done() {
		steps += driver.Step(1)
		if steps > 10000 {
			t.Fatal("step driver did not converge")
		}
	}
	assert.Len(t, driver.Result(), 2)

	direct := New(OutlineList{outline})
	require.True(t, direct.BuildTrapezoidTree(nil))
	directTris, ok := direct.Triangulate(nil)
	require.True(t, ok)
	assert.ElementsMatch(t, directTris, driver.Result())
}
