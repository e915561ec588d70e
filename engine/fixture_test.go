package engine

import (
	"embed"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/seidel/geom"
	"github.com/stretchr/testify/require"
)

// This is not a full (or even correct) SVG parser. It finds the single
// <polygon> element in a fixture and turns its points attribute into an
// Outline, reversing it to CCW if the SVG authored it clockwise (SVG's Y
// axis points down, so a visually CCW shape in an editor is often
// numerically CW here).
//
// Fixtures live alongside this file in fixtures/, by name sans extension.

//go:embed fixtures
var fixturesFS embed.FS

func loadFixture(t *testing.T, name string) Outline {
	t.Helper()
	f, err := fixturesFS.Open("fixtures/" + name + ".svg")
	require.NoError(t, err)
	defer f.Close()

	rootEl, err := svgparser.Parse(f, true)
	require.NoError(t, err)

	polygons := rootEl.FindAll("polygon")
	require.Len(t, polygons, 1, "fixture %q must contain exactly one <polygon>", name)

	pointStrings := strings.Fields(strings.ReplaceAll(polygons[0].Attributes["points"], ",", " "))
	require.Zero(t, len(pointStrings)%2, "odd number of coordinate components in fixture %q", name)

	outline := make(Outline, 0, len(pointStrings)/2)
	for i := 0; i < len(pointStrings); i += 2 {
		x, err := strconv.ParseFloat(pointStrings[i], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(pointStrings[i+1], 64)
		require.NoError(t, err)
		outline = append(outline, geom.Point{X: x, Y: y})
	}

	if geom.SignedPolygonArea(outline) < 0 {
		for i, j := 0, len(outline)-1; i < j; i, j = i+1, j-1 {
			outline[i], outline[j] = outline[j], outline[i]
		}
	}
	return outline
}

func TestFixtureTriangleTriangulates(t *testing.T) {
	outline := loadFixture(t, "triangle")
	tr := New(OutlineList{outline})
	require.True(t, tr.IsSimplePolygon())
	require.True(t, tr.BuildTrapezoidTree(nil))

	tris, ok := tr.Triangulate(nil)
	require.True(t, ok)
	require.Len(t, tris, 1)
}

func TestFixtureConcaveCTriangulates(t *testing.T) {
	outline := loadFixture(t, "concave_c")
	tr := New(OutlineList{outline})
	require.True(t, tr.IsSimplePolygon())
	require.True(t, tr.BuildTrapezoidTree(nil))

	tris, ok := tr.Triangulate(nil)
	require.True(t, ok)
	require.Len(t, tris, len(outline)-2)
}
