package polyfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/seidel/engine"
	"github.com/osuushi/seidel/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPolySingleOutline(t *testing.T) {
	in := "0 0\n4 0\n4 4\n0 4\n"
	outlines, err := ReadPoly(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, outlines, 1)
	assert.Equal(t, engine.Outline{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, outlines[0])
}

func TestReadPolyMultipleOutlines(t *testing.T) {
	in := "0 0\n10 0\n10 10\n0 10\n*\n3 3\n3 7\n7 7\n7 3\n"
	outlines, err := ReadPoly(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, outlines, 2)
	assert.Len(t, outlines[0], 4)
	assert.Len(t, outlines[1], 4)
}

func TestReadPolySkipsEmptyBlocks(t *testing.T) {
	in := "0 0\n1 0\n1 1\n*\n*\n2 2\n3 2\n3 3\n"
	outlines, err := ReadPoly(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, outlines, 2)
}

func TestReadPolyRejectsBadLine(t *testing.T) {
	_, err := ReadPoly(strings.NewReader("0 0\nbad\n"))
	assert.Error(t, err)
}

func TestWriteReadPolyRoundTrip(t *testing.T) {
	outlines := engine.OutlineList{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}},
		{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1.5, Y: 1.5}},
	}
	var buf bytes.Buffer
	require.NoError(t, WritePoly(&buf, outlines))

	got, err := ReadPoly(&buf)
	require.NoError(t, err)
	assert.Equal(t, outlines, got)
}

func TestTindRoundTrip(t *testing.T) {
	triangles := []engine.Triangle{{A: 0, B: 1, C: 2}, {A: 0, B: 2, C: 3}}
	var buf bytes.Buffer
	require.NoError(t, WriteTind(&buf, triangles))

	got, err := ReadTind(&buf)
	require.NoError(t, err)
	assert.Equal(t, triangles, got)
}

func TestTptsRoundTrip(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}
	triangles := []engine.Triangle{{A: 0, B: 1, C: 2}}

	var buf bytes.Buffer
	require.NoError(t, WriteTpts(&buf, points, triangles))

	got, err := ReadTpts(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, points[0], got[0][0])
	assert.Equal(t, points[1], got[0][1])
	assert.Equal(t, points[2], got[0][2])
}
