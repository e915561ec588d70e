package seidel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test; the internals are exercised in depth under engine.
func TestTriangulate(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	triangles, ok := Triangulate(points)
	assert.True(t, ok)
	assert.Len(t, triangles, 2)
}
