package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempPoly(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "square.poly")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestBenchmarkModeReportsStats(t *testing.T) {
	path := writeTempPoly(t, "0 0\n4 0\n4 4\n0 4\n")

	var out, errBuf bytes.Buffer
	code := run([]string{"-b", path, "3"}, &out, &errBuf)
	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "points: 4")
	assert.Contains(t, out.String(), "iterations: 3")
}

func TestBenchmarkModeRejectsBadIterationCount(t *testing.T) {
	path := writeTempPoly(t, "0 0\n4 0\n4 4\n0 4\n")
	var out, errBuf bytes.Buffer
	code := run([]string{"-b", path, "not-a-number"}, &out, &errBuf)
	assert.Equal(t, -1, code)
	assert.Contains(t, errBuf.String(), "invalid iteration count")
}

func TestBenchmarkModeRejectsMissingFile(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"-b", "/nonexistent/path.poly", "1"}, &out, &errBuf)
	assert.Equal(t, -1, code)
}

func TestRootWithoutBenchFlagReportsOutOfScope(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run(nil, &out, &errBuf)
	assert.Equal(t, -1, code)
	assert.Contains(t, errBuf.String(), "out of scope for this module")
}
