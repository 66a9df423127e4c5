package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err = app.Run(append([]string{"bstree"}, args...))
	return out.String(), errOut.String(), err
}

func TestLayoutCommand(t *testing.T) {
	out, _, err := runApp(t, "--spacing", "2", "layout", "5", "3", "8", "4", "6")
	require.NoError(t, err)
	assert.Equal(t, "  5\n3   8\n  4 6\n", out)
}

func TestDepthCommand(t *testing.T) {
	out, _, err := runApp(t, "depth", "2", "1", "3", "4", "5")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, _, err = runApp(t, "depth")
	assert.ErrorContains(t, err, "empty tree")
}

func TestWalkCommandWithRemovals(t *testing.T) {
	out, _, err := runApp(t, "walk", "--remove", "5", "--remove", "42", "5", "2", "8", "1", "3", "7", "9")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n7\n8\n9\n", out)
}

func TestDuplicateKeysAreSkipped(t *testing.T) {
	out, stderr, err := runApp(t, "walk", "2", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
	assert.Contains(t, stderr, "skipping duplicate key")
}

func TestSearchCommand(t *testing.T) {
	out, _, err := runApp(t, "--policy", "count", "search", "--key", "3", "3", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "found 3 (occurrences: 2)\n", out)

	out, _, err = runApp(t, "search", "--key", "4", "3", "1")
	require.NoError(t, err)
	assert.Equal(t, "not found\n", out)
}

func TestRenderCommand(t *testing.T) {
	out, _, err := runApp(t, "render", "2", "1", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2", lines[0])
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bstree.ini")
	require.NoError(t, os.WriteFile(path, []byte("[tree]\npolicy = allow-equal-right\n\n[log]\nlevel = debug\n"), 0o644))

	out, stderr, err := runApp(t, "--config", path, "walk", "2", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n2\n", out)
	assert.Contains(t, stderr, "inserted")
}

func TestInvalidArguments(t *testing.T) {
	_, _, err := runApp(t, "walk", "one")
	assert.ErrorContains(t, err, `invalid key "one"`)

	_, _, err = runApp(t, "--policy", "chain", "walk", "1")
	assert.ErrorContains(t, err, "unknown duplicate key policy")
}
