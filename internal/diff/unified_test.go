package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnified(t *testing.T) {
	opts := DefaultOptions()
	opts.ContextLines = 1
	e := NewEngine(opts)

	oldText := "a\nb\nc\nd\ne\nf\ng"
	newText := "a\nb\nX\nd\ne\nf\nY"

	r := e.Compute(oldText, newText)
	out := e.Unified(r, "old.txt", "new.txt")

	assert.True(t, strings.HasPrefix(out, "--- old.txt\n+++ new.txt\n"))
	assert.Contains(t, out, "-c\n")
	assert.Contains(t, out, "+X\n")
	assert.Contains(t, out, "-g\n")
	assert.Contains(t, out, "+Y\n")

	// Two changes separated by more than twice the context give two hunks.
	assert.Equal(t, 2, strings.Count(out, "@@ -"))

	// Far-away context is not emitted.
	assert.NotContains(t, out, " e\n")
}

func TestUnified_HunkHeaders(t *testing.T) {
	opts := DefaultOptions()
	opts.ContextLines = 1
	e := NewEngine(opts)

	r := e.Compute("a\nb\nc\nd", "a\nb\nx\nd")
	out := e.Unified(r, "old", "new")

	// The hunk covers b, -c, +x, d.
	assert.Contains(t, out, "@@ -2,3 +2,3 @@\n")
}

func TestUnified_Identical(t *testing.T) {
	e := NewEngine(DefaultOptions())
	r := e.Compute("same\n", "same\n")
	assert.Empty(t, e.Unified(r, "a", "b"))
}

func TestUnified_AdjacentChangesMerge(t *testing.T) {
	opts := DefaultOptions()
	opts.ContextLines = 3
	e := NewEngine(opts)

	// Changes three lines apart share context and must merge into one hunk.
	r := e.Compute("a\nb\nc\nd\ne", "x\nb\nc\nd\ny")
	out := e.Unified(r, "old", "new")

	require.Equal(t, 1, strings.Count(out, "@@ -"))
	assert.Contains(t, out, "@@ -1,5 +1,5 @@\n")
}
