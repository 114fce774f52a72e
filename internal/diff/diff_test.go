package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Basic(t *testing.T) {
	e := NewEngine(DefaultOptions())

	r := e.Compute("one\ntwo\nthree", "one\nthree\nfour")

	assert.Equal(t, 1, r.Added)
	assert.Equal(t, 1, r.Removed)
	assert.Equal(t, 2, r.Unchanged)
	assert.False(t, r.IsIdentical())

	lines := r.Lines()
	require.Len(t, lines, 4)

	assert.Equal(t, Unchanged, lines[0].Kind)
	assert.Equal(t, "one", lines[0].Content)
	assert.Equal(t, 1, lines[0].OldLine)
	assert.Equal(t, 1, lines[0].NewLine)

	assert.Equal(t, Removed, lines[1].Kind)
	assert.Equal(t, "two", lines[1].Content)
	assert.Equal(t, 2, lines[1].OldLine)
	assert.Equal(t, 0, lines[1].NewLine)

	assert.Equal(t, Unchanged, lines[2].Kind)
	assert.Equal(t, "three", lines[2].Content)

	assert.Equal(t, Added, lines[3].Kind)
	assert.Equal(t, "four", lines[3].Content)
	assert.Equal(t, 0, lines[3].OldLine)
	assert.Equal(t, 3, lines[3].NewLine)
}

func TestCompute_Identity(t *testing.T) {
	e := NewEngine(DefaultOptions())
	content := "alpha\nbeta\ngamma\n"

	r := e.Compute(content, content)

	assert.True(t, r.IsIdentical())
	assert.Equal(t, 0, r.Added)
	assert.Equal(t, 0, r.Removed)
	assert.Equal(t, 3, r.Unchanged)
}

func TestCompute_Completeness(t *testing.T) {
	tests := []struct {
		name    string
		oldText string
		newText string
	}{
		{"both empty", "", ""},
		{"new file", "", "a\nb\nc"},
		{"deleted file", "a\nb\nc", ""},
		{"disjoint", "a\nb", "x\ny\nz"},
		{"interleaved", "a\nb\nc\nd", "b\nx\nd\ny"},
		{"repeated lines", "a\na\nb\na", "a\nb\na\na"},
	}

	e := NewEngine(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldLines := splitLines(tt.oldText)
			newLines := splitLines(tt.newText)

			r := e.Compute(tt.oldText, tt.newText)

			// Every input line appears in exactly one output line.
			assert.Equal(t, len(oldLines), r.Unchanged+r.Removed)
			assert.Equal(t, len(newLines), r.Unchanged+r.Added)
			assert.Len(t, r.Lines(), r.Unchanged+r.Added+r.Removed)
		})
	}
}

func TestCompute_Minimality(t *testing.T) {
	tests := []struct {
		name    string
		oldText string
		newText string
	}{
		{"single swap", "one\ntwo\nthree", "one\nthree\nfour"},
		{"disjoint", "a\nb\nc", "x\ny\nz"},
		{"common tail", "x\na\nb", "y\na\nb"},
		{"shuffle", "a\nb\nc\nd\ne", "c\na\nd\nb\ne"},
	}

	e := NewEngine(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldLines := splitLines(tt.oldText)
			newLines := splitLines(tt.newText)
			lcsLen := len(longestCommon(oldLines, newLines))

			r := e.Compute(tt.oldText, tt.newText)

			want := len(oldLines) + len(newLines) - 2*lcsLen
			assert.Equal(t, want, r.Added+r.Removed)
		})
	}
}

func TestCompute_IgnoreWhitespace(t *testing.T) {
	strict := NewEngine(DefaultOptions())
	r := strict.Compute("a  b", "a b")
	assert.Equal(t, 1, r.Added)
	assert.Equal(t, 1, r.Removed)

	opts := DefaultOptions()
	opts.IgnoreWhitespace = true
	loose := NewEngine(opts)
	r = loose.Compute("a  b", "a b")
	assert.True(t, r.IsIdentical())

	// Content keeps the raw text even when equality ignored whitespace.
	require.Len(t, r.Lines(), 1)
	assert.Equal(t, "a  b", r.Lines()[0].Content)
}

func TestCompute_IgnoreTrailingWhitespace(t *testing.T) {
	opts := DefaultOptions()
	opts.IgnoreTrailingWhitespace = true
	e := NewEngine(opts)

	r := e.Compute("code();  \n  keep", "code();\n  keep")
	assert.True(t, r.IsIdentical())

	// Leading whitespace still matters.
	r = e.Compute("  a", "a")
	assert.False(t, r.IsIdentical())
}

func TestCompute_SingleHunkCounters(t *testing.T) {
	e := NewEngine(DefaultOptions())

	r := e.Compute("a\nb\nc", "a\nx\nc\nd")
	require.Len(t, r.Hunks, 1)

	hunk := r.Hunks[0]
	assert.Equal(t, 1, hunk.OldStart)
	assert.Equal(t, 3, hunk.OldCount)
	assert.Equal(t, 1, hunk.NewStart)
	assert.Equal(t, 4, hunk.NewCount)
}

func TestCompute_EmptyInputs(t *testing.T) {
	e := NewEngine(DefaultOptions())

	r := e.Compute("", "")
	assert.True(t, r.IsIdentical())
	assert.Empty(t, r.Hunks)

	r = e.Compute("", "a\nb")
	assert.Equal(t, 2, r.Added)
	require.Len(t, r.Hunks, 1)
	assert.Equal(t, 0, r.Hunks[0].OldStart)
	assert.Equal(t, 0, r.Hunks[0].OldCount)

	r = e.Compute("a\nb", "")
	assert.Equal(t, 2, r.Removed)
	assert.Equal(t, 0, r.Hunks[0].NewCount)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single", "a", []string{"a"}},
		{"single with newline", "a\n", []string{"a"}},
		{"multiple", "a\nb\nc", []string{"a", "b", "c"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank interior line", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.content))
		})
	}
}

func TestLongestCommon(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want []string
	}{
		{"identical", []string{"a", "b", "c"}, []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"disjoint", []string{"a", "b"}, []string{"x", "y"}, nil},
		{"partial", []string{"a", "b", "c", "d"}, []string{"a", "x", "c", "d"}, []string{"a", "c", "d"}},
		{"one empty", nil, []string{"a"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := longestCommon(tt.a, tt.b)
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLineKind(t *testing.T) {
	assert.Equal(t, "unchanged", Unchanged.String())
	assert.Equal(t, "added", Added.String())
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "modified", ModifiedKind.String())

	assert.Equal(t, " ", Unchanged.Prefix())
	assert.Equal(t, "+", Added.Prefix())
	assert.Equal(t, "-", Removed.Prefix())
}

func TestSummary(t *testing.T) {
	e := NewEngine(DefaultOptions())

	assert.Equal(t, "no changes", e.Compute("a", "a").Summary())
	assert.Equal(t, "+1 -1", e.Compute("a", "b").Summary())
	assert.Equal(t, "+2", e.Compute("a", "a\nb\nc").Summary())
	assert.Equal(t, "-1", e.Compute("a\nb", "a").Summary())
}
