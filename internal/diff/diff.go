// Package diff computes line-level differences between two versions of a
// text document. The comparison is based on the longest common subsequence
// of the two line arrays, so the number of added plus removed lines is
// minimal for the configured equality rule.
package diff

import (
	"fmt"
	"strings"
	"unicode"
)

// LineKind classifies a single line of diff output.
type LineKind int

const (
	// Unchanged lines appear in both versions.
	Unchanged LineKind = iota
	// Added lines appear only in the new version.
	Added
	// Removed lines appear only in the old version.
	Removed
	// ModifiedKind is reserved and never produced by Compute.
	ModifiedKind
)

// String returns the string representation of a line kind.
func (k LineKind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	case ModifiedKind:
		return "modified"
	default:
		return "unknown"
	}
}

// Prefix returns the unified-diff prefix character for this line kind.
func (k LineKind) Prefix() string {
	switch k {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return " "
	}
}

// Line is a single line of diff output. OldLine and NewLine are 1-based;
// OldLine is 0 for added lines and NewLine is 0 for removed lines. Content
// is always the raw input line, regardless of whitespace options.
type Line struct {
	Kind    LineKind
	Content string
	OldLine int
	NewLine int
}

// Hunk is a contiguous run of diff lines with positional counters into
// both versions.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Result is the outcome of one Compute call. It carries a single hunk
// spanning the whole comparison, so every input line of both documents
// appears in exactly one Line.
type Result struct {
	Hunks     []Hunk
	Added     int
	Removed   int
	Unchanged int
}

// IsIdentical reports whether the two inputs compared equal under the
// engine's equality rule.
func (r *Result) IsIdentical() bool {
	return r.Added == 0 && r.Removed == 0
}

// Lines returns the flattened line sequence across all hunks.
func (r *Result) Lines() []Line {
	if len(r.Hunks) == 1 {
		return r.Hunks[0].Lines
	}
	var lines []Line
	for _, h := range r.Hunks {
		lines = append(lines, h.Lines...)
	}
	return lines
}

// Summary returns a short human-readable description of the result.
func (r *Result) Summary() string {
	if r.IsIdentical() {
		return "no changes"
	}
	var parts []string
	if r.Added > 0 {
		parts = append(parts, fmt.Sprintf("+%d", r.Added))
	}
	if r.Removed > 0 {
		parts = append(parts, fmt.Sprintf("-%d", r.Removed))
	}
	return strings.Join(parts, " ")
}

// Options controls line equality and region collapsing.
type Options struct {
	// ContextLines is the number of unchanged lines kept visible on each
	// side of a change.
	ContextLines int
	// CollapseThreshold is the minimum length of an unchanged run before
	// it becomes collapsible.
	CollapseThreshold int
	// IgnoreWhitespace collapses internal whitespace runs and trims both
	// ends before comparing lines.
	IgnoreWhitespace bool
	// IgnoreTrailingWhitespace trims only trailing whitespace before
	// comparing. Ignored when IgnoreWhitespace is set.
	IgnoreTrailingWhitespace bool
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		ContextLines:      3,
		CollapseThreshold: 10,
	}
}

// Engine computes diffs under a fixed set of options and owns the
// collapsible-region state of the most recent FindCollapsibleRegions call.
// Compute is a pure function and safe for concurrent use; the region
// operations mutate engine state and are not.
type Engine struct {
	opts    Options
	regions []Region
}

// NewEngine creates an engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// Compute diffs oldText against newText line by line.
func (e *Engine) Compute(oldText, newText string) *Result {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	oldKeys := e.normalize(oldLines)
	newKeys := e.normalize(newLines)

	common := longestCommon(oldKeys, newKeys)

	result := &Result{}
	var lines []Line

	oldIdx, newIdx, lcsIdx := 0, 0, 0
	for oldIdx < len(oldLines) || newIdx < len(newLines) {
		switch {
		case lcsIdx < len(common) &&
			oldIdx < len(oldLines) && newIdx < len(newLines) &&
			oldKeys[oldIdx] == newKeys[newIdx] &&
			oldKeys[oldIdx] == common[lcsIdx]:
			lines = append(lines, Line{
				Kind:    Unchanged,
				Content: oldLines[oldIdx],
				OldLine: oldIdx + 1,
				NewLine: newIdx + 1,
			})
			result.Unchanged++
			oldIdx++
			newIdx++
			lcsIdx++

		case oldIdx < len(oldLines) && (lcsIdx >= len(common) || oldKeys[oldIdx] != common[lcsIdx]):
			lines = append(lines, Line{
				Kind:    Removed,
				Content: oldLines[oldIdx],
				OldLine: oldIdx + 1,
			})
			result.Removed++
			oldIdx++

		default:
			lines = append(lines, Line{
				Kind:    Added,
				Content: newLines[newIdx],
				NewLine: newIdx + 1,
			})
			result.Added++
			newIdx++
		}
	}

	if len(lines) > 0 {
		hunk := Hunk{
			OldCount: len(oldLines),
			NewCount: len(newLines),
			Lines:    lines,
		}
		if len(oldLines) > 0 {
			hunk.OldStart = 1
		}
		if len(newLines) > 0 {
			hunk.NewStart = 1
		}
		result.Hunks = []Hunk{hunk}
	}

	return result
}

// splitLines splits content on newlines. A trailing newline produces no
// phantom empty final line, so "a\nb\n" and "a\nb" both yield two lines.
// Empty content yields no lines.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// normalize maps lines to the comparison keys implied by the whitespace
// options. With no options set the lines themselves are the keys.
func (e *Engine) normalize(lines []string) []string {
	switch {
	case e.opts.IgnoreWhitespace:
		keys := make([]string, len(lines))
		for i, line := range lines {
			keys[i] = strings.Join(strings.Fields(line), " ")
		}
		return keys
	case e.opts.IgnoreTrailingWhitespace:
		keys := make([]string, len(lines))
		for i, line := range lines {
			keys[i] = strings.TrimRightFunc(line, unicode.IsSpace)
		}
		return keys
	default:
		return lines
	}
}

// longestCommon computes the longest common subsequence of a and b using
// the full O(m*n) dynamic-programming table.
func longestCommon(a, b []string) []string {
	m, n := len(a), len(b)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	lcs := make([]string, 0, dp[m][n])
	i, j := m, n
	for i > 0 && j > 0 {
		if a[i-1] == b[j-1] {
			lcs = append(lcs, a[i-1])
			i--
			j--
		} else if dp[i-1][j] > dp[i][j-1] {
			i--
		} else {
			j--
		}
	}

	for l, r := 0, len(lcs)-1; l < r; l, r = l+1, r-1 {
		lcs[l], lcs[r] = lcs[r], lcs[l]
	}
	return lcs
}
