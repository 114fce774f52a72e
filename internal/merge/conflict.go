// Package merge detects textual three-way merge-conflict markers in a
// document, tracks per-file resolution state, and reassembles the resolved
// document once every conflict has a chosen resolution.
package merge

import "strings"

// Marker tokens as written by three-way merge tools. Start and end markers
// may carry a label after the token; the separator line holds nothing else.
const (
	startMarker = "<<<<<<<"
	sepMarker   = "======="
	endMarker   = ">>>>>>>"
)

// Default labels used when a marker carries none.
const (
	defaultOursLabel   = "HEAD"
	defaultTheirsLabel = "incoming"
)

// Resolution is the chosen outcome for one conflict.
type Resolution int

const (
	// Unresolved means no choice has been made yet.
	Unresolved Resolution = iota
	// Ours keeps the current side's lines.
	Ours
	// Theirs keeps the incoming side's lines.
	Theirs
	// Both keeps ours followed by theirs.
	Both
	// Custom keeps caller-supplied replacement lines.
	Custom
)

// String returns the string representation of a resolution.
func (r Resolution) String() string {
	switch r {
	case Unresolved:
		return "unresolved"
	case Ours:
		return "ours"
	case Theirs:
		return "theirs"
	case Both:
		return "both"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// Conflict is one marker-delimited conflict region. StartLine,
// SeparatorLine and EndLine are 0-based indices of the three marker lines
// in the original document. A custom resolution stores its replacement
// lines in OursContent, so ResolvedContent needs no extra state.
type Conflict struct {
	ID            int
	StartLine     int
	SeparatorLine int
	EndLine       int
	OursContent   []string
	TheirsContent []string
	OursLabel     string
	TheirsLabel   string
	Resolution    Resolution
}

// Resolved reports whether a resolution has been chosen.
func (c *Conflict) Resolved() bool {
	return c.Resolution != Unresolved
}

// ResolvedContent returns the lines the conflict resolves to, or nil while
// it is unresolved.
func (c *Conflict) ResolvedContent() []string {
	switch c.Resolution {
	case Unresolved:
		return nil
	case Ours:
		return c.OursContent
	case Theirs:
		return c.TheirsContent
	case Both:
		lines := make([]string, 0, len(c.OursContent)+len(c.TheirsContent))
		lines = append(lines, c.OursContent...)
		return append(lines, c.TheirsContent...)
	case Custom:
		return c.OursContent
	default:
		return nil
	}
}

// ConflictFile aggregates the conflicts detected in one file, in document
// order.
type ConflictFile struct {
	Path      string
	Conflicts []*Conflict
}

// Total returns the number of detected conflicts.
func (f *ConflictFile) Total() int {
	return len(f.Conflicts)
}

// ResolvedCount returns how many conflicts have a chosen resolution.
func (f *ConflictFile) ResolvedCount() int {
	n := 0
	for _, c := range f.Conflicts {
		if c.Resolved() {
			n++
		}
	}
	return n
}

// FullyResolved reports whether every conflict has a chosen resolution.
func (f *ConflictFile) FullyResolved() bool {
	return f.ResolvedCount() == len(f.Conflicts)
}

func isStartMarker(line string) bool {
	return strings.HasPrefix(line, startMarker)
}

func isEndMarker(line string) bool {
	return strings.HasPrefix(line, endMarker)
}

// markerLabel extracts the label text after a start or end marker token,
// falling back to the given default.
func markerLabel(line, fallback string) string {
	label := strings.TrimSpace(line[len(startMarker):])
	if label == "" {
		return fallback
	}
	return label
}

// splitLines splits content on newlines. A trailing newline produces no
// phantom empty final line; empty content yields no lines. Matches the
// diff engine's splitting.
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
