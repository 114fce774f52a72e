package diff

import (
	"fmt"
	"strings"
)

// Unified renders the result in standard unified diff format. Changes are
// grouped into hunks with the engine's configured number of context lines;
// the result itself is not modified.
func (e *Engine) Unified(r *Result, oldName, newName string) string {
	if r.IsIdentical() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("--- %s\n", oldName))
	sb.WriteString(fmt.Sprintf("+++ %s\n", newName))

	lines := r.Lines()
	for _, span := range contextSpans(lines, e.opts.ContextLines) {
		hunk := buildHunk(lines[span[0] : span[1]+1])
		sb.WriteString(fmt.Sprintf("@@ -%d,%d +%d,%d @@\n",
			hunk.OldStart, hunk.OldCount,
			hunk.NewStart, hunk.NewCount))
		for _, line := range hunk.Lines {
			sb.WriteString(line.Kind.Prefix())
			sb.WriteString(line.Content)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// contextSpans returns inclusive [start, end] index pairs covering every
// changed line plus context on both sides. Spans whose padded edges touch
// or overlap are merged into one.
func contextSpans(lines []Line, context int) [][2]int {
	var spans [][2]int
	for i, line := range lines {
		if line.Kind == Unchanged {
			continue
		}
		start := max(0, i-context)
		end := min(len(lines)-1, i+context)
		if n := len(spans); n > 0 && start <= spans[n-1][1]+1 {
			spans[n-1][1] = end
		} else {
			spans = append(spans, [2]int{start, end})
		}
	}
	return spans
}

// buildHunk derives positional counters for a slice of diff lines. The
// start positions come from the first line carrying a number on each side;
// the counts are how many lines carry one.
func buildHunk(lines []Line) Hunk {
	hunk := Hunk{Lines: lines}
	for _, line := range lines {
		if line.OldLine > 0 {
			if hunk.OldStart == 0 {
				hunk.OldStart = line.OldLine
			}
			hunk.OldCount++
		}
		if line.NewLine > 0 {
			if hunk.NewStart == 0 {
				hunk.NewStart = line.NewLine
			}
			hunk.NewCount++
		}
	}
	return hunk
}
