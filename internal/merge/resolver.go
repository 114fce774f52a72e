package merge

import (
	"sort"
	"strings"
)

// Resolver owns a table of conflict files keyed by path and assigns each
// detected conflict an instance-unique id. It is not safe for concurrent
// use; hosts either guard it with a lock or keep one resolver per merge
// session.
type Resolver struct {
	files  map[string]*ConflictFile
	nextID int
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{files: make(map[string]*ConflictFile)}
}

// Detect scans content for conflict marker blocks and records the result
// for path, replacing any prior record. A start marker with no matching
// separator and end marker is skipped rather than reported; scanning
// resumes on the line after it, so malformed marker text in mid-edit files
// never fails the scan. Matched blocks never overlap or nest.
func (r *Resolver) Detect(path, content string) *ConflictFile {
	lines := splitLines(content)
	file := &ConflictFile{Path: path}

	i := 0
	for i < len(lines) {
		if !isStartMarker(lines[i]) {
			i++
			continue
		}

		sep := -1
		for j := i + 1; j < len(lines); j++ {
			if lines[j] == sepMarker {
				sep = j
				break
			}
		}

		end := -1
		if sep >= 0 {
			for j := sep + 1; j < len(lines); j++ {
				if isEndMarker(lines[j]) {
					end = j
					break
				}
			}
		}

		if sep < 0 || end < 0 {
			i++
			continue
		}

		conflict := &Conflict{
			ID:            r.nextID,
			StartLine:     i,
			SeparatorLine: sep,
			EndLine:       end,
			OursContent:   append([]string(nil), lines[i+1:sep]...),
			TheirsContent: append([]string(nil), lines[sep+1:end]...),
			OursLabel:     markerLabel(lines[i], defaultOursLabel),
			TheirsLabel:   markerLabel(lines[end], defaultTheirsLabel),
		}
		r.nextID++
		file.Conflicts = append(file.Conflicts, conflict)

		i = end + 1
	}

	r.files[path] = file
	return file
}

// lookup finds a conflict by file path and id.
func (r *Resolver) lookup(path string, id int) *Conflict {
	file, ok := r.files[path]
	if !ok {
		return nil
	}
	for _, c := range file.Conflicts {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// AcceptOurs resolves the conflict to its ours side. It returns false if
// the path or id is unknown.
func (r *Resolver) AcceptOurs(path string, id int) bool {
	c := r.lookup(path, id)
	if c == nil {
		return false
	}
	c.Resolution = Ours
	return true
}

// AcceptTheirs resolves the conflict to its theirs side.
func (r *Resolver) AcceptTheirs(path string, id int) bool {
	c := r.lookup(path, id)
	if c == nil {
		return false
	}
	c.Resolution = Theirs
	return true
}

// AcceptBoth resolves the conflict to ours followed by theirs, with no
// separator between them.
func (r *Resolver) AcceptBoth(path string, id int) bool {
	c := r.lookup(path, id)
	if c == nil {
		return false
	}
	c.Resolution = Both
	return true
}

// AcceptCustom resolves the conflict to the given replacement lines.
func (r *Resolver) AcceptCustom(path string, id int, lines []string) bool {
	c := r.lookup(path, id)
	if c == nil {
		return false
	}
	c.OursContent = append([]string(nil), lines...)
	c.Resolution = Custom
	return true
}

// Apply rebuilds path's document from original, replacing each marker
// block with its resolved content. It returns ok=false until every
// conflict in the file is resolved. Text outside the marker blocks is
// preserved byte for byte, including the trailing-newline convention.
func (r *Resolver) Apply(path, original string) (string, bool) {
	file, ok := r.files[path]
	if !ok || !file.FullyResolved() {
		return "", false
	}

	lines := splitLines(original)
	out := make([]string, 0, len(lines))

	next := 0
	for i := 0; i < len(lines); {
		if next < len(file.Conflicts) && i == file.Conflicts[next].StartLine {
			c := file.Conflicts[next]
			out = append(out, c.ResolvedContent()...)
			i = c.EndLine + 1
			next++
			continue
		}
		out = append(out, lines[i])
		i++
	}

	resolved := strings.Join(out, "\n")
	if strings.HasSuffix(original, "\n") && resolved != "" {
		resolved += "\n"
	}
	return resolved, true
}

// Conflicts returns the conflicts recorded for path, or nil if the path is
// unknown.
func (r *Resolver) Conflicts(path string) []*Conflict {
	file, ok := r.files[path]
	if !ok {
		return nil
	}
	return file.Conflicts
}

// File returns the recorded conflict file for path, or nil.
func (r *Resolver) File(path string) *ConflictFile {
	return r.files[path]
}

// UnresolvedConflicts returns path's conflicts that still need a choice.
func (r *Resolver) UnresolvedConflicts(path string) []*Conflict {
	var unresolved []*Conflict
	for _, c := range r.Conflicts(path) {
		if !c.Resolved() {
			unresolved = append(unresolved, c)
		}
	}
	return unresolved
}

// NextUnresolved returns the first unresolved conflict starting strictly
// after the given line, wrapping around to the first unresolved conflict
// overall when none follows. It returns nil when everything is resolved.
func (r *Resolver) NextUnresolved(path string, afterLine int) *Conflict {
	unresolved := r.UnresolvedConflicts(path)
	if len(unresolved) == 0 {
		return nil
	}
	for _, c := range unresolved {
		if c.StartLine > afterLine {
			return c
		}
	}
	return unresolved[0]
}

// HasConflicts reports whether path has at least one detected conflict.
func (r *Resolver) HasConflicts(path string) bool {
	file, ok := r.files[path]
	return ok && len(file.Conflicts) > 0
}

// FilesWithConflicts returns the paths that have at least one conflict and
// are not yet fully resolved, sorted for stable output.
func (r *Resolver) FilesWithConflicts() []string {
	var paths []string
	for path, file := range r.files {
		if len(file.Conflicts) > 0 && !file.FullyResolved() {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}

// ClearFile discards the record for path.
func (r *Resolver) ClearFile(path string) {
	delete(r.files, path)
}

// ClearAll discards every record.
func (r *Resolver) ClearAll() {
	r.files = make(map[string]*ConflictFile)
}
