package diff

// Region marks a long unchanged span in the flattened line sequence of a
// result, minus the context kept visible at each edge. StartLine and
// EndLine are inclusive indices into Result.Lines().
type Region struct {
	StartLine int
	EndLine   int
	LineCount int
	Collapsed bool
}

// FindCollapsibleRegions scans the result for maximal unchanged runs of at
// least CollapseThreshold lines and records the collapsible interior of
// each, replacing any previously found set. A run whose interior vanishes
// after trimming ContextLines from both edges is not reported.
func (e *Engine) FindCollapsibleRegions(r *Result) []Region {
	lines := r.Lines()

	var regions []Region
	runStart := -1
	endRun := func(runEnd int) {
		if runStart < 0 {
			return
		}
		runLen := runEnd - runStart + 1
		if runLen >= e.opts.CollapseThreshold {
			start := runStart + e.opts.ContextLines
			end := runEnd - e.opts.ContextLines
			if start <= end {
				regions = append(regions, Region{
					StartLine: start,
					EndLine:   end,
					LineCount: end - start + 1,
				})
			}
		}
		runStart = -1
	}

	for i, line := range lines {
		if line.Kind == Unchanged {
			if runStart < 0 {
				runStart = i
			}
		} else {
			endRun(i - 1)
		}
	}
	endRun(len(lines) - 1)

	e.regions = regions
	return regions
}

// Regions returns the region set from the most recent
// FindCollapsibleRegions call.
func (e *Engine) Regions() []Region {
	return e.regions
}

// ToggleRegion flips the collapsed state of the region at index i. It
// returns false if no such region exists.
func (e *Engine) ToggleRegion(i int) bool {
	if i < 0 || i >= len(e.regions) {
		return false
	}
	e.regions[i].Collapsed = !e.regions[i].Collapsed
	return true
}

// CollapseAll collapses every known region.
func (e *Engine) CollapseAll() {
	for i := range e.regions {
		e.regions[i].Collapsed = true
	}
}

// ExpandAll expands every known region.
func (e *Engine) ExpandAll() {
	for i := range e.regions {
		e.regions[i].Collapsed = false
	}
}
