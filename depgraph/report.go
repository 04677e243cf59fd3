package depgraph

import (
	"sort"
	"strings"
)

// CyclePath is a readable root-to-terminus sequence of file names.
type CyclePath []string

// String joins the path with arrows, matching the report's on-disk form.
func (p CyclePath) String() string {
	return strings.Join(p, "->")
}

// CycleReport accumulates the cycles found during one traversal run, keyed by
// terminus file name. Paths per terminus have set semantics: the same
// readable path recorded twice collapses into one entry. Keying by name
// rather than path is a deliberate readability tradeoff; same-named files in
// different modules collide.
type CycleReport struct {
	paths map[string][]CyclePath
	seen  map[string]bool
}

// NewCycleReport creates an empty report.
func NewCycleReport() *CycleReport {
	return &CycleReport{
		paths: make(map[string][]CyclePath),
		seen:  make(map[string]bool),
	}
}

// Add records a readable path closing a cycle at the named terminus.
// Duplicate paths for the same terminus are dropped.
func (r *CycleReport) Add(terminus string, path CyclePath) {
	key := terminus + "\x00" + path.String()
	if r.seen[key] {
		return
	}
	r.seen[key] = true
	r.paths[terminus] = append(r.paths[terminus], path)
}

// Termini returns the terminus file names in sorted order.
func (r *CycleReport) Termini() []string {
	termini := make([]string, 0, len(r.paths))
	for terminus := range r.paths {
		termini = append(termini, terminus)
	}
	sort.Strings(termini)
	return termini
}

// PathsFor returns the distinct paths recorded for a terminus, shortest
// cycle first; equal-length paths order lexicographically.
func (r *CycleReport) PathsFor(terminus string) []CyclePath {
	paths := make([]CyclePath, len(r.paths[terminus]))
	copy(paths, r.paths[terminus])
	sort.Slice(paths, func(i, j int) bool {
		if len(paths[i]) != len(paths[j]) {
			return len(paths[i]) < len(paths[j])
		}
		return paths[i].String() < paths[j].String()
	})
	return paths
}

// Empty reports whether no cycles were recorded.
func (r *CycleReport) Empty() bool {
	return len(r.paths) == 0
}

// Len returns the number of distinct termini.
func (r *CycleReport) Len() int {
	return len(r.paths)
}
