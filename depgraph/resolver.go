package depgraph

import (
	"os"
	"path/filepath"
)

// Resolver turns raw include tokens into catalogued files by probing module
// include directories on disk.
type Resolver struct {
	index   *ModuleIndex
	catalog *FileCatalog
}

// NewResolver creates a resolver over the given index and catalog.
func NewResolver(index *ModuleIndex, catalog *FileCatalog) *Resolver {
	return &Resolver{index: index, catalog: catalog}
}

// Resolve finds the file an include token refers to. The including file's own
// module is probed first, directory by directory, then every other module in
// index order (ascending name length). The first filesystem hit wins and is
// materialized through the catalog.
//
// A nil record with a nil error means the token resolved to nothing (system
// headers, files outside the indexed modules); the caller omits the edge.
func (r *Resolver) Resolve(token, fromModule string) (*FileRecord, error) {
	if module, ok := r.index.Lookup(fromModule); ok {
		record, err := r.probeModule(module, token)
		if record != nil || err != nil {
			return record, err
		}
	}

	for _, module := range r.index.Modules() {
		if module.Name == fromModule {
			continue
		}
		record, err := r.probeModule(module, token)
		if record != nil || err != nil {
			return record, err
		}
	}

	return nil, nil
}

// probeModule tests dir/token for each of the module's include directories in
// stored order. Existence probes are not cached; they only run while a node
// materializes its children once.
func (r *Resolver) probeModule(module Module, token string) (*FileRecord, error) {
	for _, dir := range module.IncludeDirs {
		candidate := filepath.Join(dir, token)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		return r.catalog.GetOrCreate(candidate)
	}
	return nil, nil
}
