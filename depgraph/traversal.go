package depgraph

import (
	log "github.com/charmbracelet/log"
)

// Engine drives the cycle-detecting traversal over the lazily materialized
// include tree. It owns the catalog and resolver for the run's lifetime.
type Engine struct {
	catalog  *FileCatalog
	resolver *Resolver
	logger   *log.Logger
}

// NewEngine creates an engine over a freshly built module index.
func NewEngine(index *ModuleIndex, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	catalog := NewFileCatalog(index)
	return &Engine{
		catalog:  catalog,
		resolver: NewResolver(index, catalog),
		logger:   logger,
	}
}

// Catalog exposes the engine's file catalog; callers use it to inspect which
// files a run touched.
func (e *Engine) Catalog() *FileCatalog {
	return e.catalog
}

// frame is one position in the traversal tree. Children are materialized at
// most once per frame; a nil slice with expanded unset means not yet
// materialized.
type frame struct {
	record   *FileRecord
	children []*frame
	expanded bool
}

// Run walks the include tree rooted at entryPath and returns every cycle
// found. The walk is a depth-first search over an explicit frame stack, so
// native stack usage stays bounded regardless of include depth. Each file's
// Processed flag flips exactly once, memoizing fully explored subtrees across
// every position that reaches the file.
func (e *Engine) Run(entryPath string) (*CycleReport, error) {
	root, err := e.catalog.GetOrCreate(entryPath)
	if err != nil {
		return nil, err
	}

	report := NewCycleReport()
	stack := []*frame{{record: root}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		// Fully explored: pop back to the parent. Popping the root ends
		// the run.
		if current.record.Processed {
			stack = stack[:len(stack)-1]
			continue
		}

		if !current.expanded {
			if len(current.record.Includes) == 0 {
				current.record.Processed = true
				continue
			}
			children, err := e.materializeChildren(current.record)
			if err != nil {
				return nil, err
			}
			current.children = children
			current.expanded = true
		}

		child := firstUnprocessed(current.children)
		if child == nil {
			// Every child subtree is exhausted, so this file is too.
			current.record.Processed = true
			continue
		}

		if onStack(stack, child.record) {
			// The child's root-to-node path repeats an absolute path:
			// the child is a cycle terminus. Marking it processed here
			// stops any further expansion from it.
			child.record.Processed = true

			path := readablePath(stack, child.record)
			report.Add(child.record.Name, path)
			e.logger.Warn("cycle found", "terminus", child.record.Name, "path", path.String())
			continue
		}

		stack = append(stack, child)
	}

	return report, nil
}

// materializeChildren resolves a record's include tokens in order. Tokens
// that resolve to nothing produce no child; resolution failures on hits are
// fatal.
func (e *Engine) materializeChildren(record *FileRecord) ([]*frame, error) {
	children := make([]*frame, 0, len(record.Includes))
	for _, token := range record.Includes {
		resolved, err := e.resolver.Resolve(token, record.Module)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			continue
		}
		children = append(children, &frame{record: resolved})
	}
	return children, nil
}

func firstUnprocessed(children []*frame) *frame {
	for _, child := range children {
		if !child.record.Processed {
			return child
		}
	}
	return nil
}

// onStack reports whether the record already appears among the stacked
// ancestors. Stacked records are pairwise distinct, so a repeat in the
// child's node path can only be a child-versus-ancestor collision; this also
// catches self-includes, where the child's file is the current frame's.
func onStack(stack []*frame, record *FileRecord) bool {
	for _, f := range stack {
		if f.record.AbsPath == record.AbsPath {
			return true
		}
	}
	return false
}

// readablePath builds the file-name path from the root to the child,
// inclusive.
func readablePath(stack []*frame, child *FileRecord) CyclePath {
	path := make(CyclePath, 0, len(stack)+1)
	for _, f := range stack {
		path = append(path, f.record.Name)
	}
	return append(path, child.Name)
}
