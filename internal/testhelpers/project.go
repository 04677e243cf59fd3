// Package testhelpers builds temporary engine-style source trees for tests:
// a root build descriptor, a secondary module-declaration file, and module
// directories with source files.
package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Project is a throwaway source tree rooted in a temp directory.
type Project struct {
	t *testing.T

	// Root is the project root holding CMakeLists.txt.
	Root string

	candidates []string
}

// NewProject creates an empty project under t.TempDir().
func NewProject(t *testing.T) *Project {
	t.Helper()
	return &Project{t: t, Root: t.TempDir()}
}

// AddIncludeDir registers rel (e.g. "Engine/Source/Runtime/Core/Public") as
// an include-directory candidate, creates it on disk, and returns its
// absolute path. WriteDescriptor must be called afterwards for the candidate
// to be visible to the module index.
func (p *Project) AddIncludeDir(rel string) string {
	p.t.Helper()

	abs := filepath.Join(p.Root, rel)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		p.t.Fatalf("failed to create include dir %s: %v", abs, err)
	}
	p.candidates = append(p.candidates, abs)
	return abs
}

// WriteFile writes a file under the project root and returns its absolute
// path. Parent directories are created as needed.
func (p *Project) WriteFile(rel, content string) string {
	p.t.Helper()

	abs := filepath.Join(p.Root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		p.t.Fatalf("failed to create dir for %s: %v", abs, err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		p.t.Fatalf("failed to write %s: %v", abs, err)
	}
	return abs
}

// WriteDescriptor writes the secondary declaration file listing every
// registered candidate, plus extra raw lines, and a root CMakeLists.txt
// referencing it.
func (p *Project) WriteDescriptor(extraLines ...string) {
	p.t.Helper()

	var b strings.Builder
	for _, candidate := range p.candidates {
		b.WriteString("\t\"" + candidate + "\"\n")
	}
	for _, line := range extraLines {
		b.WriteString(line + "\n")
	}

	declPath := filepath.Join(p.Root, "module_includes.cmake")
	if err := os.WriteFile(declPath, []byte(b.String()), 0o644); err != nil {
		p.t.Fatalf("failed to write declaration file: %v", err)
	}

	descriptor := `include("` + declPath + `")` + "\n"
	if err := os.WriteFile(filepath.Join(p.Root, "CMakeLists.txt"), []byte(descriptor), 0o644); err != nil {
		p.t.Fatalf("failed to write CMakeLists.txt: %v", err)
	}
}
