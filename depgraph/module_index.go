package depgraph

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultAnchor is the root namespace marker used to derive module names from
// include-directory paths. Engine-style trees keep all module code under one
// such segment.
const DefaultAnchor = "Engine/"

// descriptorFileName is the build descriptor expected at the project root.
const descriptorFileName = "CMakeLists.txt"

// Module is a logical code unit with one or more include search directories.
// Public/private header splits collapse into one module.
type Module struct {
	Name        string
	IncludeDirs []string
}

// ModuleIndex is the ordered module list derived from a project's build
// descriptor. Modules are sorted ascending by name length (name as tiebreak),
// which drives both owner lookup and resolver fallback order. Immutable after
// Build.
type ModuleIndex struct {
	Root    string
	Anchor  string
	modules []Module
}

// BuildModuleIndex parses <projectRoot>/CMakeLists.txt into a ModuleIndex.
//
// Lines of the form include("<path>") whose path contains "includes" name
// secondary declaration files; every quoted string inside those files is an
// include-directory candidate, except build-artifact paths containing
// "Intermediate". The module name is the candidate's suffix from the last
// occurrence of anchor, with a trailing /Public or /Private stripped.
func BuildModuleIndex(projectRoot, anchor string) (*ModuleIndex, error) {
	if anchor == "" {
		anchor = DefaultAnchor
	}

	descriptorPath := filepath.Join(projectRoot, descriptorFileName)
	file, err := os.Open(descriptorPath)
	if err != nil {
		return nil, &ConfigError{Path: descriptorPath, Err: err}
	}
	defer file.Close()

	grouped := make(map[string]map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.ReplaceAll(scanner.Text(), " ", "")
		if !strings.Contains(line, "include(") {
			continue
		}

		includePath := strings.TrimSuffix(strings.TrimPrefix(line, `include("`), `")`)
		if !strings.Contains(includePath, "includes") {
			continue
		}

		if err := collectCandidates(includePath, anchor, grouped); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ConfigError{Path: descriptorPath, Err: err}
	}

	modules := make([]Module, 0, len(grouped))
	for name, dirs := range grouped {
		module := Module{Name: name, IncludeDirs: make([]string, 0, len(dirs))}
		for dir := range dirs {
			module.IncludeDirs = append(module.IncludeDirs, dir)
		}
		// Candidate order must be reproducible; the probe order in the
		// resolver follows it directly.
		sort.Strings(module.IncludeDirs)
		modules = append(modules, module)
	}

	sort.Slice(modules, func(i, j int) bool {
		if len(modules[i].Name) != len(modules[j].Name) {
			return len(modules[i].Name) < len(modules[j].Name)
		}
		return modules[i].Name < modules[j].Name
	})

	return &ModuleIndex{Root: projectRoot, Anchor: anchor, modules: modules}, nil
}

// collectCandidates scans one secondary declaration file for quoted
// include-directory candidates and groups them by derived module name.
func collectCandidates(path, anchor string, grouped map[string]map[string]bool) error {
	file, err := os.Open(path)
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.ReplaceAll(scanner.Text(), " ", "")
		if !strings.Contains(line, `"`) {
			continue
		}

		candidate := strings.NewReplacer(`"`, "", "\t", "").Replace(line)
		if strings.Contains(candidate, "Intermediate") {
			continue
		}

		start := strings.LastIndex(candidate, anchor)
		if start < 0 {
			return &ConfigError{
				Path: path,
				Err:  fmt.Errorf("anchor %q not found in candidate %q", anchor, candidate),
			}
		}

		name := candidate[start:]
		name = strings.ReplaceAll(name, "/Public", "")
		name = strings.ReplaceAll(name, "/Private", "")

		if grouped[name] == nil {
			grouped[name] = make(map[string]bool)
		}
		grouped[name][candidate] = true
	}

	if err := scanner.Err(); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	return nil
}

// Modules returns the modules in index order (ascending name length).
func (idx *ModuleIndex) Modules() []Module {
	return idx.modules
}

// Lookup returns the module with the given name.
func (idx *ModuleIndex) Lookup(name string) (Module, bool) {
	for _, module := range idx.modules {
		if module.Name == name {
			return module, true
		}
	}
	return Module{}, false
}

// OwnerOf returns the name of the module owning the file at absPath. Scanning
// from the end of the length-sorted list yields the longest matching module
// name, so the most specific module wins when names nest; among equal-length
// matches the lexicographically greatest name wins.
func (idx *ModuleIndex) OwnerOf(absPath string) (string, bool) {
	for i := len(idx.modules) - 1; i >= 0; i-- {
		if strings.Contains(absPath, idx.modules[i].Name) {
			return idx.modules[i].Name, true
		}
	}
	return "", false
}
