// Package history persists the last run's input paths so a subsequent
// invocation can be prefilled. It is a convenience side file only and is
// never consulted by the dependency engine.
package history

import (
	"bufio"
	"fmt"
	"os"
)

// DefaultPath is where the run-memory file lives, relative to the working
// directory.
const DefaultPath = ".recdeps"

// Entry holds the three input paths of one run.
type Entry struct {
	ProjectRoot string
	EntryPoint  string
	OutputFile  string
}

// Load reads a previously saved entry. A missing file is not an error; it
// returns a zero entry and false.
func Load(path string) (Entry, bool, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to open history file %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() && len(lines) < 3 {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Entry{}, false, fmt.Errorf("failed to read history file %s: %w", path, err)
	}

	var entry Entry
	if len(lines) > 0 {
		entry.ProjectRoot = lines[0]
	}
	if len(lines) > 1 {
		entry.EntryPoint = lines[1]
	}
	if len(lines) > 2 {
		entry.OutputFile = lines[2]
	}

	return entry, true, nil
}

// Save writes the entry as three lines, overwriting any previous file.
func Save(path string, entry Entry) error {
	content := fmt.Sprintf("%s\n%s\n%s", entry.ProjectRoot, entry.EntryPoint, entry.OutputFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write history file %s: %w", path, err)
	}
	return nil
}
