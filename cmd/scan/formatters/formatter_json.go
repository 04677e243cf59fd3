package formatters

import (
	"encoding/json"
	"fmt"

	"github.com/uedeps/recdeps/depgraph"
)

// JSONFormatter renders the report as an indented JSON object mapping each
// terminus file name to its cycle paths.
type JSONFormatter struct{}

// Format implements Formatter.
func (f *JSONFormatter) Format(report *depgraph.CycleReport) (string, error) {
	out := make(map[string][][]string, report.Len())
	for _, terminus := range report.Termini() {
		paths := report.PathsFor(terminus)
		names := make([][]string, len(paths))
		for i, path := range paths {
			names[i] = path
		}
		out[terminus] = names
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	return string(data), nil
}
