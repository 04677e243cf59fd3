package formatters

import (
	"fmt"

	"github.com/uedeps/recdeps/depgraph"
)

// OutputFormat identifies a report output format.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatDOT  OutputFormat = "dot"
)

func (f OutputFormat) String() string {
	return string(f)
}

// Formatter is the interface that all cycle-report formatters implement.
type Formatter interface {
	// Format converts a cycle report to its string representation.
	Format(report *depgraph.CycleReport) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
// Supported formats: "text", "json", "dot"
func NewFormatter(format string) (Formatter, error) {
	switch OutputFormat(format) {
	case OutputFormatText:
		return &TextFormatter{}, nil
	case OutputFormatJSON:
		return &JSONFormatter{}, nil
	case OutputFormatDOT:
		return &DOTFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: text, json, dot)", format)
	}
}
