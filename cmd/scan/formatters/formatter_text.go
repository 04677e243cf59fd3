package formatters

import (
	"strings"

	"github.com/uedeps/recdeps/depgraph"
)

const entryDelimiter = "------------------------------------------------"

// TextFormatter renders the report in the tool's historical text layout: one
// delimited block per terminus, shortest cycle first.
type TextFormatter struct{}

// Format implements Formatter.
func (f *TextFormatter) Format(report *depgraph.CycleReport) (string, error) {
	var b strings.Builder

	for _, terminus := range report.Termini() {
		b.WriteString(entryDelimiter)
		b.WriteString("\n")
		b.WriteString(terminus)
		b.WriteString(":\n")

		for _, path := range report.PathsFor(terminus) {
			b.WriteString("\t")
			b.WriteString(path.String())
			b.WriteString("\n")
		}

		b.WriteString(entryDelimiter)
		b.WriteString("\n")
	}

	return b.String(), nil
}
