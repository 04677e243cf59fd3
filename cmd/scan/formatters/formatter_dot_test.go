package formatters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uedeps/recdeps/depgraph"
)

func TestDOTFormatter_Format(t *testing.T) {
	report := depgraph.NewCycleReport()
	report.Add("A.h", depgraph.CyclePath{"A.h", "B.h", "A.h"})

	output, err := (&DOTFormatter{}).Format(report)
	require.NoError(t, err)

	assert.Contains(t, output, "digraph")
	assert.Contains(t, output, `"A.h"`)
	assert.Contains(t, output, `"B.h"`)
	assert.Contains(t, output, "->")
}

func TestDOTFormatter_SharedEdgesCollapse(t *testing.T) {
	report := depgraph.NewCycleReport()
	report.Add("A.h", depgraph.CyclePath{"A.h", "B.h", "A.h"})
	report.Add("A.h", depgraph.CyclePath{"A.h", "B.h", "C.h", "A.h"})

	output, err := (&DOTFormatter{}).Format(report)
	require.NoError(t, err)

	// The A.h → B.h edge appears in both paths but must render once.
	occurrences := strings.Count(output, `"A.h" -> "B.h"`)
	assert.Equal(t, 1, occurrences)
}

func TestDOTFormatter_EmptyReport(t *testing.T) {
	output, err := (&DOTFormatter{}).Format(depgraph.NewCycleReport())
	require.NoError(t, err)
	assert.Contains(t, output, "digraph")
}
