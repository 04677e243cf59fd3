package scan

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uedeps/recdeps/internal/history"
	"github.com/uedeps/recdeps/internal/testhelpers"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()

	cmd := NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestScan_WritesCycleReport(t *testing.T) {
	t.Chdir(t.TempDir())

	p := testhelpers.NewProject(t)
	p.AddIncludeDir("Engine/Source/Runtime/Core/Public")
	entry := p.WriteFile("Engine/Source/Runtime/Core/Public/A.h", "#include \"B.h\"\n")
	p.WriteFile("Engine/Source/Runtime/Core/Public/B.h", "#include \"A.h\"\n")
	p.WriteDescriptor()

	output := filepath.Join(t.TempDir(), "cycles.txt")
	err := execute(t, "-p", p.Root, "-e", entry, "-o", output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "A.h:")
	assert.Contains(t, string(content), "\tA.h->B.h->A.h\n")
}

func TestScan_SavesHistoryAfterSuccess(t *testing.T) {
	t.Chdir(t.TempDir())

	p := testhelpers.NewProject(t)
	p.AddIncludeDir("Engine/Source/Runtime/Core/Public")
	entry := p.WriteFile("Engine/Source/Runtime/Core/Public/A.h", "int a;\n")
	p.WriteDescriptor()

	output := filepath.Join(t.TempDir(), "cycles.txt")
	require.NoError(t, execute(t, "-p", p.Root, "-e", entry, "-o", output))

	saved, ok, err := history.Load(history.DefaultPath)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.Root, saved.ProjectRoot)
	assert.Equal(t, entry, saved.EntryPoint)
	assert.Equal(t, output, saved.OutputFile)
}

func TestScan_PrefillsMissingInputsFromHistory(t *testing.T) {
	t.Chdir(t.TempDir())

	p := testhelpers.NewProject(t)
	p.AddIncludeDir("Engine/Source/Runtime/Core/Public")
	entry := p.WriteFile("Engine/Source/Runtime/Core/Public/A.h", "int a;\n")
	p.WriteDescriptor()

	output := filepath.Join(t.TempDir(), "cycles.txt")
	require.NoError(t, history.Save(history.DefaultPath, history.Entry{
		ProjectRoot: p.Root,
		EntryPoint:  entry,
		OutputFile:  output,
	}))

	// No flags at all: every input comes from the previous run.
	require.NoError(t, execute(t))

	_, err := os.Stat(output)
	assert.NoError(t, err)
}

func TestScan_MissingInputsNamedInError(t *testing.T) {
	t.Chdir(t.TempDir())

	err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Project Path & Entry Point Path & Output File Path were not set")
}

func TestScan_SingleMissingInputNamedInError(t *testing.T) {
	t.Chdir(t.TempDir())

	p := testhelpers.NewProject(t)
	p.AddIncludeDir("Engine/Source/Runtime/Core/Public")
	entry := p.WriteFile("Engine/Source/Runtime/Core/Public/A.h", "int a;\n")
	p.WriteDescriptor()

	err := execute(t, "-p", p.Root, "-e", entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Output File Path was not set")
}

func TestScan_JSONFormat(t *testing.T) {
	t.Chdir(t.TempDir())

	p := testhelpers.NewProject(t)
	p.AddIncludeDir("Engine/Source/Runtime/Core/Public")
	entry := p.WriteFile("Engine/Source/Runtime/Core/Public/A.h", "#include \"A.h\"\n")
	p.WriteDescriptor()

	output := filepath.Join(t.TempDir(), "cycles.json")
	require.NoError(t, execute(t, "-p", p.Root, "-e", entry, "-o", output, "-f", "json"))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"A.h"`)
}

func TestScan_UnknownFormatFails(t *testing.T) {
	t.Chdir(t.TempDir())

	p := testhelpers.NewProject(t)
	p.AddIncludeDir("Engine/Source/Runtime/Core/Public")
	entry := p.WriteFile("Engine/Source/Runtime/Core/Public/A.h", "int a;\n")
	p.WriteDescriptor()

	err := execute(t, "-p", p.Root, "-e", entry, "-o", "out.txt", "-f", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestCheckRequiredInputs(t *testing.T) {
	assert.NoError(t, checkRequiredInputs(&scanOptions{
		projectRoot: "/p", entryPoint: "/e.h", outputFile: "/o.txt",
	}))

	err := checkRequiredInputs(&scanOptions{entryPoint: "/e.h", outputFile: "/o.txt"})
	require.Error(t, err)
	assert.Equal(t, "Project Path was not set", err.Error())
}
