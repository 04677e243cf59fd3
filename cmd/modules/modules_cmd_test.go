package modules

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uedeps/recdeps/internal/testhelpers"
)

func TestModules_ListsIndexInFallbackOrder(t *testing.T) {
	p := testhelpers.NewProject(t)
	coreDir := p.AddIncludeDir("Engine/Source/Runtime/Core/Public")
	p.AddIncludeDir("Engine/Source/Runtime/Public")
	p.WriteDescriptor()

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-p", p.Root})

	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "Engine/Source/Runtime\n")
	assert.Contains(t, output, "Engine/Source/Runtime/Core\n")
	assert.Contains(t, output, "\t"+coreDir+"\n")

	// Shorter names list first, mirroring resolver fallback order.
	assert.Less(t,
		bytes.Index(out.Bytes(), []byte("Engine/Source/Runtime\n")),
		bytes.Index(out.Bytes(), []byte("Engine/Source/Runtime/Core\n")))
}

func TestModules_MissingDescriptorFails(t *testing.T) {
	cmd := NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-p", t.TempDir()})

	assert.Error(t, cmd.Execute())
}
