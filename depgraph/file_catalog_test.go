package depgraph

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uedeps/recdeps/internal/testhelpers"
)

func newSingleModuleProject(t *testing.T) (*testhelpers.Project, *ModuleIndex, string) {
	t.Helper()

	p := testhelpers.NewProject(t)
	dir := p.AddIncludeDir("Engine/Source/Runtime/Core/Public")
	p.WriteDescriptor()

	index, err := BuildModuleIndex(p.Root, "")
	require.NoError(t, err)

	return p, index, dir
}

func TestGetOrCreate_ParsesRecord(t *testing.T) {
	p, index, _ := newSingleModuleProject(t)
	path := p.WriteFile("Engine/Source/Runtime/Core/Public/A.h",
		"#pragma once\n"+
			"#include \"B.h\"\n"+
			"#include <vector>\n"+
			"    #include \"C.h\"\n"+
			"#include \"A.generated.h\"\n"+
			"#include \"A.gen.h\"\n"+
			"int x = 1;\n")

	catalog := NewFileCatalog(index)
	record, err := catalog.GetOrCreate(path)
	require.NoError(t, err)

	assert.Equal(t, path, record.AbsPath)
	assert.Equal(t, "A.h", record.Name)
	assert.Equal(t, "Engine/Source/Runtime/Core", record.Module)
	assert.Equal(t, KindHeader, record.Kind)
	assert.Equal(t, []string{"B.h", "<vector>", "C.h"}, record.Includes)
	assert.False(t, record.Processed)
}

func TestGetOrCreate_KindPerExtension(t *testing.T) {
	p, index, _ := newSingleModuleProject(t)
	catalog := NewFileCatalog(index)

	cases := []struct {
		name string
		kind FileKind
	}{
		{"A.h", KindHeader},
		{"B.hpp", KindHeader},
		{"C.c", KindSource},
		{"D.cpp", KindSource},
		{"E.inl", KindInline},
	}

	for _, tc := range cases {
		path := p.WriteFile(filepath.Join("Engine/Source/Runtime/Core/Public", tc.name), "")
		record, err := catalog.GetOrCreate(path)
		require.NoError(t, err)
		assert.Equal(t, tc.kind, record.Kind, tc.name)
	}
}

func TestGetOrCreate_UnsupportedExtension(t *testing.T) {
	p, index, _ := newSingleModuleProject(t)
	path := p.WriteFile("Engine/Source/Runtime/Core/Public/Readme.txt", "hello")

	catalog := NewFileCatalog(index)
	_, err := catalog.GetOrCreate(path)

	var typeErr *UnsupportedFileTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "txt", typeErr.Ext)
	assert.Equal(t, path, typeErr.Path)
}

func TestGetOrCreate_UnreadableFile(t *testing.T) {
	_, index, dir := newSingleModuleProject(t)

	catalog := NewFileCatalog(index)
	_, err := catalog.GetOrCreate(filepath.Join(dir, "Missing.h"))
	assert.Error(t, err)
}

func TestGetOrCreate_NoOwningModule(t *testing.T) {
	p, index, _ := newSingleModuleProject(t)
	path := p.WriteFile("ThirdParty/External/X.h", "")

	catalog := NewFileCatalog(index)
	_, err := catalog.GetOrCreate(path)

	var resErr *ModuleResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, path, resErr.Path)
}

func TestGetOrCreate_ReturnsSharedRecord(t *testing.T) {
	p, index, _ := newSingleModuleProject(t)
	path := p.WriteFile("Engine/Source/Runtime/Core/Public/A.h", "")

	catalog := NewFileCatalog(index)
	first, err := catalog.GetOrCreate(path)
	require.NoError(t, err)

	first.Processed = true

	second, err := catalog.GetOrCreate(path)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, second.Processed)
}

func TestRecords_SortedByPath(t *testing.T) {
	p, index, _ := newSingleModuleProject(t)
	b := p.WriteFile("Engine/Source/Runtime/Core/Public/B.h", "")
	a := p.WriteFile("Engine/Source/Runtime/Core/Public/A.h", "")

	catalog := NewFileCatalog(index)
	_, err := catalog.GetOrCreate(b)
	require.NoError(t, err)
	_, err = catalog.GetOrCreate(a)
	require.NoError(t, err)

	records := catalog.Records()
	require.Len(t, records, 2)
	assert.Equal(t, a, records[0].AbsPath)
	assert.Equal(t, b, records[1].AbsPath)
}
