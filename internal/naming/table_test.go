package naming

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const srgTable = `
classes:
  net/minecraft/client/renderer/WorldRenderer: net/minecraft/client/renderer/LevelRenderer
methods:
  func_72712_a: loadRenderers
  foo: methodFoo
fields:
  field_72769_h: world
  foo: bar
`

func TestParse(t *testing.T) {
	table, err := Parse([]byte(srgTable))
	require.NoError(t, err)

	assert.Equal(t, "1", table.Version, "version defaults to 1")
	assert.Equal(t, 5, table.Len())

	assert.Equal(t, "net/minecraft/client/renderer/LevelRenderer",
		table.Resolve(DomainClass, "net/minecraft/client/renderer/WorldRenderer"))
	assert.Equal(t, "loadRenderers", table.Resolve(DomainMethod, "func_72712_a"))
	assert.Equal(t, "world", table.Resolve(DomainField, "field_72769_h"))
}

func TestTable_DomainsAreSeparate(t *testing.T) {
	table, err := Parse([]byte(srgTable))
	require.NoError(t, err)

	assert.Equal(t, "methodFoo", table.Resolve(DomainMethod, "foo"))
	assert.Equal(t, "bar", table.Resolve(DomainField, "foo"))
	assert.Equal(t, "foo", table.Resolve(DomainClass, "foo"))
}

func TestTable_PassThrough(t *testing.T) {
	table := NewTable()
	assert.Equal(t, "java/lang/Object", table.Resolve(DomainClass, "java/lang/Object"))
	assert.Equal(t, "loadRenderers", table.Resolve(DomainMethod, "loadRenderers"))
	assert.Equal(t, "x", table.Resolve(Domain(9), "x"))

	var zero Table
	assert.Equal(t, "field_1_a", zero.Resolve(DomainField, "field_1_a"))
	zero.Add(DomainField, "field_1_a", "ignored")
	assert.Equal(t, 0, zero.Len())
}

func TestTable_Merge(t *testing.T) {
	a := NewTable()
	a.Add(DomainMethod, "func_1_a", "tick")
	a.Add(DomainField, "field_1_a", "old")

	b := NewTable()
	b.Add(DomainField, "field_1_a", "world")
	b.Add(DomainClass, "a/A", "b/B")

	a.Merge(b)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "world", a.Resolve(DomainField, "field_1_a"))
	assert.Equal(t, "b/B", a.Resolve(DomainClass, "a/A"))
	assert.Equal(t, 2, b.Len(), "merge leaves the source untouched")
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("methods: [not, a, map]"))
	assert.ErrorContains(t, err, "failed to parse naming table YAML")
}

func TestWriteFileThenLoadFile(t *testing.T) {
	table, err := Parse([]byte(srgTable))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export", "srg.yaml")
	require.NoError(t, WriteFile(table, path), "parent directories are created")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, table, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read naming table")
}

func TestLoadMCPDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, MCPFieldsFile), []byte(
		"searge,name,side,desc\n"+
			"field_72769_h,world,0,The world\n"+
			"field_1_a,\"quoted\",2,\"desc, with comma\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, MCPMethodsFile), []byte(
		"searge,name,side,desc\n"+
			"func_72712_a,loadRenderers,0,\n"), 0o644))

	table, err := LoadMCPDir(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "world", table.Resolve(DomainField, "field_72769_h"))
	assert.Equal(t, "quoted", table.Resolve(DomainField, "field_1_a"))
	assert.Equal(t, "loadRenderers", table.Resolve(DomainMethod, "func_72712_a"))
	assert.Empty(t, table.Classes)
}

func TestLoadMCPDir_OnlyMethods(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, MCPMethodsFile), []byte("func_1_a,tick\n"), 0o644))

	table, err := LoadMCPDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "tick", table.Resolve(DomainMethod, "func_1_a"))
}

func TestLoadMCPDir_Empty(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMCPDir(dir)
	assert.ErrorContains(t, err, "no fields.csv or methods.csv")
}

func TestReadMCPCSV_BadRow(t *testing.T) {
	err := ReadMCPCSV(strings.NewReader("searge,name\nfunc_1_a\n"), DomainMethod, NewTable())
	assert.ErrorContains(t, err, "line 2")
}
