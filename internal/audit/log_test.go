package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `
records:
  - class: net/minecraft/client/renderer/WorldRenderer
    type: reason
    context: [classloading]
  - class: net/minecraft/client/Minecraft
    type: transformer
    context: [OptiFine]
  - class: net/minecraft/client/renderer/WorldRenderer
    type: Transformer
    context: [OptiFine, patched]
`

func TestParse_ForClass(t *testing.T) {
	log, err := Parse([]byte(sampleLog))
	require.NoError(t, err)
	require.Len(t, log.Records, 3)

	trail := log.ForClass("net/minecraft/client/renderer/WorldRenderer")
	assert.Equal(t, Trail{
		{Type: Reason, Context: []string{"classloading"}},
		{Type: Transformer, Context: []string{"OptiFine", "patched"}},
	}, trail)

	assert.Nil(t, log.ForClass("a/Unknown"))

	trail[1].Context[0] = "mutated"
	assert.Equal(t, "OptiFine", log.Records[2].Context[0], "trail snapshots do not alias the log")
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("records:\n  - type: transformer\n"))
	assert.ErrorContains(t, err, "audit record 0 has no class")

	_, err = Parse([]byte("records:\n  - class: a/B\n    type: vote\n"))
	assert.ErrorContains(t, err, "failed to parse audit log YAML")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o644))

	log, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, log.Records, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read audit log")
}
