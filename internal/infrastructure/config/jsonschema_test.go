package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSchema(t *testing.T) {
	data, err := ConfigSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, configSchemaID, doc["$id"])
	assert.Equal(t, "Tessera Configuration", doc["title"])
	assert.Contains(t, string(data), "sleep_min_width")
	assert.Contains(t, string(data), "snapshot_interval_ms")
}

func TestLayoutSchema(t *testing.T) {
	data, err := LayoutSchema()
	require.NoError(t, err)

	assert.Contains(t, string(data), layoutSchemaID)
	assert.Contains(t, string(data), "focusedTileId")
	assert.Contains(t, string(data), "#/$defs/LayoutNode")
	assert.Contains(t, string(data), "tileId")
	assert.NotContains(t, string(data), "\"Kind\"", "node is described by its wire shape")
}

func TestWriteSchemaFile(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)

	path, err := mgr.WriteSchemaFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.schema.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
