package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, DefaultSleepMinWidth, mgr.viper.GetInt("lifecycle.sleep_min_width"))
	assert.Equal(t, DefaultSleepMinHeight, mgr.viper.GetInt("lifecycle.sleep_min_height"))
	assert.InDelta(t, DefaultResizeStep, mgr.viper.GetFloat64("focus.resize_step"), 1e-9)
	assert.Equal(t, "about:blank", mgr.viper.GetString("workspace.new_tile_url"))
	assert.True(t, mgr.viper.GetBool("session.auto_restore"))
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "cfg")

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.Equal(t, filepath.Join(dir, "config.toml"), mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, DefaultSleepMinWidth, cfg.Lifecycle.SleepMinWidth)
	assert.Equal(t, DefaultWorkspaceID, cfg.Workspace.ID)
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "cfg")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[lifecycle]
sleep_min_width = 320

[workspace]
id = "work"
new_tile_url = "  "

[logging]
level = "WARN"
`), 0o644))

	t.Setenv("TESSERA_LIFECYCLE_SLEEP_MIN_HEIGHT", "90")
	t.Setenv("TESSERA_LOG_FORMAT", "json")

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 320, cfg.Lifecycle.SleepMinWidth)
	assert.Equal(t, 90, cfg.Lifecycle.SleepMinHeight)
	assert.Equal(t, "work", cfg.Workspace.ID)
	assert.Equal(t, DefaultNewTileURL, cfg.Workspace.NewTileURL, "blank url falls back")
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "cfg")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[workspace]
default_split_ratio = 0.99
`), 0o644))

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workspace.default_split_ratio")
}

func TestGet_ReturnsCopy(t *testing.T) {
	root := isolateXDG(t)
	mgr, err := NewManager(WithConfigDir(filepath.Join(root, "cfg")))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Workspace.ID = "mutated"
	assert.Equal(t, DefaultWorkspaceID, mgr.Get().Workspace.ID)
}

func TestLoad_LogFileResolvedWhenEnabled(t *testing.T) {
	root := isolateXDG(t)
	t.Setenv("TESSERA_LOGGING_ENABLE_FILE", "true")

	mgr, err := NewManager(WithConfigDir(filepath.Join(root, "cfg")))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, filepath.Join(root, "state", appName, logFileName), mgr.Get().Logging.FilePath)
}
