package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsAndNotifies(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "cfg")

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var (
		mu  sync.Mutex
		got *Config
	)
	mgr.OnConfigChange(func(cfg *Config) {
		mu.Lock()
		defer mu.Unlock()
		got = cfg
	})
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second call is a no-op")

	require.NoError(t, os.WriteFile(mgr.GetConfigFile(), []byte(`
[lifecycle]
sleep_min_width = 640
`), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got != nil && got.Lifecycle.SleepMinWidth == 640
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, 640, mgr.Get().Lifecycle.SleepMinWidth)
}
