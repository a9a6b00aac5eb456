package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/touchlab-io/gesturekit/gesture"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GESTUREKIT_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, gesture.DefaultTimings(), cfg.Engine.Timings())
	require.True(t, cfg.Engine.MultiFingerGestures)
	require.False(t, cfg.Engine.ServiceHandlesDoubleTap)
	require.Contains(t, cfg.Trace.Path, "traces.db")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[engine]
tap_timeout = "80ms"
hold_delay = "1s"
swipe_threshold = 25.0
service_handles_double_tap = true

[trace]
path = "/tmp/custom.db"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("GESTUREKIT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 80*time.Millisecond, cfg.Engine.TapTimeout)
	require.Equal(t, time.Second, cfg.Engine.HoldDelay)
	require.Equal(t, 25.0, cfg.Engine.SwipeThreshold)
	require.True(t, cfg.Engine.ServiceHandlesDoubleTap)
	// untouched keys keep their defaults
	require.Equal(t, gesture.DefaultTimings().DoubleTapTimeout, cfg.Engine.DoubleTapTimeout)
	require.Equal(t, "/tmp/custom.db", cfg.Trace.Path)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GESTUREKIT_CONFIG", "")
	t.Setenv("GESTUREKIT_TRACE_PATH", "/tmp/env.db")
	t.Setenv("GESTUREKIT_ENGINE_HOLD_DELAY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "/tmp/env.db", cfg.Trace.Path)
	require.Equal(t, 250*time.Millisecond, cfg.Engine.HoldDelay)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("GESTUREKIT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Engine.SwipeMaxDuration = 900 * time.Millisecond
	cfg.Engine.TouchSlop = 12
	cfg.Trace.Path = filepath.Join(t.TempDir(), "t.db")

	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg.Engine, got.Engine)
	require.Equal(t, cfg.Trace, got.Trace)
}
