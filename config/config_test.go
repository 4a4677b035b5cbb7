package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "csv", cfg.HistoryBackend)
	require.Equal(t, "post_history.csv", cfg.HistoryPath)
	require.Equal(t, "facebook", cfg.DefaultPlatform)
	require.Equal(t, []int{9, 12, 18}, cfg.SlotHours)
	require.Equal(t, 4, cfg.MaxConcurrent)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
history_backend: sqlite
history_path: posts.db
slot_hours: [8, 20]
max_concurrent: 2
`), 0644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.HistoryBackend)
	require.Equal(t, "posts.db", cfg.HistoryPath)
	require.Equal(t, []int{8, 20}, cfg.SlotHours)
	require.Equal(t, 2, cfg.MaxConcurrent)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown backend", "history_backend: excel\n"},
		{"postgres without url", "history_backend: postgres\n"},
		{"hour out of range", "slot_hours: [9, 26]\n"},
		{"hours not ascending", "slot_hours: [12, 9]\n"},
		{"zero concurrency", "max_concurrent: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tt.yaml), 0644))
			chdir(t, dir)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
