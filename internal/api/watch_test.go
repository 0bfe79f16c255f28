package api

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"merchdash/internal/charts"
	"merchdash/internal/config"
)

func TestWatchReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("seed"), 0o644))

	cfg := config.Default()
	dash, err := charts.Build(fixtureTable(cfg), cfg, nil)
	require.NoError(t, err)

	h := NewHandler(nil)
	w, err := WatchData(path, func() (*charts.Dashboard, error) { return dash, nil }, h, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("changed"), 0o644))

	require.Eventually(t, func() bool { return h.current() != nil },
		5*time.Second, 50*time.Millisecond, "watcher never swapped the dashboard in")
}
