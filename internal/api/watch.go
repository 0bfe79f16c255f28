package api

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"merchdash/internal/charts"
)

// WatchData rebuilds the dashboard whenever the data file changes and swaps
// it into the handler. A failed rebuild keeps the previous dashboard and is
// only logged. The caller owns the returned watcher.
func WatchData(path string, rebuild func() (*charts.Dashboard, error), h *Handler, log *zap.Logger) (*fsnotify.Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start watcher: %w", err)
	}
	// Watch the directory: editors replace the file, which drops a watch
	// registered on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	target := filepath.Clean(path)
	go func() {
		var last time.Time
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				// Editors fire write bursts; one rebuild is enough.
				if time.Since(last) < 500*time.Millisecond {
					continue
				}
				last = time.Now()

				d, err := rebuild()
				if err != nil {
					log.Warn("dashboard rebuild failed", zap.String("file", ev.Name), zap.Error(err))
					continue
				}
				h.SetDashboard(d)
				log.Info("dashboard reloaded", zap.String("file", ev.Name))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("watch error", zap.Error(err))
			}
		}
	}()
	return w, nil
}
