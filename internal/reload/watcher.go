package reload

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads a Store whenever its document changes on disk.
type Watcher struct {
	store    *Store
	debounce time.Duration
}

func NewWatcher(store *Store, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		store:    store,
		debounce: debounce,
	}
}

// Run watches until ctx is cancelled. A rejected document is logged and
// the store keeps serving the previous one.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher() > %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Editors often save by renaming a temp file, so watch the directory.
	target := filepath.Clean(w.store.Path())
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watcher.Add(%s) > %w", filepath.Dir(target), err)
	}
	slog.Default().Info("watching parameters", slog.String("path", target))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevant(event, target) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Default().Warn("file watcher error", slog.Any("error", err))

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	changed, err := w.store.Reload()
	if err != nil {
		slog.Default().Error("rejected parameters reload",
			slog.String("path", w.store.Path()),
			slog.Any("error", err),
		)
		return
	}
	if changed {
		slog.Default().Info("reloaded parameters", slog.String("path", w.store.Path()))
	}
}

func isRelevant(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
