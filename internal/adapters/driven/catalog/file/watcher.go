package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
	"github.com/verdant-labs/gardenlog/internal/logger"
)

// Watch re-seeds the store whenever the catalog file changes. Upsert
// semantics make each reload idempotent, and the store's live queries
// pick the refresh up automatically. The returned stop function
// releases the file watcher; it is safe to call more than once.
//
// Watching requires a file-backed source; for the embedded default
// catalog there is nothing to watch and Watch returns an error.
func (s *Source) Watch(ctx context.Context, plants driven.PlantStore) (func() error, error) {
	if s.path == "" {
		return nil, errEmbeddedWatch
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors replace files, which drops a watch
	// on the file itself.
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return nil, err
	}

	target := filepath.Clean(s.path)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}
				logger.Debug("catalog changed, reloading %s", target)
				if err := s.Seed(ctx, plants); err != nil {
					logger.Warn("catalog reload failed: %v", err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("catalog watcher: %v", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	return w.Close, nil
}
