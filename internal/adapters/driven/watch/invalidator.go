// Package watch drops cached extractions when their files change on disk.
package watch

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/skimma-cli/internal/logger"
)

// Ensure Invalidator implements the interface.
var _ driven.ExtractionCache = (*Invalidator)(nil)

// Invalidator decorates an extraction cache with filesystem watching:
// every populated path is watched, and a write, rename or removal drops
// its entry so the next read re-extracts the changed file. Without it,
// cached text serves stale for the process lifetime when a file is edited
// in place.
type Invalidator struct {
	cache   driven.ExtractionCache
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// New wraps cache with a filesystem watcher. Close releases the watcher.
func New(cache driven.ExtractionCache) (*Invalidator, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	inv := &Invalidator{
		cache:   cache,
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go inv.run()
	return inv, nil
}

// run dispatches watcher events until Close.
func (i *Invalidator) run() {
	for {
		select {
		case event, ok := <-i.watcher.Events:
			if !ok {
				return
			}
			i.handleEvent(event)
		case err, ok := <-i.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("file watcher: %v", err)
		case <-i.done:
			return
		}
	}
}

// handleEvent drops the cache entry for a changed file. Chmod-only events
// keep the entry; the text cannot have changed.
func (i *Invalidator) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if i.cache.Invalidate(context.Background(), event.Name) {
		logger.Debug("cache invalidated by file change: %s", event.Name)
	}
}

// GetOrCompute delegates to the wrapped cache and watches the path after a
// successful population. Cache keys are canonical absolute paths, so the
// key is the watchable file.
func (i *Invalidator) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (*domain.Extraction, error)) (*domain.Extraction, error) {
	entry, err := i.cache.GetOrCompute(ctx, key, compute)
	if err != nil {
		return nil, err
	}
	// Re-adding a watched path is a no-op. A failed watch only costs
	// staleness detection for that one file.
	if werr := i.watcher.Add(key); werr != nil {
		logger.Debug("cannot watch %s: %v", key, werr)
	}
	return entry, nil
}

// Stats delegates to the wrapped cache.
func (i *Invalidator) Stats(ctx context.Context) domain.CacheStats {
	return i.cache.Stats(ctx)
}

// Clear delegates to the wrapped cache.
func (i *Invalidator) Clear(ctx context.Context) int {
	return i.cache.Clear(ctx)
}

// Invalidate delegates to the wrapped cache.
func (i *Invalidator) Invalidate(ctx context.Context, key string) bool {
	return i.cache.Invalidate(ctx, key)
}

// Close stops the event loop and releases the watcher.
func (i *Invalidator) Close() error {
	close(i.done)
	return i.watcher.Close()
}
