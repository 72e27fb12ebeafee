package watcher

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/summary-flow/internal/cache"
)

func (w *implWatcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.logger.Info(ctx, "Watching cache directory %s (%d transcripts cached)", w.dir, len(w.index))

	go w.loop(ctx, fw)
	return nil
}

func (w *implWatcher) Stop() error {
	w.stop.Do(func() { close(w.done) })
	return nil
}

func (w *implWatcher) Has(videoID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.index[videoID]
	return ok
}

func (w *implWatcher) loop(ctx context.Context, fw *fsnotify.Watcher) {
	defer fw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			w.handle(ctx, event)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn(ctx, "Cache watch error: %v", err)
		}
	}
}

func (w *implWatcher) handle(ctx context.Context, event fsnotify.Event) {
	id, ok := cache.VideoID(filepath.Base(event.Name))
	if !ok {
		return
	}

	// A rename into the directory surfaces as Create on the new name, so
	// Rename here only ever means the file left.
	switch {
	case event.Op.Has(fsnotify.Create):
		w.add(id)
		w.logger.Debug(ctx, "Transcript cached: %s", id)
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		w.remove(id)
		w.logger.Debug(ctx, "Transcript evicted: %s", id)
	}
}

func (w *implWatcher) add(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.index[id] = struct{}{}
}

func (w *implWatcher) remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.index, id)
}
