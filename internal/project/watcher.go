package project

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchEvent describes a source file change under the project source root.
type WatchEvent struct {
	Path string // the source file that was written or created
}

// Watcher monitors the source root for file changes so a reformat can be
// triggered as soon as a collapsed file lands in the tree.
type Watcher struct {
	project *Project
	logger  *slog.Logger
	Ready   chan struct{}

	newWatcher func() (*fsnotify.Watcher, error)
}

// NewWatcher creates a new Watcher for the given project.
func NewWatcher(p *Project, logger *slog.Logger) *Watcher {
	return &Watcher{
		project:    p,
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
	}
}

// Watch starts monitoring the source root. It calls the provided callback
// whenever a source file is written or created, debounced so editors that
// fire multiple events per save trigger a single run. It blocks until the
// context is cancelled.
func (w *Watcher) Watch(ctx context.Context, callback func(WatchEvent)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := w.addRecursive(watcher, w.project.SourceRoot()); err != nil {
		return err
	}

	w.logger.Info("Watching for changes", "root", w.project.SourceRoot())
	if w.Ready != nil {
		close(w.Ready)
	}

	var timer *time.Timer
	const debounceDuration = 100 * time.Millisecond
	var pendingEvent *WatchEvent

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors:
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev := w.handleEvent(watcher, event); ev != nil {
				if timer != nil {
					timer.Stop()
				}
				pendingEvent = ev
				timer = time.AfterFunc(debounceDuration, func() {
					callback(*pendingEvent)
				})
			}
		}
	}
}

// handleEvent processes a single fsnotify event. New directories are added to
// the watcher; relevant file changes are mapped to a WatchEvent.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) *WatchEvent {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return nil
	}

	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if err := w.addRecursive(watcher, event.Name); err != nil {
				w.logger.Error("Failed to watch new directory", "path", event.Name, "error", err)
			}
			return nil
		}
	}

	if !strings.HasSuffix(event.Name, w.project.Config().SourceExt) {
		return nil
	}

	return &WatchEvent{Path: event.Name}
}

// addRecursive adds the given path and all its subdirectories to the watcher.
func (w *Watcher) addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != root {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}
