// Package fswatch watches input documents for changes using
// github.com/fsnotify/fsnotify.
package fswatch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
	"github.com/custodia-labs/faster-beamer/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// DefaultInterval is the minimum spacing between two emitted events.
const DefaultInterval = 250 * time.Millisecond

// Watcher emits one event per burst of writes to a file. The parent
// directory is watched so that editors saving through rename are seen.
type Watcher struct {
	interval time.Duration
}

// New creates a watcher. Events closer together than interval are merged.
func New(interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{interval: interval}
}

// Watch starts watching path until ctx is done.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan driven.WatchEvent, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(target)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	limiter := rate.NewLimiter(rate.Every(w.interval), 1)
	// Spend the initial token so the first burst also gets time to settle.
	limiter.Allow()

	out := make(chan driven.WatchEvent, 1)
	go w.loop(ctx, fw, limiter, target, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, limiter *rate.Limiter, target string, out chan<- driven.WatchEvent) {
	defer close(out)
	defer fw.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			if !send(ctx, out, driven.WatchEvent{Path: target, Err: err}) {
				return
			}

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if !isRelevant(ev, target) {
				continue
			}
			logger.Debug("Change detected: %s (%s)", ev.Name, ev.Op)

			if err := limiter.Wait(ctx); err != nil {
				return
			}
			drain(fw.Events)
			if !send(ctx, out, driven.WatchEvent{Path: target}) {
				return
			}
		}
	}
}

// isRelevant reports whether ev changed the content of target.
func isRelevant(ev fsnotify.Event, target string) bool {
	if filepath.Clean(ev.Name) != target {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// drain discards events already queued; they belong to the burst being
// reported.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func send(ctx context.Context, out chan<- driven.WatchEvent, ev driven.WatchEvent) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
