// Package watch re-runs validation whenever the events tree changes,
// giving event authors immediate feedback while they edit locally.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches rapid editor saves into one validation run.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors the events root and triggers a callback after each
// settled burst of filesystem changes. fsnotify is not recursive, so event
// subdirectories and their asset directories are registered individually
// and newly created directories are picked up on the fly.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	root     string
	debounce time.Duration
	run      func()
	logger   *zap.Logger

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// New creates a Watcher over root. run is invoked once per settled burst.
func New(root string, debounce time.Duration, logger *zap.Logger, run func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fsw:      fsw,
		root:     root,
		debounce: debounce,
		run:      run,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start registers the tree and launches the event loop. Non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addTree(); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		_ = w.fsw.Close()
		return err
	}

	go w.loop(ctx)
	return nil
}

// Stop shuts the watcher down and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.fsw.Close()
}

// addTree registers the root, each event directory, and each directory one
// level below it (the asset directories).
func (w *Watcher) addTree() error {
	if err := w.fsw.Add(w.root); err != nil {
		return err
	}
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(w.root, entry.Name())
		_ = w.fsw.Add(dir)
		subs, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, sub := range subs {
			if sub.IsDir() {
				_ = w.fsw.Add(filepath.Join(dir, sub.Name()))
			}
		}
	}
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.logger.Debug("filesystem change",
				zap.String("path", ev.Name),
				zap.String("op", ev.Op.String()))
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.fsw.Add(ev.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			w.run()
		}
	}
}
