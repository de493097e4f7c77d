package controls

import (
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/landscape/engine/core"
)

type watcher struct {
	fsnotify *fsnotify.Watcher
	path     string
	done     chan struct{}
	stopped  chan struct{}
}

// Watch loads path and keeps reloading it whenever it is written or
// replaced. The directory is watched rather than the file because editors
// usually save by renaming a temporary file over the original.
func (r *Registry) Watch(path string) error {
	w := &watcher{
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	// Claim the slot before any setup so concurrent callers cannot both win.
	r.mutex.Lock()
	if r.watcher != nil {
		r.mutex.Unlock()
		return errors.New("controls are already being watched")
	}
	r.watcher = w
	r.mutex.Unlock()

	release := func() {
		r.mutex.Lock()
		if r.watcher == w {
			r.watcher = nil
		}
		r.mutex.Unlock()
	}

	if _, err := r.Load(path); err != nil {
		release()
		return err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		release()
		return err
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		err = fsWatch.Add(filepath.Dir(abs))
	}
	if err != nil {
		fsWatch.Close()
		release()
		return err
	}

	r.mutex.Lock()
	if r.watcher != w {
		r.mutex.Unlock()
		fsWatch.Close()
		return errors.New("controls closed while the watch was starting")
	}
	w.fsnotify = fsWatch
	w.path = abs
	r.mutex.Unlock()

	go r.watch(w)
	return nil
}

func (r *Registry) watch(w *watcher) {
	defer close(w.stopped)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			n, err := r.Load(w.path)
			if err != nil {
				core.LogError("failed to reload controls: %s", err)
				continue
			}
			core.LogDebug("reloaded %d controls from %s", n, w.path)

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("watching controls: %s", err)

		case <-w.done:
			return
		}
	}
}

// Close stops watching. It is safe to call when Watch was never called.
func (r *Registry) Close() error {
	r.mutex.Lock()
	w := r.watcher
	r.watcher = nil
	// A watch still starting has no goroutine yet and cleans up after itself.
	started := w != nil && w.fsnotify != nil
	r.mutex.Unlock()
	if !started {
		return nil
	}
	close(w.done)
	<-w.stopped
	return w.fsnotify.Close()
}
