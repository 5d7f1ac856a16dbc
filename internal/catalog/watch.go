package catalog

import (
	"sync"

	"github.com/fsnotify/fsnotify"
)

// watcher flags the catalog as stale when anything under its directories
// changes. It never rebuilds or mutates the catalog; staleness is purely
// advisory and reported at most once.
type watcher struct {
	fs   *fsnotify.Watcher
	once sync.Once

	mu    sync.Mutex
	stale bool
}

// Watch starts watching the directories discovered during Build and
// invokes onStale (once, from the watcher goroutine) on the first
// create/write/remove/rename event. Catalogs built with New have no
// directories and Watch is a no-op for them.
func (c *Catalog) Watch(onStale func()) error {
	if c.watcher != nil || len(c.dirs) == 0 {
		return nil
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	for _, dir := range c.dirs {
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return err
		}
	}
	w := &watcher{fs: fs}
	c.watcher = w

	go func() {
		for {
			select {
			case ev, ok := <-fs.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
					w.markStale(onStale)
				}
			case _, ok := <-fs.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

func (w *watcher) markStale(onStale func()) {
	w.once.Do(func() {
		w.mu.Lock()
		w.stale = true
		w.mu.Unlock()
		if onStale != nil {
			onStale()
		}
	})
}

// Stale reports whether the filesystem changed under the catalog since
// it was built.
func (c *Catalog) Stale() bool {
	if c.watcher == nil {
		return false
	}
	c.watcher.mu.Lock()
	defer c.watcher.mu.Unlock()
	return c.watcher.stale
}

// Close stops the watcher, if one was started.
func (c *Catalog) Close() error {
	if c.watcher == nil {
		return nil
	}
	return c.watcher.fs.Close()
}
