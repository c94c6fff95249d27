package glapp

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads programs when their shader sources change on disk.
//
// File events are collected on a background goroutine that never touches the
// graphics context. Reload performs the rebuilds and must be called from the
// context thread, typically from the render func.
type Watcher struct {
	fsw *fsnotify.Watcher

	mu       sync.Mutex
	programs map[string][]*Program
	dirs     map[string]struct{}
	dirty    map[*Program]struct{}

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
	wg        sync.WaitGroup
}

// NewWatcher starts a file watcher.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create shader watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		programs: make(map[string][]*Program),
		dirs:     make(map[string]struct{}),
		dirty:    make(map[*Program]struct{}),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Add watches both source files of p. Directories rather than files are
// watched so that editors which save by renaming are still picked up.
func (w *Watcher) Add(p *Program) error {
	for _, path := range []string{p.vertexPath, p.fragmentPath} {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("watch %q: %w", path, err)
		}

		dir := filepath.Dir(abs)
		w.mu.Lock()
		_, watched := w.dirs[dir]
		w.mu.Unlock()
		if !watched {
			if err := w.fsw.Add(dir); err != nil {
				return fmt.Errorf("watch %q: %w", dir, err)
			}
		}

		w.mu.Lock()
		w.dirs[dir] = struct{}{}
		if !slices.Contains(w.programs[abs], p) {
			w.programs[abs] = append(w.programs[abs], p)
		}
		w.mu.Unlock()
	}
	return nil
}

// Remove stops tracking p and drops any reload queued for it. Directories
// stay watched; events for files no program uses are ignored.
func (w *Watcher) Remove(p *Program) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, list := range w.programs {
		list = slices.DeleteFunc(list, func(q *Program) bool { return q == p })
		if len(list) == 0 {
			delete(w.programs, path)
			continue
		}
		w.programs[path] = list
	}
	delete(w.dirty, p)
}

// Pending returns the number of programs waiting to be reloaded.
func (w *Watcher) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.dirty)
}

// Reload rebuilds every program whose sources changed since the last call and
// returns how many rebuilt successfully. Failed rebuilds keep the previous
// program and are logged by the program itself. Deleted programs are dropped
// instead of rebuilt.
func (w *Watcher) Reload() int {
	w.mu.Lock()
	dirty := w.dirty
	w.dirty = make(map[*Program]struct{})
	w.mu.Unlock()

	reloaded := 0
	for p := range dirty {
		if p.Deleted() {
			w.Remove(p)
			continue
		}
		if err := p.Reload(); err != nil {
			logger.Warningf("keeping previous shader program: %v", err)
			continue
		}
		reloaded++
	}
	return reloaded
}

// Close stops watching. It is safe to call more than once and from several
// goroutines.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fsw.Close()
		w.wg.Wait()
	})
	return w.closeErr
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.markChanged(ev.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warningf("shader watcher: %v", err)
		}
	}
}

func (w *Watcher) markChanged(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range w.programs[abs] {
		w.dirty[p] = struct{}{}
	}
}
