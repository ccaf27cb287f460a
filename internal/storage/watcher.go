package storage

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce collapses bursts of writes (a SQLite commit touches the
// database and its journal) into one notification.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to data files. It watches the parent directory of
// each file so that atomic rename-over writes are seen too. Sidecar files
// named "<file>-suffix" (SQLite -wal, -journal) count as the file itself.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func(path string)
	debounce time.Duration
	log      zerolog.Logger

	mu     sync.Mutex
	files  map[string]struct{}
	dirs   map[string]int
	timers map[string]*time.Timer
	done   chan struct{}

	closeOnce sync.Once
	closeErr  error
}

func NewWatcher(log zerolog.Logger, debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		debounce: debounce,
		log:      log,
		files:    map[string]struct{}{},
		dirs:     map[string]int{},
		timers:   map[string]*time.Timer{},
		done:     make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

func (w *Watcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.files[absPath]; ok {
		return nil
	}
	dir := filepath.Dir(absPath)
	if w.dirs[dir] == 0 {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[absPath] = struct{}{}
	return nil
}

func (w *Watcher) Remove(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.files[absPath]; !ok {
		return nil
	}
	delete(w.files, absPath)
	dir := filepath.Dir(absPath)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		return w.watcher.Remove(dir)
	}
	return nil
}

// match maps an event path onto the watched file it belongs to.
func (w *Watcher) match(name string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.files[name]; ok {
		return name, true
	}
	for f := range w.files {
		if strings.HasPrefix(name, f+"-") {
			return f, true
		}
	}
	return "", false
}

func (w *Watcher) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if file, ok := w.match(filepath.Clean(event.Name)); ok {
				w.schedule(file)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("file watcher error")

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule(file string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[file]; ok {
		t.Stop()
	}
	w.timers[file] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, file)
		_, watching := w.files[file]
		w.mu.Unlock()

		if watching && w.onChange != nil {
			w.onChange(file)
		}
	})
}

// Close stops the watcher. Later calls return the first call's result.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		for _, t := range w.timers {
			t.Stop()
		}
		w.mu.Unlock()
		close(w.done)
		w.closeErr = w.watcher.Close()
	})
	return w.closeErr
}
