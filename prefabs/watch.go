package prefabs

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind says which loader an edited file belongs to.
type ChangeKind int

const (
	NoChange ChangeKind = iota
	MapChange
	SpecChange
)

func (k ChangeKind) String() string {
	switch k {
	case MapChange:
		return "map"
	case SpecChange:
		return "spec"
	}
	return "none"
}

// KindOf classifies path by extension: .yaml and .yml are specs, .txt is a
// level map, anything else is ignored.
func KindOf(path string) ChangeKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SpecChange
	case ".txt":
		return MapChange
	}
	return NoChange
}

// Change is one edited file.
type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher collects edits to specs and level maps on disk until the game
// loop takes them with Pending. An editor that writes a file several times
// in one save yields a single Change.
type Watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}

	mu      sync.Mutex
	pending []Change
	seen    map[string]bool
	err     error
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{fs: fw, done: make(chan struct{})}
	go w.run()
	return w, nil
}

// Pending returns the changes seen since the last call, oldest first, and
// the first watch error among them. It never blocks on the file system.
func (w *Watcher) Pending() ([]Change, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	changes, err := w.pending, w.err
	w.pending, w.seen, w.err = nil, nil, nil
	return changes, err
}

// note records an edit, keeping the position of the first edit to path.
func (w *Watcher) note(path string) {
	kind := KindOf(path)
	if kind == NoChange {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.seen[path] {
		return
	}
	if w.seen == nil {
		w.seen = make(map[string]bool)
	}
	w.seen[path] = true
	w.pending = append(w.pending, Change{Path: path, Kind: kind})
}

func (w *Watcher) fail(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err == nil {
		w.err = err
	}
}

// Close stops watching. Changes not yet taken are dropped.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.note(ev.Name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.fail(err)
		}
	}
}
