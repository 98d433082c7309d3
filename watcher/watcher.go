// Package watcher detects changes to binding profile files on disk.
//
// The game rewrites its exported rebind file in place, often with several
// writes in quick succession. The watcher coalesces those bursts with a
// debounce window and notifies once per settled change, so a host can reload
// the binding graph without reacting to half-written files.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/VeeLume/streamdeck-sc-mapper/logging"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// Event reports a settled change to a watched file.
type Event struct {
	// Path is the absolute path of the changed file.
	Path string

	// Timestamp is when the last underlying change arrived.
	Timestamp time.Time
}

// Handler receives settled change events. It is called from the watcher's
// goroutine; slow handlers delay later events.
type Handler func(Event)

// Config controls watcher behavior.
type Config struct {
	// Debounce is how long a file must stay quiet before its change is
	// reported. Zero uses DefaultDebounce.
	Debounce time.Duration

	// Extensions limits events to files with these extensions (lowercase,
	// with dot). Empty watches everything.
	Extensions []string

	// Logger receives watch diagnostics. Nil disables logging.
	Logger logging.Logger
}

// DefaultDebounce is the settle window applied when Config.Debounce is zero.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors profile files for changes.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	handler  Handler
	debounce time.Duration
	exts     map[string]bool
	log      logging.Logger

	pending map[string]*time.Timer
	closed  bool
	closeCh chan struct{}
	doneWg  sync.WaitGroup
}

// New creates a watcher delivering settled events to handler.
func New(cfg Config, handler Handler) (*Watcher, error) {
	if handler == nil {
		return nil, errors.New("watcher: nil handler")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	exts := make(map[string]bool, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		exts[ext] = true
	}

	w := &Watcher{
		fsw:      fsw,
		handler:  handler,
		debounce: debounce,
		exts:     exts,
		log:      log,
		pending:  make(map[string]*time.Timer),
		closeCh:  make(chan struct{}),
	}

	w.doneWg.Add(1)
	go w.loop()

	return w, nil
}

// Watch adds a file or directory to the watch set. Watching a file watches
// its parent directory so in-place replacement (write to temp, rename over)
// is still observed.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}

	target := absPath
	if !info.IsDir() {
		target = filepath.Dir(absPath)
	}
	return w.fsw.Add(target)
}

// Close stops the watcher and cancels pending notifications.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	w.doneWg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.doneWg.Done()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warnf("watch error: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return
	}
	if len(w.exts) > 0 && !w.exts[filepath.Ext(ev.Name)] {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	path := ev.Name
	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}

	w.log.Debugf("change detected: %s", path)
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.fire(path)
	})
}

func (w *Watcher) fire(path string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	delete(w.pending, path)
	w.mu.Unlock()

	w.handler(Event{Path: path, Timestamp: time.Now()})
}
