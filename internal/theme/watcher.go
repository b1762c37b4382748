package theme

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	nudleerrors "github.com/alexisbeaulieu97/nudle/pkg/errors"
)

// Watcher reports theme values written to a FileStore by anyone, including
// other nudle processes. Saves are atomic renames, so the parent directory is
// watched rather than the file itself.
type Watcher struct {
	store   *FileStore
	watcher *fsnotify.Watcher
	target  string

	changes chan Value
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the directory holding store's file.
func NewWatcher(store *FileStore) (*Watcher, error) {
	dir := filepath.Dir(store.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nudleerrors.NewStoreError("watch", store.Path(), err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nudleerrors.NewStoreError("watch", store.Path(), err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, nudleerrors.NewStoreError("watch", store.Path(), err)
	}

	w := &Watcher{
		store:   store,
		watcher: fw,
		target:  filepath.Clean(store.Path()),
		changes: make(chan Value, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changes delivers the stored value after each write to the file.
func (w *Watcher) Changes() <-chan Value {
	return w.changes
}

// Errors delivers load and watch failures. Slow readers miss errors rather
// than block the watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			value, stored, err := w.store.Load()
			if err != nil {
				w.reportError(err)
				continue
			}
			if !stored {
				continue
			}
			w.publish(value)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.reportError(nudleerrors.NewStoreError("watch", w.target, err))
		}
	}
}

// publish keeps only the latest value when the reader falls behind.
func (w *Watcher) publish(v Value) {
	for {
		select {
		case w.changes <- v:
			return
		case <-w.done:
			return
		default:
		}
		select {
		case <-w.changes:
		default:
		}
	}
}

func (w *Watcher) reportError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
