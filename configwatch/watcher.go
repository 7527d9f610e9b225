package configwatch

import (
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/pathwinder/core/config"
)

// Watcher watches a single configuration file and invokes onChange with
// a freshly parsed config.Document whenever fsnotify reports a write or
// create event for it; other events (rename, remove, chmod) are
// ignored. Parse errors and filesystem errors are reported via
// onError rather than stopping the watch loop, so a transient bad edit
// does not permanently wedge a live reload setup.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	onChange  func(*config.Document)
	onError   func(error)
	done      chan struct{}
}

// New starts watching path. The caller must call Close when done.
func New(path string, onChange func(*config.Document), onError func(error)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsWatcher.Add(path); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		path:      path,
		onChange:  onChange,
		onError:   onError,
		done:      make(chan struct{}),
	}

	go w.loop()

	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			w.reload()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

func (w *Watcher) reload() {
	f, err := os.Open(w.path)
	if err != nil {
		if w.onError != nil {
			w.onError(err)
		}

		return
	}
	defer func() { _ = f.Close() }()

	doc, err := config.Parse(f)
	if err != nil {
		if w.onError != nil {
			w.onError(err)
		}

		return
	}

	if w.onChange != nil {
		w.onChange(doc)
	}
}

// Close stops the watch loop and releases the underlying fsnotify
// watcher. It blocks until the loop goroutine has exited.
func (w *Watcher) Close() error {
	err := w.fsWatcher.Close()
	<-w.done

	return err
}
