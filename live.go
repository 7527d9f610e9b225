// SPDX-License-Identifier: MIT

package pathwinder

import (
	"log/slog"
	"sync"

	"github.com/pathwinder/core/config"
	"github.com/pathwinder/core/configwatch"
	"github.com/pathwinder/core/director"
)

// LiveSystem holds a System that is rebuilt in place whenever the
// watched configuration file changes. It is a mutex-guarded current
// value, consulted far more often than it is rebuilt: reads take a
// read lock and return immediately, while a reload swaps the whole
// System in atomically under a write lock.
type LiveSystem struct {
	mu      sync.RWMutex
	current *System
	opts    Options
	onError func(error)

	watcher *configwatch.Watcher
}

// WatchFile builds an initial System from path and starts watching it
// for changes, rebuilding the System on every reload. onError, if
// non-nil, is invoked both for watch-layer errors (from configwatch)
// and for errors encountered while rebuilding the System from a
// reloaded document; in both cases the previously built System remains
// in effect until a rebuild succeeds.
func WatchFile(path string, opts Options, onError func(error)) (*LiveSystem, error) {
	initial, err := Load(path, opts)
	if err != nil {
		return nil, err
	}

	ls := &LiveSystem{current: initial, opts: opts, onError: onError}

	watcher, err := configwatch.New(path, ls.rebuild, ls.reportError)
	if err != nil {
		return nil, err
	}

	ls.watcher = watcher

	return ls, nil
}

func (ls *LiveSystem) rebuild(doc *config.Document) {
	next, err := New(doc, ls.opts)
	if err != nil {
		ls.reportError(err)
		return
	}

	ls.mu.Lock()
	ls.current = next
	ls.mu.Unlock()
}

func (ls *LiveSystem) reportError(err error) {
	if ls.onError != nil {
		ls.onError(err)
	} else {
		slog.Default().Warn("pathwinder: live system reload failed", "error", err)
	}
}

// Current returns the most recently built System.
func (ls *LiveSystem) Current() *System {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	return ls.current
}

// Director returns the current System's Director. Because System is
// immutable and swapped as a whole, a Director obtained here remains
// valid to use even after a subsequent reload swaps in a new System
// underneath it; callers that want to observe reloads should call
// Director again rather than holding one across a long-lived operation.
func (ls *LiveSystem) Director() *director.Director {
	return ls.Current().Director()
}

// Close stops watching the configuration file. The last System built
// remains accessible via Current.
func (ls *LiveSystem) Close() error {
	return ls.watcher.Close()
}
