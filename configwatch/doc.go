/*
Package configwatch is an optional hot-reload helper layered outside
the core: it watches a configuration file with fsnotify and re-parses
it on change, handing the caller a fresh config.Document to rebuild a
registry.Registry from. None of the core packages (resolve, rules,
registry, director, instruction) depend on this package; wiring it in
is the embedding application's choice, mirroring how
github.com/haraldrudell/parl/watchfs is a free-standing watcher that
the rest of that module does not require.
*/
package configwatch
