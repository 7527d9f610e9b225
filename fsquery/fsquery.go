/*
Package fsquery defines the minimal real-filesystem query contract the
registry and director consult when building and evaluating rules. The
core never performs file I/O of its own beyond these two yes/no
questions; everything else about the real filesystem is the concern of
the application embedding it.
*/
package fsquery

import "os"

// Querier answers the two real-filesystem questions the core needs:
// whether a path is a directory, and whether a path exists at all (in
// any form). Both are reads with no side effects.
type Querier interface {
	// IsDirectory reports whether path exists and is a directory.
	IsDirectory(path string) bool
	// Exists reports whether path exists in any form (file or directory).
	Exists(path string) bool
}

// OSQuerier answers filesystem queries using os.Stat against the real,
// local filesystem.
type OSQuerier struct{}

// IsDirectory reports whether path exists and is a directory.
func (OSQuerier) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Exists reports whether path exists in any form.
func (OSQuerier) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// NeverQuerier answers every query as "does not exist". It is useful
// for tests and for callers that want rule hierarchies validated purely
// against other rules, independent of any real directory tree.
type NeverQuerier struct{}

// IsDirectory always reports false.
func (NeverQuerier) IsDirectory(string) bool { return false }

// Exists always reports false.
func (NeverQuerier) Exists(string) bool { return false }
