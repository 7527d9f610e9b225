package director

import (
	"log/slog"
	"strings"

	"github.com/pathwinder/core/fsquery"
	"github.com/pathwinder/core/internal/strs"
	"github.com/pathwinder/core/registry"
	"github.com/pathwinder/core/rules"
)

// Director selects rules for paths and generates instructions. It wraps
// an immutable registry.FinalizedRegistry and holds no mutable state of
// its own, so it may be shared freely across goroutines.
type Director struct {
	finalized *registry.FinalizedRegistry
	fsQuerier fsquery.Querier
	log       *slog.Logger
}

// Option configures a Director at construction.
type Option func(*Director)

// WithFileSystemQuerier supplies the real-filesystem query
// implementation used to decide pre-operations. Defaults to
// fsquery.OSQuerier.
func WithFileSystemQuerier(q fsquery.Querier) Option {
	return func(d *Director) { d.fsQuerier = q }
}

// WithLogger overrides the logger used to report a redirect decision
// that had to degrade to an unredirected fallback. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Director) { d.log = l }
}

// New constructs a Director from a finalized registry.
func New(finalized *registry.FinalizedRegistry, opts ...Option) *Director {
	d := &Director{finalized: finalized, fsQuerier: fsquery.OSQuerier{}, log: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// GenerationID returns the underlying registry's generation identifier.
func (d *Director) GenerationID() string { return d.finalized.GenerationID() }

// trimPath splits a path into its namespace prefix (if any) and a body
// with any trailing separator removed, reporting whether the trailing
// separator was present so callers can preserve it on output.
func trimPath(path string) (namespacePrefix, trimmedBody string, hadTrailingSeparator bool) {
	prefix, body := strs.TrimNamespacePrefix(path)
	hadTrailingSeparator = len(body) > 0 && body[len(body)-1] == strs.Separator
	trimmedBody = strs.RemoveTrailing(body, strs.Separator)

	return prefix, trimmedBody, hadTrailingSeparator
}

// SelectRulesForPath returns the RelatedFilesystemRuleContainer whose
// origin directory is the longest prefix of path among every
// registered rule's origin directory, or false if none matches.
func (d *Director) SelectRulesForPath(path string) (*rules.RelatedFilesystemRuleContainer, bool) {
	_, trimmedBody, _ := trimPath(path)

	ref := d.finalized.Tree().LongestMatchingPrefix(strs.ToLowerASCII(trimmedBody))
	if !d.finalized.Tree().Valid(ref) {
		return nil, false
	}

	return d.finalized.Tree().Data(ref)
}

// IsPrefixForAnyRule reports whether path is an ancestor of some rule's
// origin directory, i.e. whether the prefix tree has any node (with or
// without data) reachable by traversing path's components.
func (d *Director) IsPrefixForAnyRule(path string) bool {
	_, trimmedBody, _ := trimPath(path)
	return d.finalized.Tree().Valid(d.finalized.Tree().TraverseTo(strs.ToLowerASCII(trimmedBody)))
}

// FindRuleByName returns the rule registered under name, if any.
func (d *Director) FindRuleByName(name string) (rules.FilesystemRule, bool) {
	return d.finalized.RuleByName(name)
}

// FindRuleByOriginDirectory returns a rule whose origin directory
// exactly equals path. When multiple rules share that origin, an
// arbitrary but deterministic one is returned (the container's first
// rule under its ordering), matching the one-rule-per-origin shape
// most callers of this accessor expect.
func (d *Director) FindRuleByOriginDirectory(path string) (rules.FilesystemRule, bool) {
	_, trimmedBody, _ := trimPath(path)

	ref := d.finalized.Tree().Find(strs.ToLowerASCII(trimmedBody))
	if !d.finalized.Tree().Valid(ref) {
		return rules.FilesystemRule{}, false
	}

	container, ok := d.finalized.Tree().Data(ref)
	if !ok {
		return rules.FilesystemRule{}, false
	}

	return container.AnyRule()
}

// lastSeparatorIndex returns the index of the final separator in s, or
// -1 if s contains none.
func lastSeparatorIndex(s string) int {
	return strings.LastIndexByte(s, strs.Separator)
}
