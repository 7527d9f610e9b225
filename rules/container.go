package rules

import (
	"fmt"
	"sort"
)

// RelatedFilesystemRuleContainer holds every FilesystemRule that shares
// the same origin directory, kept in a deterministic order: rules with
// more file patterns sort first, and rules with an equal pattern count
// are ordered by ascending name. This mirrors the registry's need for a
// stable, content-derived iteration order rather than insertion order.
type RelatedFilesystemRuleContainer struct {
	rules []FilesystemRule
}

// NewRelatedFilesystemRuleContainer constructs an empty container.
func NewRelatedFilesystemRuleContainer() *RelatedFilesystemRuleContainer {
	return &RelatedFilesystemRuleContainer{}
}

// Insert adds rule to the container, rejecting a duplicate name.
func (c *RelatedFilesystemRuleContainer) Insert(rule FilesystemRule) error {
	for _, existing := range c.rules {
		if existing.Name() == rule.Name() {
			return fmt.Errorf("%w: %q", ErrDuplicateRuleName, rule.Name())
		}
	}

	c.rules = append(c.rules, rule)

	sort.SliceStable(c.rules, func(i, j int) bool {
		pi, pj := len(c.rules[i].patterns), len(c.rules[j].patterns)
		if pi != pj {
			return pi > pj
		}

		return c.rules[i].Name() < c.rules[j].Name()
	})

	return nil
}

// Len returns the number of rules in the container.
func (c *RelatedFilesystemRuleContainer) Len() int { return len(c.rules) }

// AllRules returns every rule in the container's deterministic order.
// The returned slice must not be modified by the caller.
func (c *RelatedFilesystemRuleContainer) AllRules() []FilesystemRule {
	return c.rules
}

// RuleMatchingFileName scans the container, starting at startingIndex,
// for the first rule whose file patterns match name. It returns the
// matching rule, its index, and true, or a zero rule, -1, and false if
// none match.
func (c *RelatedFilesystemRuleContainer) RuleMatchingFileName(name string, startingIndex int) (FilesystemRule, int, bool) {
	for i := startingIndex; i < len(c.rules); i++ {
		if c.rules[i].FileNameMatches(name) {
			return c.rules[i], i, true
		}
	}

	return FilesystemRule{}, -1, false
}

// HasRuleMatchingFileName reports whether any rule in the container
// matches name.
func (c *RelatedFilesystemRuleContainer) HasRuleMatchingFileName(name string) bool {
	_, _, ok := c.RuleMatchingFileName(name, 0)
	return ok
}

// AnyRule returns an arbitrary rule from the container for queries that
// only need to know a rule exists for this origin directory (such as
// directory-enumeration redirection, which is not file-name specific).
// Per the container's deterministic ordering, this is always the first
// rule in that order, making the choice reproducible across runs.
func (c *RelatedFilesystemRuleContainer) AnyRule() (FilesystemRule, bool) {
	if len(c.rules) == 0 {
		return FilesystemRule{}, false
	}

	return c.rules[0], true
}
