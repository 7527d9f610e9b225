package rules

import (
	"fmt"
	"strings"

	"github.com/pathwinder/core/glob"
	"github.com/pathwinder/core/internal/strs"
)

// FilesystemRule is an immutable description of a mapping between an
// origin directory and a target directory, along with the set of file
// patterns it applies to. Once constructed by NewFilesystemRule a rule
// never changes, so it can be shared freely across goroutines.
type FilesystemRule struct {
	name      string
	originDir string
	targetDir string
	patterns  []string
	mode      RedirectMode
}

// NewFilesystemRule validates its arguments and constructs a
// FilesystemRule. Both directories must be drive-letter rooted absolute
// paths that are not themselves filesystem roots (UNC paths are
// rejected), and patterns must not contain path separators.
func NewFilesystemRule(name, originDir, targetDir string, patterns []string, mode RedirectMode) (FilesystemRule, error) {
	if !mode.Valid() {
		return FilesystemRule{}, fmt.Errorf("%w: %v", ErrInvalidRedirectMode, mode)
	}

	canonOrigin, err := canonicalizeRuleDirectory(originDir)
	if err != nil {
		return FilesystemRule{}, fmt.Errorf("origin directory %q: %w", originDir, err)
	}

	canonTarget, err := canonicalizeRuleDirectory(targetDir)
	if err != nil {
		return FilesystemRule{}, fmt.Errorf("target directory %q: %w", targetDir, err)
	}

	normalized := make([]string, len(patterns))
	for i, p := range patterns {
		if glob.HasDisallowedChar(p) {
			return FilesystemRule{}, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}

		normalized[i] = strs.ToLowerASCII(p)
	}

	if glob.AllUniversal(normalized) {
		normalized = nil
	}

	return FilesystemRule{
		name:      name,
		originDir: canonOrigin,
		targetDir: canonTarget,
		patterns:  normalized,
		mode:      mode,
	}, nil
}

// canonicalizeRuleDirectory rejects filesystem roots and syntactically
// invalid paths, and strips any trailing separator.
func canonicalizeRuleDirectory(dir string) (string, error) {
	if dir == "" || !strs.HasDriveLetterPrefix(dir) {
		return "", ErrInvalidDirectory
	}

	trimmed := strs.RemoveTrailing(dir, strs.Separator)
	if strs.IsVolumeRoot(trimmed + string(strs.Separator)) {
		return "", ErrInvalidDirectory
	}

	if strings.ContainsAny(trimmed, "*?") {
		return "", ErrInvalidDirectory
	}

	return trimmed, nil
}

// Name returns the rule's unique name.
func (r FilesystemRule) Name() string { return r.name }

// OriginDirectory returns the canonicalized origin directory.
func (r FilesystemRule) OriginDirectory() string { return r.originDir }

// TargetDirectory returns the canonicalized target directory.
func (r FilesystemRule) TargetDirectory() string { return r.targetDir }

// FilePatterns returns the rule's file-name patterns. The slice is
// owned by the rule and must not be modified by the caller.
func (r FilesystemRule) FilePatterns() []string { return r.patterns }

// Mode returns the rule's redirect mode.
func (r FilesystemRule) Mode() RedirectMode { return r.mode }

// HasFilePatterns reports whether the rule constrains matches by file
// name, as opposed to matching every file unconditionally.
func (r FilesystemRule) HasFilePatterns() bool {
	return !glob.AllUniversal(r.patterns)
}

// FileNameMatches reports whether name matches any of the rule's file
// patterns. A rule with no patterns (or only universal patterns)
// matches every name.
func (r FilesystemRule) FileNameMatches(name string) bool {
	if len(r.patterns) == 0 {
		return true
	}

	lowered := strs.ToLowerASCII(name)
	for _, p := range r.patterns {
		if glob.Match(p, lowered) {
			return true
		}
	}

	return false
}

// CompareToOrigin classifies candidateDir relative to the rule's origin
// directory. See CompareDirectories for the classification rules.
func (r FilesystemRule) CompareToOrigin(candidateDir string) DirectoryCompareResult {
	return CompareDirectories(r.originDir, candidateDir)
}

// CompareToTarget classifies candidateDir relative to the rule's target
// directory.
func (r FilesystemRule) CompareToTarget(candidateDir string) DirectoryCompareResult {
	return CompareDirectories(r.targetDir, candidateDir)
}

// CompareDirectories classifies candidate relative to base: whether it
// is the same directory, a child, a deeper descendant, the immediate
// parent, or a shallower ancestor, using ASCII case-insensitive,
// component-aware comparison. Unrelated paths (including ones that
// merely share a string prefix without a component boundary) return
// Unrelated.
func CompareDirectories(base, candidate string) DirectoryCompareResult {
	if strs.EqualFold(base, candidate) {
		return Equal
	}

	if strs.HasPrefixFold(candidate, base) && isSeparatorBoundary(candidate, len(base)) {
		suffix := candidate[len(base)+1:]
		if strings.IndexByte(suffix, strs.Separator) < 0 {
			return CandidateIsChild
		}

		return CandidateIsDescendant
	}

	if strs.HasPrefixFold(base, candidate) && isSeparatorBoundary(base, len(candidate)) {
		suffix := base[len(candidate)+1:]
		if strings.IndexByte(suffix, strs.Separator) < 0 {
			return CandidateIsParent
		}

		return CandidateIsAncestor
	}

	return Unrelated
}

// isSeparatorBoundary reports whether s[prefixLen] is a path separator,
// meaning prefixLen marks a full path component boundary rather than a
// mid-component string match (e.g. "C:\Foo" is not a prefix-boundary
// match within "C:\Foobar").
func isSeparatorBoundary(s string, prefixLen int) bool {
	return prefixLen < len(s) && s[prefixLen] == strs.Separator
}

// RedirectOriginToTarget rewrites a directory that is equal to or a
// descendant of the rule's origin directory into the corresponding
// directory under the target directory. directoryPart must have
// already been resolved against CompareToOrigin returning Equal,
// CandidateIsChild, or CandidateIsDescendant.
func (r FilesystemRule) RedirectOriginToTarget(directoryPart string) (string, error) {
	return redirectAcross(r.originDir, r.targetDir, directoryPart)
}

// RedirectTargetToOrigin is the inverse of RedirectOriginToTarget.
func (r FilesystemRule) RedirectTargetToOrigin(directoryPart string) (string, error) {
	return redirectAcross(r.targetDir, r.originDir, directoryPart)
}

func redirectAcross(fromBase, toBase, directoryPart string) (string, error) {
	cmp := CompareDirectories(fromBase, directoryPart)
	if !cmp.IsEqualOrDescendant() {
		return "", fmt.Errorf("%w: %q relative to %q", ErrNotDescendant, directoryPart, fromBase)
	}

	if cmp == Equal {
		return toBase, nil
	}

	return toBase + directoryPart[len(fromBase):], nil
}
