package instruction

import "github.com/pathwinder/core/rules"

// DirectoryPathSource selects where a SingleDirectoryEnumeration's
// entries are actually read from.
type DirectoryPathSource uint8

const (
	// NoPathSource means no path is associated (invalid/unused entry).
	NoPathSource DirectoryPathSource = iota
	// AssociatedPathSource reads from the application-facing path.
	AssociatedPathSource
	// RealOpenedPathSource reads from the path actually opened on the
	// underlying filesystem.
	RealOpenedPathSource
	// FilePatternSourceOriginDirectory reads from a rule's origin
	// directory, filtered by that rule's file patterns.
	FilePatternSourceOriginDirectory
	// FilePatternSourceTargetDirectory reads from a rule's target
	// directory, filtered by that rule's file patterns.
	FilePatternSourceTargetDirectory
)

// FilePatternMatchCondition selects how a SingleDirectoryEnumeration
// decides whether a given filename is included.
type FilePatternMatchCondition uint8

const (
	// SingleRuleOnly applies one rule's patterns only.
	SingleRuleOnly FilePatternMatchCondition = iota
	// MatchAny includes a filename if any rule in the container matches.
	MatchAny
	// MatchByRedirectModeInvertOverlay includes a filename iff some
	// non-overlay rule matches; overlay-mode matches are inverted.
	MatchByRedirectModeInvertOverlay
	// MatchByPositionInvertAllPriorToSelected includes a filename iff
	// the first rule (scanning from position 0) that matches it is
	// exactly the configured rule index.
	MatchByPositionInvertAllPriorToSelected
)

// PatternSourceKind tags which alternative of PatternSource is present.
// This is the Go rendering of the sum type called for by the port's
// "union of single rule pointer or container pointer" substitution.
type PatternSourceKind uint8

const (
	// PatternSourceNone means no pattern source is attached.
	PatternSourceNone PatternSourceKind = iota
	// PatternSourceSingleRule means PatternSource.Rule is populated.
	PatternSourceSingleRule
	// PatternSourceRuleContainer means PatternSource.Container is
	// populated, along with a match condition and rule index.
	PatternSourceRuleContainer
)

// PatternSource is a tagged union identifying the rule, or container of
// rules, that governs filtering for a SingleDirectoryEnumeration entry.
type PatternSource struct {
	kind      PatternSourceKind
	rule      rules.FilesystemRule
	container *rules.RelatedFilesystemRuleContainer
	condition FilePatternMatchCondition
	ruleIndex int
}

// NoPatternSource constructs an empty PatternSource.
func NoPatternSource() PatternSource {
	return PatternSource{kind: PatternSourceNone}
}

// SingleRulePatternSource constructs a PatternSource naming one rule.
func SingleRulePatternSource(rule rules.FilesystemRule) PatternSource {
	return PatternSource{kind: PatternSourceSingleRule, rule: rule, condition: SingleRuleOnly}
}

// RuleContainerPatternSource constructs a PatternSource naming a
// container, the match condition to apply, and (when relevant) the
// index of a distinguished rule within it.
func RuleContainerPatternSource(container *rules.RelatedFilesystemRuleContainer, condition FilePatternMatchCondition, ruleIndex int) PatternSource {
	return PatternSource{
		kind:      PatternSourceRuleContainer,
		container: container,
		condition: condition,
		ruleIndex: ruleIndex,
	}
}

// Kind reports which alternative of the union is populated.
func (p PatternSource) Kind() PatternSourceKind { return p.kind }

// Rule returns the single rule, valid only when Kind is
// PatternSourceSingleRule.
func (p PatternSource) Rule() rules.FilesystemRule { return p.rule }

// Container returns the rule container, valid only when Kind is
// PatternSourceRuleContainer.
func (p PatternSource) Container() *rules.RelatedFilesystemRuleContainer { return p.container }

// MatchCondition returns the configured match condition.
func (p PatternSource) MatchCondition() FilePatternMatchCondition { return p.condition }

// RuleIndex returns the distinguished rule index, valid only when Kind
// is PatternSourceRuleContainer.
func (p PatternSource) RuleIndex() int { return p.ruleIndex }

// SingleDirectoryEnumeration describes one directory's worth of
// entries to fold into an enumeration result.
type SingleDirectoryEnumeration struct {
	pathSource     DirectoryPathSource
	source         PatternSource
	invertMatches  bool
}

// NewSingleDirectoryEnumeration constructs a SingleDirectoryEnumeration.
func NewSingleDirectoryEnumeration(pathSource DirectoryPathSource, source PatternSource, invertMatches bool) SingleDirectoryEnumeration {
	return SingleDirectoryEnumeration{pathSource: pathSource, source: source, invertMatches: invertMatches}
}

// PathSource reports where this entry's filenames should be read from.
func (e SingleDirectoryEnumeration) PathSource() DirectoryPathSource { return e.pathSource }

// Source returns the pattern source governing filtering.
func (e SingleDirectoryEnumeration) Source() PatternSource { return e.source }

// InvertMatches reports whether the match outcome should be inverted.
func (e SingleDirectoryEnumeration) InvertMatches() bool { return e.invertMatches }

// SingleDirectoryNameInsertion names a rule whose origin-directory base
// name should be injected as a synthetic entry into an enumeration.
type SingleDirectoryNameInsertion struct {
	rule rules.FilesystemRule
}

// NewSingleDirectoryNameInsertion constructs a SingleDirectoryNameInsertion.
func NewSingleDirectoryNameInsertion(rule rules.FilesystemRule) SingleDirectoryNameInsertion {
	return SingleDirectoryNameInsertion{rule: rule}
}

// Rule returns the rule this insertion is derived from.
func (i SingleDirectoryNameInsertion) Rule() rules.FilesystemRule { return i.rule }

// DirectoryEnumerationInstruction is the director's decision for a
// directory-enumeration operation.
type DirectoryEnumerationInstruction struct {
	directoriesToEnumerate []SingleDirectoryEnumeration
	namesToInsert          []SingleDirectoryNameInsertion
}

// DirectoriesToEnumerate returns the ordered list of source directories
// to fold into the enumeration result.
func (i DirectoryEnumerationInstruction) DirectoriesToEnumerate() []SingleDirectoryEnumeration {
	return i.directoriesToEnumerate
}

// NamesToInsert returns the ordered list of synthetic directory-name
// insertions, or nil if there are none.
func (i DirectoryEnumerationInstruction) NamesToInsert() []SingleDirectoryNameInsertion {
	return i.namesToInsert
}

// EnumerateDirectories constructs a DirectoryEnumerationInstruction with
// no name insertions.
func EnumerateDirectories(list []SingleDirectoryEnumeration) DirectoryEnumerationInstruction {
	return DirectoryEnumerationInstruction{directoriesToEnumerate: list}
}

// InsertRuleOriginDirectoryNames constructs a DirectoryEnumerationInstruction
// with no directories of its own, only name insertions. This is used
// when part C applies but part A/B decided nothing needs enumerating,
// which should not normally occur but is expressible for completeness.
func InsertRuleOriginDirectoryNames(insertions []SingleDirectoryNameInsertion) DirectoryEnumerationInstruction {
	return DirectoryEnumerationInstruction{namesToInsert: insertions}
}

// EnumerateDirectoriesAndInsertRuleOriginDirectoryNames constructs a
// DirectoryEnumerationInstruction carrying both directories to
// enumerate and names to insert: the common case.
func EnumerateDirectoriesAndInsertRuleOriginDirectoryNames(list []SingleDirectoryEnumeration, insertions []SingleDirectoryNameInsertion) DirectoryEnumerationInstruction {
	return DirectoryEnumerationInstruction{directoriesToEnumerate: list, namesToInsert: insertions}
}

// UseOnlyRuleOriginDirectoryNames is an alias for
// InsertRuleOriginDirectoryNames kept to mirror the contract's named
// factory constructors one-for-one.
func UseOnlyRuleOriginDirectoryNames(insertions []SingleDirectoryNameInsertion) DirectoryEnumerationInstruction {
	return InsertRuleOriginDirectoryNames(insertions)
}
