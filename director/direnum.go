package director

import (
	"sort"

	"github.com/pathwinder/core/instruction"
	"github.com/pathwinder/core/internal/strs"
	"github.com/pathwinder/core/rules"
)

// InstructionForDirectoryEnumeration decides how a directory
// enumeration should be spliced across the origin and target sides of
// any matching rules. associatedPath is the application-facing path
// recorded when the directory handle was opened; realOpenedPath is the
// path actually opened on the underlying filesystem.
func (d *Director) InstructionForDirectoryEnumeration(associatedPath, realOpenedPath string) instruction.DirectoryEnumerationInstruction {
	_, associatedTrim, _ := trimPath(associatedPath)
	_, realTrim, _ := trimPath(realOpenedPath)

	redirected := !strs.EqualFold(associatedTrim, realTrim)

	var entries []instruction.SingleDirectoryEnumeration

	didPartA := false
	if redirected {
		if container, ok := d.SelectRulesForPath(associatedTrim); ok {
			entries = append(entries, d.partAEntries(container, associatedTrim, realTrim)...)
			didPartA = true
		} else {
			d.log.Warn("redirected directory enumeration found no rule container for associated path, falling back to real opened path",
				"associatedPath", associatedTrim, "realOpenedPath", realTrim)
		}
	}

	if !redirected || !didPartA {
		entries = append(entries, instruction.NewSingleDirectoryEnumeration(instruction.RealOpenedPathSource, instruction.NoPatternSource(), false))
	}

	insertions := d.partCInsertions(associatedTrim)

	if len(insertions) > 0 {
		return instruction.EnumerateDirectoriesAndInsertRuleOriginDirectoryNames(entries, insertions)
	}

	return instruction.EnumerateDirectories(entries)
}

// partAEntries enumerates the substitute directories a redirected
// directory handle should read entries from.
func (d *Director) partAEntries(container *rules.RelatedFilesystemRuleContainer, associatedTrim, realTrim string) []instruction.SingleDirectoryEnumeration {
	allRules := container.AllRules()
	n := len(allRules)

	k := 0
	for i, rule := range allRules {
		if strs.EqualFold(rule.TargetDirectory(), realTrim) {
			k = i
			break
		}
	}

	if n == 1 {
		only := allRules[0]
		cmp := only.CompareToOrigin(associatedTrim)
		if !only.HasFilePatterns() || cmp == rules.CandidateIsDescendant || cmp == rules.CandidateIsChild {
			return []instruction.SingleDirectoryEnumeration{
				instruction.NewSingleDirectoryEnumeration(instruction.RealOpenedPathSource, instruction.NoPatternSource(), false),
			}
		}
	}

	entries := make([]instruction.SingleDirectoryEnumeration, 0, n+1)

	for i := range allRules {
		source := instruction.RuleContainerPatternSource(container, instruction.MatchByPositionInvertAllPriorToSelected, i)
		if i == k {
			entries = append(entries, instruction.NewSingleDirectoryEnumeration(instruction.RealOpenedPathSource, source, false))
		} else {
			entries = append(entries, instruction.NewSingleDirectoryEnumeration(instruction.FilePatternSourceTargetDirectory, source, false))
		}
	}

	allOverlay := true
	for _, rule := range allRules {
		if !rule.Mode().IsOverlay() {
			allOverlay = false
			break
		}
	}

	// A final origin-side entry is always appended for a multi-rule
	// container enumerated at its own origin directory: it surfaces
	// whatever origin-side files none of the per-rule target-directory
	// entries above already accounted for, even when every rule in the
	// container carries file patterns.
	if strs.EqualFold(associatedTrim, allRules[0].OriginDirectory()) {
		if allOverlay {
			entries = append(entries, instruction.NewSingleDirectoryEnumeration(
				instruction.AssociatedPathSource,
				instruction.NoPatternSource(),
				false,
			))
		} else {
			entries = append(entries, instruction.NewSingleDirectoryEnumeration(
				instruction.AssociatedPathSource,
				instruction.RuleContainerPatternSource(container, instruction.MatchByRedirectModeInvertOverlay, 0),
				true,
			))
		}
	}

	return entries
}

// partCInsertions computes the origin-directory name insertions for
// every direct child of associatedTrim in the prefix tree that carries
// a rule container.
func (d *Director) partCInsertions(associatedTrim string) []instruction.SingleDirectoryNameInsertion {
	tree := d.finalized.Tree()

	node := tree.TraverseTo(strs.ToLowerASCII(associatedTrim))
	if !tree.Valid(node) {
		return nil
	}

	type candidate struct {
		baseName string
		rule     rules.FilesystemRule
	}

	var candidates []candidate

	for _, childRef := range tree.Children(node) {
		container, ok := tree.Data(childRef)
		if !ok {
			continue
		}

		allRules := container.AllRules()
		chosen := allRules[0]

		for _, rule := range allRules {
			if d.fsQuerier.IsDirectory(rule.TargetDirectory()) {
				chosen = rule
				break
			}
		}

		candidates = append(candidates, candidate{baseName: strs.BaseName(chosen.OriginDirectory()), rule: chosen})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return strs.ToLowerASCII(candidates[i].baseName) < strs.ToLowerASCII(candidates[j].baseName)
	})

	insertions := make([]instruction.SingleDirectoryNameInsertion, len(candidates))
	for i, c := range candidates {
		insertions[i] = instruction.NewSingleDirectoryNameInsertion(c.rule)
	}

	return insertions
}
