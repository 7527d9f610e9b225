package director

import (
	"github.com/pathwinder/core/instruction"
	"github.com/pathwinder/core/internal/strs"
	"github.com/pathwinder/core/rules"
)

// InstructionForFileOperation decides how an application-requested file
// operation on path should be redirected, given the access mode it
// requests and the create disposition it would use.
func (d *Director) InstructionForFileOperation(path string, access rules.FileAccessMode, disposition rules.CreateDisposition) instruction.FileOperationInstruction {
	namespacePrefix, trimmedBody, hadTrailingSeparator := trimPath(path)

	if !strs.HasDriveLetterPrefix(trimmedBody) {
		return instruction.NoRedirectionOrInterception()
	}

	lastSep := lastSeparatorIndex(trimmedBody)
	if lastSep < 0 {
		return instruction.NoRedirectionOrInterception()
	}

	container, ok := d.SelectRulesForPath(trimmedBody)
	if !ok {
		if d.IsPrefixForAnyRule(trimmedBody) {
			return instruction.InterceptWithoutRedirection(instruction.AssociateUnredirected, instruction.NoPreOperation, "")
		}

		return instruction.NoRedirectionOrInterception()
	}

	allRules := container.AllRules()
	originDir := allRules[0].OriginDirectory()

	var dirPart, filePart string
	if strs.EqualFold(trimmedBody, originDir) {
		dirPart, filePart = trimmedBody, ""
	} else {
		dirPart, filePart = trimmedBody[:lastSep], trimmedBody[lastSep+1:]
	}

	var selected rules.FilesystemRule
	if filePart == "" {
		selected, ok = container.AnyRule()
		if !ok {
			return instruction.NoRedirectionOrInterception()
		}
	} else {
		selected, _, ok = container.RuleMatchingFileName(filePart, 0)
		if !ok {
			return instruction.NoRedirectionOrInterception()
		}
	}

	redirectedDir, err := selected.RedirectOriginToTarget(dirPart)
	if err != nil {
		d.log.Warn("file operation redirect failed, falling back to unredirected access",
			"path", trimmedBody, "rule", selected.Name(), "error", err)

		return instruction.NoRedirectionOrInterception()
	}

	redirectedPath := redirectedDir
	if filePart != "" {
		redirectedPath += string(strs.Separator) + filePart
	}

	if hadTrailingSeparator {
		redirectedPath += string(strs.Separator)
	}

	redirectedPath = namespacePrefix + redirectedPath

	preOp, operand := d.filePreOperation(disposition, dirPart, trimmedBody, redirectedDir, redirectedPath)

	if selected.Mode() == rules.Simple {
		return instruction.SimpleRedirectTo(redirectedPath, instruction.AssociateUnredirected, preOp, operand)
	}

	pref := instruction.NoPreference
	if disposition.AllowsCreateNewFile() {
		pref = instruction.PreferOpenExistingFile
	}

	return instruction.OverlayRedirectTo(redirectedPath, instruction.AssociateUnredirected, pref, preOp, operand)
}

// filePreOperation computes the pre-operation and operand needed to
// ensure the redirected side's directory hierarchy exists whenever the
// origin side could otherwise succeed, so the redirected attempt does
// not fail for a spurious reason.
func (d *Director) filePreOperation(disposition rules.CreateDisposition, unredirectedDirPart, unredirectedFullPath, redirectedDir, redirectedPath string) (instruction.PreOperation, string) {
	if disposition.AllowsCreateNewFile() && d.fsQuerier.IsDirectory(unredirectedDirPart) {
		return instruction.EnsurePathHierarchyExists, redirectedDir
	}

	if disposition.AllowsOpenExistingFile() && !disposition.AllowsCreateNewFile() && d.fsQuerier.IsDirectory(unredirectedFullPath) {
		return instruction.EnsurePathHierarchyExists, strs.RemoveTrailing(redirectedPath, strs.Separator)
	}

	return instruction.NoPreOperation, ""
}
