package rules

import "errors"

// Sentinel errors for filesystem rule construction failures.
var (
	// ErrInvalidDirectory indicates a directory string is not a
	// syntactically valid absolute path, or is a filesystem root.
	ErrInvalidDirectory = errors.New("invalid directory path")
	// ErrInvalidPattern indicates a file pattern contains a separator or
	// other disallowed character.
	ErrInvalidPattern = errors.New("invalid file pattern")
	// ErrInvalidRedirectMode indicates an unrecognized redirect mode.
	ErrInvalidRedirectMode = errors.New("invalid redirect mode")
	// ErrNotDescendant indicates redirect_path_origin_to_target (or its
	// target-to-origin counterpart) was asked to rewrite a directory that
	// is not equal to or a descendant of the expected base directory.
	ErrNotDescendant = errors.New("directory is not the origin/target or a descendant of it")
	// ErrDuplicateRuleName indicates RelatedFilesystemRuleContainer.Insert
	// was given a rule whose name already exists in the container.
	ErrDuplicateRuleName = errors.New("duplicate rule name in container")
)
