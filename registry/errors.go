package registry

import "errors"

// Sentinel errors for registry build-time and finalization failures.
var (
	// ErrAlreadyFinalized indicates a Building-only operation was called
	// on a Registry that has already been finalized.
	ErrAlreadyFinalized = errors.New("registry already finalized")
	// ErrDuplicateRuleName indicates a rule name collides with one
	// already registered.
	ErrDuplicateRuleName = errors.New("duplicate rule name")
	// ErrOriginInUse indicates a proposed origin directory is already
	// used as another rule's origin or target directory in a way the
	// invariants forbid.
	ErrOriginInUse = errors.New("origin directory already in use")
	// ErrTargetInUse indicates a proposed target directory is already
	// used as another rule's origin directory.
	ErrTargetInUse = errors.New("target directory already in use as an origin directory")
	// ErrTargetCollision indicates a proposed target directory equals,
	// is a descendant of, or is an ancestor of another rule's origin or
	// target directory in violation of the cross-contamination
	// invariant.
	ErrTargetCollision = errors.New("target directory collides with another rule's origin or target")
	// ErrMissingOriginParent indicates an origin directory's parent is
	// neither a real directory nor another rule's origin directory.
	ErrMissingOriginParent = errors.New("origin directory's parent is not a real directory or rule origin")
	// ErrOriginNotDirectory indicates an origin directory exists in the
	// real filesystem but is not a directory.
	ErrOriginNotDirectory = errors.New("origin directory exists but is not a directory")
	// ErrMissingRequiredField indicates a config section lacked a
	// required key.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrUnknownRedirectMode indicates a config section named a redirect
	// mode string that does not correspond to any rules.RedirectMode.
	ErrUnknownRedirectMode = errors.New("unknown redirect mode")
)
