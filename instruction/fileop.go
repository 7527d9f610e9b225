package instruction

// FilenamesToTry selects which of the unredirected/redirected paths an
// executor should attempt, and in what order.
type FilenamesToTry uint8

const (
	// UnredirectedOnly means only the original path is tried.
	UnredirectedOnly FilenamesToTry = iota
	// UnredirectedFirst tries the original path, then the redirected one.
	UnredirectedFirst
	// RedirectedFirst tries the redirected path, then the original one.
	RedirectedFirst
	// RedirectedOnly means only the redirected path is tried.
	RedirectedOnly
)

// CreateDispositionPreference biases which side of a redirect an
// executor should treat as authoritative when both an origin-side file
// and a target-side file could be created or opened.
type CreateDispositionPreference uint8

const (
	// NoPreference means the caller's own disposition governs unchanged.
	NoPreference CreateDispositionPreference = iota
	// PreferCreateNewFile nudges the executor toward creating new.
	PreferCreateNewFile
	// PreferOpenExistingFile nudges the executor toward opening existing.
	PreferOpenExistingFile
)

// HandleAssociation selects which path, if any, should be recorded
// alongside a newly opened handle for later relative-path lookups.
type HandleAssociation uint8

const (
	// NoAssociation records nothing.
	NoAssociation HandleAssociation = iota
	// WhicheverWasSuccessful records whichever path the executor
	// actually succeeded in opening.
	WhicheverWasSuccessful
	// AssociateUnredirected always records the original path.
	AssociateUnredirected
	// AssociateRedirected always records the redirected path.
	AssociateRedirected
)

// PreOperation names a filesystem mutation that must complete before
// the primary operation is attempted.
type PreOperation uint8

const (
	// NoPreOperation means nothing need happen first.
	NoPreOperation PreOperation = iota
	// EnsurePathHierarchyExists means the operand's directory hierarchy
	// must be created if absent before the primary operation proceeds.
	EnsurePathHierarchyExists
)

// FileOperationInstruction is the director's decision for a single
// file-level operation (open, create, delete, rename, etc.).
type FileOperationInstruction struct {
	redirectedFilename          string
	hasRedirectedFilename       bool
	filenamesToTry              FilenamesToTry
	createDispositionPreference CreateDispositionPreference
	handleAssociation           HandleAssociation
	preOperation                PreOperation
	preOperationOperand         string
}

// RedirectedFilename returns the redirected absolute path and whether
// one was computed.
func (i FileOperationInstruction) RedirectedFilename() (string, bool) {
	return i.redirectedFilename, i.hasRedirectedFilename
}

// FilenamesToTry reports which path(s) an executor should attempt.
func (i FileOperationInstruction) FilenamesToTry() FilenamesToTry { return i.filenamesToTry }

// CreateDispositionPreference reports the executor's creation bias.
func (i FileOperationInstruction) CreateDispositionPreference() CreateDispositionPreference {
	return i.createDispositionPreference
}

// HandleAssociation reports what should be recorded for the new handle.
func (i FileOperationInstruction) HandleAssociation() HandleAssociation { return i.handleAssociation }

// PreOperation reports the pre-operation, if any, to run first.
func (i FileOperationInstruction) PreOperation() (PreOperation, string) {
	return i.preOperation, i.preOperationOperand
}

// PassThroughUnmodifiedQuery is a FileOperationInstruction meaning "this
// path is entirely outside this layer's concern; pass it through
// unchanged, untracked."
func PassThroughUnmodifiedQuery() FileOperationInstruction {
	return FileOperationInstruction{
		filenamesToTry:    UnredirectedOnly,
		handleAssociation: NoAssociation,
	}
}

// NoRedirectionOrInterception is a FileOperationInstruction meaning "no
// rule applies to this path at all; pass it through unredirected and
// untracked."
func NoRedirectionOrInterception() FileOperationInstruction {
	return FileOperationInstruction{
		filenamesToTry:    UnredirectedOnly,
		handleAssociation: NoAssociation,
	}
}

// InterceptWithoutRedirection is a FileOperationInstruction used when a
// path is a prefix of some rule's origin directory but is not itself
// redirected.
func InterceptWithoutRedirection(assoc HandleAssociation, pre PreOperation, operand string) FileOperationInstruction {
	return FileOperationInstruction{
		filenamesToTry:      UnredirectedOnly,
		handleAssociation:   assoc,
		preOperation:        pre,
		preOperationOperand: operand,
	}
}

// SimpleRedirectTo is a FileOperationInstruction for RedirectMode
// Simple: only the redirected path is ever tried.
func SimpleRedirectTo(path string, assoc HandleAssociation, pre PreOperation, operand string) FileOperationInstruction {
	return FileOperationInstruction{
		redirectedFilename:          path,
		hasRedirectedFilename:       true,
		filenamesToTry:              RedirectedOnly,
		createDispositionPreference: NoPreference,
		handleAssociation:           assoc,
		preOperation:                pre,
		preOperationOperand:         operand,
	}
}

// OverlayRedirectTo is a FileOperationInstruction for RedirectMode
// Overlay/OverlayCopyOnWrite: the redirected path is tried first, with
// a fallback to the original.
func OverlayRedirectTo(path string, assoc HandleAssociation, pref CreateDispositionPreference, pre PreOperation, operand string) FileOperationInstruction {
	return FileOperationInstruction{
		redirectedFilename:          path,
		hasRedirectedFilename:       true,
		filenamesToTry:              RedirectedFirst,
		createDispositionPreference: pref,
		handleAssociation:           assoc,
		preOperation:                pre,
		preOperationOperand:         operand,
	}
}
