package rules

// RedirectMode selects the policy used to combine an origin directory
// with its target directory when producing file-operation instructions.
type RedirectMode uint8

const (
	// Simple means only the target-side path is ever tried.
	Simple RedirectMode = iota
	// Overlay means the target-side path is tried first, falling back to
	// the origin-side path.
	Overlay
	// OverlayCopyOnWrite is a variant of Overlay intended for
	// write-promotion semantics. Per SPEC_FULL.md Open Question #3 it is
	// treated identically to Overlay at instruction-generation level
	// until a distinguishing requirement surfaces; the distinct value is
	// preserved so a future executor can special-case it.
	OverlayCopyOnWrite
)

// String renders the redirect mode name.
func (m RedirectMode) String() string {
	switch m {
	case Simple:
		return "Simple"
	case Overlay:
		return "Overlay"
	case OverlayCopyOnWrite:
		return "OverlayCopyOnWrite"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the recognized redirect modes.
func (m RedirectMode) Valid() bool {
	return m == Simple || m == Overlay || m == OverlayCopyOnWrite
}

// IsOverlay reports whether m is Overlay or OverlayCopyOnWrite.
func (m RedirectMode) IsOverlay() bool {
	return m == Overlay || m == OverlayCopyOnWrite
}

// FileAccessMode is an immutable bitset describing which kinds of
// operations an application is requesting on a file: read, write,
// and/or delete. Platform-specific access flags are collapsed into this
// type by an external mapping (see the platform package) before
// reaching this module.
type FileAccessMode struct {
	read, write, del bool
}

// ReadOnlyAccess constructs a FileAccessMode allowing only reads.
func ReadOnlyAccess() FileAccessMode { return FileAccessMode{read: true} }

// ReadWriteAccess constructs a FileAccessMode allowing reads and writes.
func ReadWriteAccess() FileAccessMode { return FileAccessMode{read: true, write: true} }

// DeleteAccess constructs a FileAccessMode allowing only deletion.
func DeleteAccess() FileAccessMode { return FileAccessMode{del: true} }

// NewFileAccessMode constructs a FileAccessMode from individual flags,
// for callers (such as the platform package) assembling access modes by
// OR-ing together multiple platform flags that map to different bits.
func NewFileAccessMode(canRead, canWrite, canDelete bool) FileAccessMode {
	return FileAccessMode{read: canRead, write: canWrite, del: canDelete}
}

// Combine ORs two access modes together.
func (m FileAccessMode) Combine(other FileAccessMode) FileAccessMode {
	return FileAccessMode{
		read:  m.read || other.read,
		write: m.write || other.write,
		del:   m.del || other.del,
	}
}

// AllowsRead reports whether the access mode permits reading.
func (m FileAccessMode) AllowsRead() bool { return m.read }

// AllowsWrite reports whether the access mode permits writing.
func (m FileAccessMode) AllowsWrite() bool { return m.write }

// AllowsDelete reports whether the access mode permits deletion.
func (m FileAccessMode) AllowsDelete() bool { return m.del }

// CreateDisposition is an immutable bitset describing whether an
// operation may create a new file, open an existing one, or both.
type CreateDisposition struct {
	canCreateNew, canOpenExisting bool
}

// CreateNewFileOnly constructs a CreateDisposition allowing only
// creation of a new file.
func CreateNewFileOnly() CreateDisposition {
	return CreateDisposition{canCreateNew: true}
}

// OpenExistingFileOnly constructs a CreateDisposition allowing only
// opening of an existing file.
func OpenExistingFileOnly() CreateDisposition {
	return CreateDisposition{canOpenExisting: true}
}

// CreateNewOrOpenExisting constructs a CreateDisposition allowing either
// creation of a new file or opening of an existing one.
func CreateNewOrOpenExisting() CreateDisposition {
	return CreateDisposition{canCreateNew: true, canOpenExisting: true}
}

// AllowsCreateNewFile reports whether the disposition allows creating a
// new file.
func (d CreateDisposition) AllowsCreateNewFile() bool { return d.canCreateNew }

// AllowsOpenExistingFile reports whether the disposition allows opening
// an existing file.
func (d CreateDisposition) AllowsOpenExistingFile() bool { return d.canOpenExisting }

// DirectoryCompareResult classifies the relationship between a candidate
// path and a rule's origin or target directory.
type DirectoryCompareResult uint8

const (
	// Unrelated means neither path is a prefix of the other.
	Unrelated DirectoryCompareResult = iota
	// Equal means the two paths are the same directory.
	Equal
	// CandidateIsChild means the candidate is exactly one path component
	// below the rule directory.
	CandidateIsChild
	// CandidateIsDescendant means the candidate is below the rule
	// directory by two or more path components.
	CandidateIsDescendant
	// CandidateIsParent means the candidate is exactly one path
	// component above the rule directory.
	CandidateIsParent
	// CandidateIsAncestor means the candidate is above the rule
	// directory by two or more path components.
	CandidateIsAncestor
)

// String renders the compare result name.
func (r DirectoryCompareResult) String() string {
	switch r {
	case Equal:
		return "Equal"
	case CandidateIsChild:
		return "CandidateIsChild"
	case CandidateIsDescendant:
		return "CandidateIsDescendant"
	case CandidateIsParent:
		return "CandidateIsParent"
	case CandidateIsAncestor:
		return "CandidateIsAncestor"
	default:
		return "Unrelated"
	}
}

// IsEqualOrDescendant reports whether r is Equal, CandidateIsChild, or
// CandidateIsDescendant: the cases in which a path can be rewritten by
// substituting the rule directory prefix.
func (r DirectoryCompareResult) IsEqualOrDescendant() bool {
	return r == Equal || r == CandidateIsChild || r == CandidateIsDescendant
}
