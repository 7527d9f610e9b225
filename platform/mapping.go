package platform

import "github.com/pathwinder/core/rules"

// AccessMask is a raw Windows-style access mask as passed to
// NtCreateFile/CreateFile. Only the bits this package recognizes are
// consulted; unrecognized bits are ignored.
type AccessMask uint32

// CreateDispositionValue is a raw Windows-style create-disposition
// value as passed to NtCreateFile.
type CreateDispositionValue uint32

// MapAccessMask collapses a platform access mask into a
// rules.FileAccessMode: generic read/list/execute bits map to read,
// generic write/append/write-owner bits map to write, and the delete
// bit maps to delete.
func MapAccessMask(mask AccessMask) rules.FileAccessMode {
	m := uint32(mask)

	canRead := m&(genericRead|fileListDir|genericExecute) != 0
	canWrite := m&(genericWrite|fileAppendData|writeOwner) != 0
	canDelete := m&deleteAccess != 0

	return rules.NewFileAccessMode(canRead, canWrite, canDelete)
}

// MapCreateDisposition translates a platform create-disposition value
// into a rules.CreateDisposition.
func MapCreateDisposition(disposition CreateDispositionValue) rules.CreateDisposition {
	switch uint32(disposition) {
	case uint32(fileOpen), uint32(fileOverwrite):
		return rules.OpenExistingFileOnly()
	case uint32(fileCreate):
		return rules.CreateNewFileOnly()
	case uint32(fileSupersede), uint32(fileOpenIf), uint32(fileOverwriteIf):
		return rules.CreateNewOrOpenExisting()
	default:
		return rules.OpenExistingFileOnly()
	}
}
