//go:build windows

package platform

import "golang.org/x/sys/windows"

// Access-mask bits, sourced from golang.org/x/sys/windows so this
// package tracks the platform's own definitions rather than
// hand-copied literals.
const (
	genericRead    = windows.GENERIC_READ
	genericWrite   = windows.GENERIC_WRITE
	genericExecute = windows.GENERIC_EXECUTE
	fileListDir    = windows.FILE_LIST_DIRECTORY
	deleteAccess   = windows.DELETE
	fileAppendData = windows.FILE_APPEND_DATA
	writeOwner     = windows.WRITE_OWNER
)

// Create-disposition values, as passed to NtCreateFile /
// FILE_DISPOSITION_INFORMATION-adjacent APIs.
const (
	fileSupersede   = windows.FILE_SUPERSEDE
	fileOpen        = windows.FILE_OPEN
	fileCreate      = windows.FILE_CREATE
	fileOpenIf      = windows.FILE_OPEN_IF
	fileOverwrite   = windows.FILE_OVERWRITE
	fileOverwriteIf = windows.FILE_OVERWRITE_IF
)
