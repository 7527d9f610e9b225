//go:build !windows

package platform

// These are the well-known Windows NT access-mask and create-
// disposition values (see winnt.h / ntifs.h), reproduced here as a
// portable stand-in for golang.org/x/sys/windows's definitions so this
// package, and the callers that exercise it, still build and test off
// a windows target.
const (
	genericRead    = 0x80000000
	genericWrite   = 0x40000000
	genericExecute = 0x20000000
	fileListDir    = 0x00000001
	deleteAccess   = 0x00010000
	fileAppendData = 0x00000004
	writeOwner     = 0x00080000
)

const (
	fileSupersede   = 0
	fileOpen        = 1
	fileCreate      = 2
	fileOpenIf      = 3
	fileOverwrite   = 4
	fileOverwriteIf = 5
)
