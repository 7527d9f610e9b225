package resolve

import "errors"

// Sentinel errors for reference resolution failures.
var (
	// ErrUnknownDomain indicates a reference named a domain that is not
	// registered with the resolver.
	ErrUnknownDomain = errors.New("unknown reference domain")
	// ErrUnknownName indicates a reference named a value that does not
	// exist within its domain.
	ErrUnknownName = errors.New("unknown name within domain")
	// ErrUnparseableReference indicates a reference with more than one
	// "::" domain separator.
	ErrUnparseableReference = errors.New("unparseable reference")
	// ErrCycleDetected indicates a reference recursed into itself,
	// directly or transitively, during resolution.
	ErrCycleDetected = errors.New("circular reference detected")
	// ErrResultTooLong indicates an expansion exceeded the configured
	// length bound.
	ErrResultTooLong = errors.New("resolved reference exceeds length bound")
	// ErrUnmatchedDelimiters indicates a "%"-delimited string has an even
	// number of parts, which cannot represent well-formed references.
	ErrUnmatchedDelimiters = errors.New("unmatched reference delimiters")
	// ErrPathEscapesRoot indicates a relative path with ".." components
	// would traverse above its root when canonicalized.
	ErrPathEscapesRoot = errors.New("relative path escapes root")
)
