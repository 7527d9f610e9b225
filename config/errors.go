package config

import "errors"

// Sentinel errors for configuration document parse failures.
var (
	// ErrMalformedSectionHeader indicates a "[...]" line was not closed.
	ErrMalformedSectionHeader = errors.New("malformed section header")
	// ErrMalformedKeyValue indicates a line outside any recognized
	// comment/section/blank form had no "=" separator.
	ErrMalformedKeyValue = errors.New("malformed key/value line")
	// ErrDuplicateRuleSection indicates two FilesystemRule:<name>
	// sections shared the same rule name.
	ErrDuplicateRuleSection = errors.New("duplicate filesystem rule section")
	// ErrInvalidLogLevel indicates the global LogLevel value was not an
	// integer.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
