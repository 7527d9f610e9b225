// Package strs implements the small set of Windows-path string utilities
// that every other package in this module builds on: drive-letter and
// namespace-prefix detection, trailing-separator trimming, parent
// extraction, and ASCII case-insensitive comparison.
//
// Everything here is byte-oriented and ASCII-only by design: Windows
// path components are compared case-insensitively over the ASCII
// subset only, never through locale-aware Unicode case folding.
package strs

import "strings"

// Separator is the Windows path component separator used throughout the
// core. The underlying OS path need not use it; paths handled by this
// module are always backslash-delimited strings supplied by the caller.
const Separator = '\\'

// namespacePrefixes are the recognized Windows namespace prefixes, longest
// match checked first implicitly because they are all the same length.
var namespacePrefixes = []string{`\??\`, `\\?\`, `\\.\`}

// NamespacePrefix returns the recognized Windows namespace prefix at the
// start of s, or "" if none is present.
func NamespacePrefix(s string) string {
	for _, p := range namespacePrefixes {
		if len(s) >= len(p) && EqualFold(s[:len(p)], p) {
			return s[:len(p)]
		}
	}

	return ""
}

// TrimNamespacePrefix removes a recognized namespace prefix from the start
// of s, returning the prefix (possibly empty) and the remaining body.
func TrimNamespacePrefix(s string) (prefix, body string) {
	prefix = NamespacePrefix(s)
	return prefix, s[len(prefix):]
}

// HasDriveLetterPrefix reports whether s begins with a single ASCII letter
// followed by ':', e.g. "C:".
func HasDriveLetterPrefix(s string) bool {
	if len(s) < 2 {
		return false
	}

	return isASCIILetter(s[0]) && s[1] == ':'
}

// IsVolumeRoot reports whether path (with any namespace prefix already
// trimmed) is exactly a drive letter plus ":\\", e.g. "C:\\".
func IsVolumeRoot(path string) bool {
	return len(path) == 3 && HasDriveLetterPrefix(path) && path[2] == Separator
}

// RemoveTrailing strips all trailing occurrences of ch from s.
func RemoveTrailing(s string, ch byte) string {
	end := len(s)
	for end > 0 && s[end-1] == ch {
		end--
	}

	return s[:end]
}

// ParentOf returns the substring of path up to (not including) the final
// separator, except that a drive-only parent is returned as its volume
// root ("C:\Dir" yields "C:\"). It returns "" if path has no separator,
// is a volume root, or is prefix-only (e.g. just "C:").
func ParentOf(path string) string {
	trimmed := RemoveTrailing(path, Separator)
	if trimmed == "" {
		return ""
	}

	idx := strings.LastIndexByte(trimmed, Separator)
	if idx < 0 {
		return ""
	}

	parent := trimmed[:idx]
	if parent == "" {
		return ""
	}

	// A parent consisting of only a drive letter and colon ("C:") is not a
	// usable parent directory path on its own; volume roots are the floor.
	if len(parent) == 2 && HasDriveLetterPrefix(parent) {
		return parent + string(Separator)
	}

	return parent
}

// BaseName returns the final path component of path: the substring
// after the last separator, or the whole (trailing-separator-trimmed)
// string if it has none.
func BaseName(path string) string {
	trimmed := RemoveTrailing(path, Separator)

	idx := strings.LastIndexByte(trimmed, Separator)
	if idx < 0 {
		return trimmed
	}

	return trimmed[idx+1:]
}

// EqualFold reports whether a and b are equal under ASCII-only
// case-insensitive comparison. Non-ASCII bytes are compared verbatim.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if asciiLower(a[i]) != asciiLower(b[i]) {
			return false
		}
	}

	return true
}

// HasPrefixFold reports whether s begins with prefix under ASCII-only
// case-insensitive comparison.
func HasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}

	return EqualFold(s[:len(prefix)], prefix)
}

// ToLowerASCII lower-cases only ASCII A-Z bytes in s, leaving all other
// bytes (including any non-ASCII UTF-8 content) unchanged.
func ToLowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}

// TokenizeNullDelimited splits a null-delimited list such as the ones used
// by Windows multi-string registry/environment values into its component
// strings. A trailing empty component (from a terminating NUL) is
// dropped.
func TokenizeNullDelimited(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, "\x00")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	return parts
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}

	return b
}
