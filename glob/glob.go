// Package glob implements the restricted glob syntax used by filesystem
// rule file patterns: "*" matches any run of characters (including
// none), "?" matches exactly one character, and nothing else is
// special. Rule file patterns never contain path separators or
// character classes, so matching is a plain backtracking two-pointer
// scan with no path-segment splitting or regexp compilation involved.
package glob

import "strings"

// Match reports whether name matches pattern using "*"/"?" glob
// semantics. Matching is byte-oriented; callers wanting case-insensitive
// matching should lower-case both arguments first (see strs.ToLowerASCII).
func Match(pattern, name string) bool {
	pIdx := 0
	nIdx := 0
	starPattern := -1
	starName := 0

	for nIdx < len(name) {
		if pIdx < len(pattern) && (pattern[pIdx] == '?' || pattern[pIdx] == name[nIdx]) {
			pIdx++
			nIdx++
			continue
		}

		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			starPattern = pIdx
			pIdx++
			starName = nIdx
			continue
		}

		if starPattern >= 0 {
			pIdx = starPattern + 1
			starName++
			nIdx = starName
			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}

// IsUniversal reports whether pattern matches every possible name, i.e.
// it is empty or consists solely of "*" characters (including the
// multi-character forms "**", "***", and so on, which collapse to the
// same meaning as "*" under this package's semantics).
func IsUniversal(pattern string) bool {
	if pattern == "" {
		return true
	}

	return strings.Count(pattern, "*") == len(pattern)
}

// AllUniversal reports whether patterns is empty or every element is
// universal, i.e. the set as a whole imposes no filtering constraint.
func AllUniversal(patterns []string) bool {
	for _, p := range patterns {
		if !IsUniversal(p) {
			return false
		}
	}

	return true
}

// HasDisallowedChar reports whether pattern contains a path separator or
// other character that is never valid within a single file pattern
// component: backslash, forward slash, and the NUL byte.
func HasDisallowedChar(pattern string) bool {
	return strings.ContainsAny(pattern, "\\/\x00")
}
