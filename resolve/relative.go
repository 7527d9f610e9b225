package resolve

import (
	"fmt"
	"strings"
)

// CanonicalizeRelative consumes "." and ".." components from a
// backslash-delimited path and returns its canonical absolute form. The
// path must already be drive-letter rooted; anything before the first
// separator is treated as the immovable root and is never consumed by a
// ".." component. Resolution fails if a ".." would traverse above that
// root. UNC and namespace-prefixed paths are not recognized: their
// leading separators are collapsed like any other empty component.
func CanonicalizeRelative(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	root, rest, ok := strings.Cut(path, `\`)
	if !ok {
		return path, nil
	}

	stack := make([]string, 0, strings.Count(rest, `\`)+1)
	for _, comp := range strings.Split(rest, `\`) {
		switch comp {
		case "", ".":
			continue
		case "..":
			if len(stack) == 0 {
				return "", fmt.Errorf("%w: %q", ErrPathEscapesRoot, path)
			}

			stack = stack[:len(stack)-1]
		default:
			stack = append(stack, comp)
		}
	}

	if len(stack) == 0 {
		return root + `\`, nil
	}

	return root + `\` + strings.Join(stack, `\`), nil
}
