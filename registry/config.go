package registry

import (
	"fmt"
	"strings"

	"github.com/pathwinder/core/rules"
)

// ConfigSection is the subset of a parsed FilesystemRule:<name> config
// section the registry needs: keys map to either a single value or,
// for FilePattern, a repeated one. The config package produces these;
// registry does not otherwise depend on configuration file syntax.
type ConfigSection struct {
	OriginDirectory string
	TargetDirectory string
	FilePattern     []string
	RedirectMode    string
}

// ParseRedirectMode maps a config-file redirect mode string to a
// rules.RedirectMode, defaulting to Simple when s is empty.
func ParseRedirectMode(s string) (rules.RedirectMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "simple":
		return rules.Simple, nil
	case "overlay":
		return rules.Overlay, nil
	case "overlaycopyonwrite":
		return rules.OverlayCopyOnWrite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRedirectMode, s)
	}
}

// AddRuleFromConfigSection extracts OriginDirectory, TargetDirectory,
// FilePattern, and RedirectMode from section and delegates to AddRule.
func (r *Registry) AddRuleFromConfigSection(name string, section ConfigSection) (rules.FilesystemRule, error) {
	if section.OriginDirectory == "" {
		return rules.FilesystemRule{}, fmt.Errorf("%w: OriginDirectory (rule %q)", ErrMissingRequiredField, name)
	}

	if section.TargetDirectory == "" {
		return rules.FilesystemRule{}, fmt.Errorf("%w: TargetDirectory (rule %q)", ErrMissingRequiredField, name)
	}

	mode, err := ParseRedirectMode(section.RedirectMode)
	if err != nil {
		return rules.FilesystemRule{}, fmt.Errorf("rule %q: %w", name, err)
	}

	return r.AddRule(name, section.OriginDirectory, section.TargetDirectory, section.FilePattern, mode)
}
