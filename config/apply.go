package config

import "github.com/pathwinder/core/registry"

// Apply adds every FilesystemRule:<name> section in doc to reg, in the
// order the sections appeared in the source document.
func (doc *Document) Apply(reg *registry.Registry) error {
	for _, name := range doc.RuleNames {
		if _, err := reg.AddRuleFromConfigSection(name, doc.Rules[name]); err != nil {
			return err
		}
	}

	return nil
}
