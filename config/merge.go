package config

import (
	"fmt"

	"github.com/pathwinder/core/registry"
)

// MergeDocuments combines multiple parsed documents into one, preserving
// the order documents were given and the order rules appeared within
// each. Later documents' Definitions and LogLevel override earlier
// ones; FilesystemRule sections must have distinct names across every
// document, mirroring AddRule's own duplicate-name rejection so a
// collision surfaces at merge time rather than being silently dropped.
func MergeDocuments(docs ...*Document) (*Document, error) {
	merged := &Document{
		Definitions: make(map[string]string),
		Rules:       make(map[string]registry.ConfigSection),
	}

	for _, doc := range docs {
		if doc == nil {
			continue
		}

		if doc.LogLevel != 0 {
			merged.LogLevel = doc.LogLevel
		}

		for k, v := range doc.Definitions {
			merged.Definitions[k] = v
		}

		for _, name := range doc.RuleNames {
			if _, exists := merged.Rules[name]; exists {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateRuleSection, name)
			}

			merged.Rules[name] = doc.Rules[name]
			merged.RuleNames = append(merged.RuleNames, name)
		}
	}

	return merged, nil
}
