package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pathwinder/core/registry"
)

// Document is the parsed form of a configuration file: the global
// section, the Definitions section (feeding the resolver's CONF
// domain), and the ordered set of FilesystemRule:<name> sections.
type Document struct {
	LogLevel    int
	Definitions map[string]string
	RuleNames   []string
	Rules       map[string]registry.ConfigSection
}

const definitionsSectionName = "Definitions"

const filesystemRuleSectionPrefix = "FilesystemRule:"

// Parse reads a sectioned key/value document from r. Blank lines and
// lines beginning with "#" or ";" are ignored.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{
		Definitions: make(map[string]string),
		Rules:       make(map[string]registry.ConfigSection),
	}

	scanner := bufio.NewScanner(r)

	currentSection := ""

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("%w: %q", ErrMalformedSectionHeader, line)
			}

			currentSection = strings.TrimSpace(line[1 : len(line)-1])

			if strings.HasPrefix(currentSection, filesystemRuleSectionPrefix) {
				name := strings.TrimPrefix(currentSection, filesystemRuleSectionPrefix)
				if _, exists := doc.Rules[name]; exists {
					return nil, fmt.Errorf("%w: %q", ErrDuplicateRuleSection, name)
				}

				doc.Rules[name] = registry.ConfigSection{}
				doc.RuleNames = append(doc.RuleNames, name)
			}

			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedKeyValue, line)
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if err := doc.applyKeyValue(currentSection, key, value); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan config: %w", err)
	}

	return doc, nil
}

// ParseString parses a configuration document from string input.
func ParseString(src string) (*Document, error) {
	return Parse(strings.NewReader(src))
}

func (doc *Document) applyKeyValue(section, key, value string) error {
	switch {
	case section == "":
		if key == "LogLevel" {
			level, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
			}

			doc.LogLevel = level
		}

		return nil

	case section == definitionsSectionName:
		doc.Definitions[key] = value
		return nil

	case strings.HasPrefix(section, filesystemRuleSectionPrefix):
		name := strings.TrimPrefix(section, filesystemRuleSectionPrefix)
		sec := doc.Rules[name]

		switch key {
		case "OriginDirectory":
			sec.OriginDirectory = value
		case "TargetDirectory":
			sec.TargetDirectory = value
		case "FilePattern":
			sec.FilePattern = append(sec.FilePattern, value)
		case "RedirectMode":
			sec.RedirectMode = value
		}

		doc.Rules[name] = sec

		return nil

	default:
		return nil
	}
}
