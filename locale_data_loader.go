package datefmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LocaleDataLoader reads LocaleData from JSON or YAML files.
// A file holds either one locale object or a list of them.
type LocaleDataLoader struct {
	paths []string
}

func NewLocaleDataLoader(paths ...string) *LocaleDataLoader {
	return &LocaleDataLoader{paths: append([]string(nil), paths...)}
}

// Load decodes and validates every file in order. Entries for the same locale are kept in file order
// so later ones override earlier ones once registered with an engine.
func (l *LocaleDataLoader) Load() ([]LocaleData, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("datefmt: no locale data paths configured")
	}

	var out []LocaleData
	for _, path := range l.paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("datefmt: read %s: %w", path, err)
		}

		entries, err := decodeLocaleDataFile(path, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidLocaleData, path, err)
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("%w: %s holds no locales", ErrInvalidLocaleData, path)
		}

		for _, entry := range entries {
			if err := ValidateLocaleData(entry); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			out = append(out, entry)
		}
	}

	return out, nil
}

func decodeLocaleDataFile(path string, raw []byte) ([]LocaleData, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeLocaleDataJSON(raw)
	case ".yaml", ".yml":
		return decodeLocaleDataYAML(raw)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func decodeLocaleDataJSON(raw []byte) ([]LocaleData, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty locale data json")
	}

	if trimmed[0] == '[' {
		var list []LocaleData
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var single LocaleData
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, err
	}
	return []LocaleData{single}, nil
}

func decodeLocaleDataYAML(raw []byte) ([]LocaleData, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty locale data yaml")
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var list []LocaleData
		if err := root.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	case yaml.MappingNode:
		var single LocaleData
		if err := root.Decode(&single); err != nil {
			return nil, err
		}
		return []LocaleData{single}, nil
	default:
		return nil, fmt.Errorf("unexpected yaml node at line %d", root.Line)
	}
}
