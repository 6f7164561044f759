package uischema

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/schema"
)

// LoadFS walks the provided filesystem and parses JSON/YAML preset files.
// When fsys is nil or no preset files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{presets: make(map[string]Preset)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for pluginType, hints := range doc.Presets {
			id := strings.ToLower(strings.TrimSpace(pluginType))
			if id == "" {
				return fmt.Errorf("uischema: file %s defines an empty plugin type", path)
			}
			if existing, exists := store.presets[id]; exists {
				return fmt.Errorf("uischema: duplicate preset %q (files %s and %s)", id, existing.Source, path)
			}
			store.presets[id] = Preset{PluginType: id, Source: path, Hints: hints.Clone()}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Preset returns the hints configured for pluginType.
func (s *Store) Preset(pluginType string) (Preset, bool) {
	if s == nil {
		return Preset{}, false
	}
	preset, ok := s.presets[strings.ToLower(strings.TrimSpace(pluginType))]
	if !ok {
		return Preset{}, false
	}
	preset.Hints = preset.Hints.Clone()
	return preset, true
}

// Apply overlays the preset for pluginType onto ui. Without a preset the
// result is a copy of ui.
func (s *Store) Apply(pluginType string, ui schema.UI) schema.UI {
	preset, ok := s.Preset(pluginType)
	if !ok {
		return ui.Clone()
	}
	return Merge(ui, preset.Hints)
}

// Types lists the plugin types with presets, sorted.
func (s *Store) Types() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.presets))
	for id := range s.presets {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether the store holds any presets.
func (s *Store) Empty() bool {
	return s == nil || len(s.presets) == 0
}

type documentFile struct {
	Presets map[string]schema.UI `json:"presets" yaml:"presets"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
