package schema

import (
	"path"
	"path/filepath"
	"strings"
)

// Source identifies where a serialised document originated so loaders can
// operate on files or fs.FS entries without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindInline SourceKind = "inline"
)

// Format names a serialisation format for the three documents.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat normalises a format name. Unknown names report false.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }

func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(p string) Source {
	return fileSource{path: filepath.Clean(p)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }

func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: path.Clean(name)}
}

type inlineSource struct {
	label string
}

func (s inlineSource) Location() string { return s.label }

func (s inlineSource) Kind() SourceKind { return SourceKindInline }

// SourceInline labels a payload that was built in memory, e.g. in tests.
func SourceInline(label string) Source {
	return inlineSource{label: label}
}

// formatFromLocation guesses the format from the location extension and falls
// back to JSON.
func formatFromLocation(location string) Format {
	switch strings.ToLower(path.Ext(filepath.ToSlash(location))) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
