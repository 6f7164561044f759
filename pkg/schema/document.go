package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document wraps a raw serialised payload and its origin.
type Document struct {
	source Source
	format Format
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs. The
// format is inferred from the source location extension.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: source is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, errors.New("schema: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, format: formatFromLocation(src.Location()), raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// WithFormat overrides the inferred format.
func (d Document) WithFormat(format Format) Document {
	d.format = format
	return d
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Format reports the payload format.
func (d Document) Format() Format {
	return d.format
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Decode unmarshals the payload into out using the document format.
func (d Document) Decode(out any) error {
	var err error
	switch d.format {
	case FormatYAML:
		err = yaml.Unmarshal(d.raw, out)
	default:
		err = json.Unmarshal(d.raw, out)
	}
	if err != nil {
		return fmt.Errorf("schema: decode %s: %w", d.Location(), err)
	}
	return nil
}

// Bundle groups the three documents that describe one form instance.
type Bundle struct {
	Schema   Form       `json:"schema" yaml:"schema"`
	UISchema UIDocument `json:"uiSchema" yaml:"uiSchema"`
	FormData Data       `json:"formData" yaml:"formData"`
}

// DecodeBundle reads a {schema, uiSchema, formData} payload. Missing
// documents decode to their empty forms.
func DecodeBundle(doc Document) (Bundle, error) {
	var bundle Bundle
	if err := doc.Decode(&bundle); err != nil {
		return Bundle{}, err
	}
	return bundle.normalized(), nil
}

// normalized allocates the maps of zero-value documents, which decoding
// leaves behind for missing keys.
func (b Bundle) normalized() Bundle {
	if b.UISchema.entries == nil {
		b.UISchema = EmptyUIDocument()
	}
	if b.FormData.values == nil {
		b.FormData = EmptyData()
	}
	return b
}

// Encode writes the bundle in the requested format. Empty documents are
// written as {}.
func (b Bundle) Encode(w io.Writer, format Format) error {
	b = b.normalized()
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("schema: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("schema: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("schema: unsupported format %q", format)
	}
}
