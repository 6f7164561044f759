package gotemplate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/flosch/pongo2/v6"
	json "github.com/goccy/go-json"
)

// toContext lowers template data to maps, slices and scalars. Structs go
// through JSON, so their json tags decide the keys templates see and func
// fields must be tagged json:"-". Func values inside maps are kept so they
// stay callable from templates.
func toContext(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	lowered, err := lower(data)
	if err != nil {
		return nil, err
	}
	m, ok := lowered.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("template data must encode to an object, got %T", lowered)
	}
	ctx := make(pongo2.Context, len(m))
	for key, value := range m {
		if key = strings.TrimSpace(key); key != "" {
			ctx[key] = value
		}
	}
	return ctx, nil
}

func lower(value any) (any, error) {
	switch v := value.(type) {
	case nil, string, bool, int, float64:
		return v, nil
	case pongo2.Context:
		return lowerMap(v)
	case map[string]any:
		return lowerMap(v)
	case []any:
		out := make([]any, len(v))
		for idx, item := range v {
			lowered, err := lower(item)
			if err != nil {
				return nil, err
			}
			out[idx] = lowered
		}
		return out, nil
	}
	if reflect.ValueOf(value).Kind() == reflect.Func {
		return value, nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

func lowerMap(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for key, value := range in {
		lowered, err := lower(value)
		if err != nil {
			return nil, err
		}
		out[key] = lowered
	}
	return out, nil
}
