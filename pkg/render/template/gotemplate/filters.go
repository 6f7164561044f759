package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	json "github.com/goccy/go-json"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("tojson") {
		_ = pongo2.RegisterFilter("tojson", filterToJSON)
	}
	if !pongo2.FilterExists("domid") {
		_ = pongo2.RegisterFilter("domid", filterDOMID)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterToJSON pretty prints the value. The output still goes through
// autoescaping unless marked safe.
func filterToJSON(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	payload, err := json.MarshalIndent(in.Interface(), "", "  ")
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:tojson", OrigError: err}
	}
	return pongo2.AsValue(string(payload)), nil
}

// filterDOMID turns node ids such as "option.0.value" into values usable as
// HTML id attributes, optionally prefixed by the parameter.
func filterDOMID(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	id := strings.NewReplacer(".", "-", " ", "-", "_", "-").Replace(strings.TrimSpace(in.String()))
	if param != nil && !param.IsNil() {
		if prefix := strings.TrimSpace(param.String()); prefix != "" {
			id = prefix + "-" + id
		}
	}
	return pongo2.AsValue(strings.ToLower(id)), nil
}
