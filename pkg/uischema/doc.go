// Package uischema names the UI hint keys understood by the built-in field
// plugins, reads them with renderer defaults, and loads per-plugin hint
// presets from JSON or YAML files. Icon markup shown in plugin menus is
// sanitised here as well.
package uischema
