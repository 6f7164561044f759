// Package render holds the page renderer contract shared by the toolkit
// backends and a registry that looks them up by name.
package render
