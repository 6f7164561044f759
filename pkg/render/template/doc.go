// Package template defines the template rendering seam the HTML renderer
// depends on. The gotemplate subpackage implements it with pongo2.
package template
