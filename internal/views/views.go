// Package views holds the HTML templates rendered by the web controllers
package views

import (
	"embed"
	"html/template"
)

// HomeTemplate is the template name of the landing page
const HomeTemplate = "home.tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses every embedded template. Template names are the file names.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}
