// Package web holds the embedded browser form served at the site root.
// The presentation layer is a thin collaborator over the JSON API.
package web

import (
	"embed"
	"html/template"
)

//go:embed index.html
var files embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "index.html"))
}
