// Package web provides the embedded page template and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

// FS contains the page template (templates/) and the script and stylesheet (static/).
//
//go:embed templates static
var FS embed.FS

// PageTemplate parses the lesson page template.
func PageTemplate() (*template.Template, error) {
	return template.ParseFS(FS, "templates/index.html")
}

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		// Only possible if the embed directive above changes.
		panic("failed to create static sub filesystem: " + err.Error())
	}
	return sub
}
