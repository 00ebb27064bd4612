package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// DefaultTemplate is the embedded widget template path.
const DefaultTemplate = "templates/timepicker.tmpl"

// TemplatesFS exposes the embedded template bundle so hosts can copy or
// extend it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
