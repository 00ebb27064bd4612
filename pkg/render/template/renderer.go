package template

import "io"

// TemplateRenderer is the engine contract renderers rely on. When out
// writers are supplied the rendered output is copied to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
