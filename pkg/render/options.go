package render

// RenderOptions carry per-request data renderers may use without changing
// the widget.
type RenderOptions struct {
	// Name is the form field name of the backing input. Defaults to the
	// widget id.
	Name string
	// Attributes are extra attributes for the wrapper element. Keys are
	// emitted in sorted order.
	Attributes map[string]string
	// Theme is the resolved theme, if any.
	Theme *ThemeConfig
}
