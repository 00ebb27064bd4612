package render

import (
	"context"

	"github.com/goliatone/go-timepicker/pkg/widget"
)

// Renderer presents a widget. Markup renderers return the document bytes;
// interactive renderers drive the widget and return its serialized value.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, w *widget.Widget, options RenderOptions) ([]byte, error)
}
