package tui

// OutputFormat controls what Render returns.
type OutputFormat string

const (
	// OutputFormatValue emits the serialized field value as plain text.
	OutputFormatValue OutputFormat = "value"
	// OutputFormatJSON emits the value with its components.
	OutputFormatJSON OutputFormat = "json"
)

// Theme captures optional prefixes the driver applies to messages.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithPageSize limits how many options a select shows at once.
func WithPageSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.pageSize = size
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
