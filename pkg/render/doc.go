// Package render defines the renderer contract shared by the timepicker
// presentation adapters (HTML markup, terminal prompts), a name keyed
// registry, and theme resolution on top of go-theme.
package render
