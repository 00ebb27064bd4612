// Package template defines the template rendering seam used by the markup
// renderers. Concrete engines live in subpackages.
package template
