// Package openapi finds time inputs in OpenAPI 3 documents and derives the
// time picker configuration for each of them.
//
// Documents are parsed with kin-openapi. Every property reachable from
// components.schemas is offered to a Registry of priority-ordered matchers;
// the winning rule turns the property into a Binding.
package openapi
