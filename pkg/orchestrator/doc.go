// Package orchestrator wires widget construction, theme resolution and the
// renderer registry into a single Generate call.
package orchestrator
