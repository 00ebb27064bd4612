package openapi

import (
	"sort"
	"strings"
	"sync"
)

// Built-in rule names.
const (
	RuleExtension  = "extension"
	RuleTimeFormat = "format-time"
	RuleTimeMillis = "format-time-ms"
)

// ExtensionKey is the schema extension that marks a property as a time
// input and carries its option map.
const ExtensionKey = "x-timepicker"

// Matcher decides whether a rule applies to a property.
type Matcher func(p Property) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects the rule for a property. Higher priority wins; ties
// fall back to registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher. Empty names and nil matchers are ignored.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the name of the highest priority matching rule.
func (r *Registry) Resolve(p Property) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	if len(rules) == 0 {
		return "", false
	}
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(p) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Registry) registerBuiltins() {
	r.Register(RuleExtension, 90, func(p Property) bool {
		_, ok := p.Extensions[ExtensionKey]
		return ok
	})

	r.Register(RuleTimeFormat, 70, func(p Property) bool {
		return p.Type == "string" && strings.EqualFold(strings.TrimSpace(p.Format), "time")
	})

	r.Register(RuleTimeMillis, 60, func(p Property) bool {
		if p.Type != "integer" && p.Type != "number" {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(p.Format), "time-ms")
	})
}
