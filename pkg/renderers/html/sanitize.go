package html

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy

	attrNamePattern = regexp.MustCompile(`^[A-Za-z_:][A-Za-z0-9_.:-]*$`)
)

// labelSanitizer strips every tag. Labels and the separator come from host
// configuration and locale files, so they are treated as untrusted text.
func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}

func sanitizeText(policy *bluemonday.Policy, raw string) string {
	if raw == "" {
		return ""
	}
	return policy.Sanitize(raw)
}

func validAttrName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || !attrNamePattern.MatchString(name) {
		return false
	}
	lower := strings.ToLower(name)
	return !strings.HasPrefix(lower, "on") && lower != "style" && lower != "id"
}

func validCSSValue(value string) bool {
	return value != "" && !strings.ContainsAny(value, ";{}<>")
}
