package i18n

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when labels are
// requested without a translator.
var ErrMissingTranslator = errors.New("i18n: translator is nil")

// Translator resolves a key for a locale. Hosts with their own translation
// stack plug it in here; *Catalog satisfies it too.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the string used when a key cannot be
// translated. fallback is the value the label had before translation.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

func missingTranslationDefault(_ string, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// LabelsFromTranslator translates every label key, keeping fallback values
// for keys the translator cannot resolve. This is best-effort and never fails.
func LabelsFromTranslator(t Translator, locale string, fallback Labels, onMissing MissingTranslationHandler) Labels {
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	out := fallback
	for _, key := range Keys {
		out.set(key, translate(t, locale, key, fallback.Get(key), onMissing))
	}
	return out
}

func translate(t Translator, locale, key, fallback string, onMissing MissingTranslationHandler) string {
	if t == nil {
		return onMissing(locale, key, fallback, ErrMissingTranslator)
	}
	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, fallback, err)
}
