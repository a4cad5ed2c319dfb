package labels

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Sanitize strips markup from a label supplied by a third-party document and
// collapses whitespace. Entities are decoded so the result is plain text.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := html.UnescapeString(textSanitizer().Sanitize(trimmed))
	return strings.Join(strings.Fields(cleaned), " ")
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// Resolve returns the sanitised label, or a label derived from name when
// nothing printable remains.
func Resolve(label, name string) string {
	if cleaned := Sanitize(label); cleaned != "" {
		return cleaned
	}
	return DefaultLabeler(name)
}
