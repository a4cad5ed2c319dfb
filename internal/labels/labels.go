// Package labels derives and cleans the human-facing labels attached to
// fields.
package labels

import (
	"regexp"
	"strings"
	"unicode"
)

var separators = regexp.MustCompile(`[_\-.\s]+`)

// acronyms are rendered upper-case when they appear as a whole word.
var acronyms = map[string]string{
	"api":  "API",
	"http": "HTTP",
	"id":   "ID",
	"imdb": "IMDb",
	"rss":  "RSS",
	"ssl":  "SSL",
	"tmdb": "TMDb",
	"url":  "URL",
	"uri":  "URI",
	"nzb":  "NZB",
}

// DefaultLabeler turns a setting name such as "apiKey" or "base_url" into a
// label ("API Key", "Base URL"). It splits on separators and camelCase or
// letter/digit boundaries.
func DefaultLabeler(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}

	var words []string
	for _, chunk := range separators.Split(name, -1) {
		if chunk == "" {
			continue
		}
		words = append(words, splitCamel(chunk)...)
	}
	for i, word := range words {
		words[i] = titleWord(word)
	}
	return strings.Join(words, " ")
}

func splitCamel(input string) []string {
	runes := []rune(input)
	var (
		words []string
		start int
	)
	for i := 1; i < len(runes); i++ {
		if boundary(runes, i) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

func boundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		// "HTTPServer" splits before the last capital.
		return true
	}
	return false
}

func titleWord(word string) string {
	lower := strings.ToLower(word)
	if acronym, ok := acronyms[lower]; ok {
		return acronym
	}
	runes := []rune(lower)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
