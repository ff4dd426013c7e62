package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripMarkup removes all HTML/XML markup from a client-supplied text field,
// keeping only the text content. Entities are decoded back to plain characters
// so the stored value matches what a human typed.
//
// Examples:
//   - "<b>Ada</b> Lovelace" -> "Ada Lovelace"
//   - "Tom & Jerry"         -> "Tom & Jerry"
//   - "<script>x()</script>" -> ""
func StripMarkup(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	// Fast path: plain text without markup or entities
	if !strings.ContainsAny(input, "<&") {
		return input
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(input)))
}

// StripMarkupMap applies StripMarkup to every value of a metadata mapping.
// Keys are trimmed; entries whose key becomes empty are dropped.
func StripMarkupMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		out[key] = StripMarkup(v)
	}
	return out
}
