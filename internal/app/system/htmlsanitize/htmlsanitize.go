// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize wraps bluemonday policies for user-supplied text.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = newUGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// newUGCPolicy extends the stock UGC policy with inline styles on table
// elements, which rich-text notes rely on for alignment.
func newUGCPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("style").OnElements("table", "thead", "tbody", "tr", "td", "th")
	return p
}

// Sanitize keeps user-generated-content HTML (paragraphs, emphasis, safe
// links) while stripping scripts, event handlers, and javascript: URLs.
func Sanitize(s string) string {
	return ugcPolicy.Sanitize(s)
}

// Text strips all markup, leaving plain text. Use for fields that are
// displayed verbatim (titles, prompt content, descriptions).
func Text(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
