package utils

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
	nonSlugChar  = regexp.MustCompile(`[^a-z0-9]+`)
)

// SanitizeHTML strips scripts, event handlers and other unsafe markup while
// keeping user-generated formatting.
func SanitizeHTML(content string) string {
	return ugcPolicy.Sanitize(content)
}

// StripHTML removes all markup.
func StripHTML(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// Slugify lowercases s and collapses every run of non-alphanumerics into a dash.
func Slugify(s string) string {
	slug := nonSlugChar.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 80 {
		slug = strings.TrimRight(slug[:80], "-")
	}
	return slug
}
