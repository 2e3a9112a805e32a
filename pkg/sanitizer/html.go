package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	mailPolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Covers everything the text and markdown body formatters emit.
		mailPolicy = bluemonday.NewPolicy()
		mailPolicy.AllowStandardURLs()
		mailPolicy.AllowElements(
			"p", "br", "hr",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"strong", "b", "em", "i", "del",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"table", "thead", "tbody", "tr", "th", "td",
		)
		mailPolicy.AllowAttrs("href").OnElements("a")
		mailPolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeHTML keeps the formatting tags used in email bodies and removes
// scripts, event handlers, inline styles and unsafe URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return mailPolicy.Sanitize(s)
}

// StripHTML removes every tag and returns plain text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies policy to s.
// Returns s unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
