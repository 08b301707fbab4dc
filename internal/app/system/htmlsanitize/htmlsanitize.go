// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize cleans user-supplied text before it is stored.
// Descriptions may carry rich text from the admin dashboard editor; public
// contact messages are reduced to plain text.
package htmlsanitize

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richOnce sync.Once
	rich     *bluemonday.Policy

	plainOnce sync.Once
	plain     *bluemonday.Policy
)

func richPolicy() *bluemonday.Policy {
	richOnce.Do(func() {
		rich = bluemonday.UGCPolicy()
		rich.AllowElements("u", "s", "mark")
		rich.AllowAttrs("class").OnElements("p", "span", "table", "tr", "td", "th")
	})
	return rich
}

func plainPolicy() *bluemonday.Policy {
	plainOnce.Do(func() {
		plain = bluemonday.StrictPolicy()
	})
	return plain
}

var tagPattern = regexp.MustCompile(`<[a-zA-Z/!]`)

// IsPlainText reports whether s contains nothing that looks like markup.
// "5 < 10" is plain text.
func IsPlainText(s string) bool {
	return !tagPattern.MatchString(s)
}

// Sanitize removes scripts, event handlers, unsafe URLs and other unsafe
// markup. Plain text is returned unchanged, so "A & B" is not escaped.
func Sanitize(s string) string {
	if s == "" || IsPlainText(s) {
		return s
	}
	return richPolicy().Sanitize(s)
}

// StripTags removes all markup. Plain text is returned unchanged.
func StripTags(s string) string {
	if s == "" || IsPlainText(s) {
		return s
	}
	return plainPolicy().Sanitize(s)
}

// SanitizePtr applies Sanitize to a present value.
func SanitizePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := Sanitize(*p)
	return &v
}
