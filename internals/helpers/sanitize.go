package helper

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce   sync.Once
	strictPolicy *bluemonday.Policy
	ugcPolicy    *bluemonday.Policy
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return strictPolicy, ugcPolicy
}

// PlainText strips all markup. Entities produced by the policy are decoded so
// the stored value reads the way it was typed.
func PlainText(s string) string {
	strict, _ := policies()
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// RichText keeps safe formatting for long-form content (blog bodies, event descriptions).
func RichText(s string) string {
	_, ugc := policies()
	return strings.TrimSpace(ugc.Sanitize(s))
}

// PlainTextPtr sanitizes an optional field; blank input becomes nil.
func PlainTextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := PlainText(*s)
	if v == "" {
		return nil
	}
	return &v
}
