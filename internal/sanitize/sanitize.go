// Package sanitize strips executable markup from free-text fields before they
// reach the record store. The server sanitizes regardless of what the client
// already did: this side of the wire is the trust boundary for stored XSS.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows benign user-generated formatting (bold, lists, links, images)
// while removing script tags, event-handler attributes, and javascript: URIs.
// bluemonday policies are safe for concurrent use.
var policy = bluemonday.UGCPolicy()

// Clean sanitizes one HTML fragment. It is total (never panics, empty input
// yields empty output) and idempotent: Clean(Clean(x)) == Clean(x).
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	return policy.Sanitize(raw)
}
