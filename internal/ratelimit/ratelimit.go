// Package ratelimit implements fixed-window admission control keyed by
// client IP.
//
// The window is fixed, not sliding: the counter resets entirely at window
// boundaries, so a burst straddling a boundary can admit up to twice the
// configured maximum across the two windows. This approximation is accepted
// and documented; callers must not rely on a strict rolling limit.
package ratelimit

import (
	"context"
	"net/http"
	"strings"
)

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed   bool
	Remaining int
	// RetryAfter is the whole number of seconds until the current window
	// ends, rounded up. Only meaningful when Allowed is false.
	RetryAfter int
	// Reset is the unix timestamp (seconds) at which the current window ends.
	Reset int64
}

// Store decides whether a request identified by key is admitted right now.
type Store interface {
	Check(ctx context.Context, key string) (Decision, error)
}

// UnknownKey buckets every request whose client IP cannot be determined.
// Sharing one bucket is intentionally conservative: under-isolating is
// safer than skipping the limit.
const UnknownKey = "unknown"

type headerRule struct {
	name    string
	extract func(string) string
}

// ipHeaderRules is the trust chain for client IP extraction, evaluated
// first-match-wins. Reordering this slice is how an alternate proxy setup
// is configured.
var ipHeaderRules = []headerRule{
	{name: "CF-Connecting-IP", extract: strings.TrimSpace},
	{name: "X-Forwarded-For", extract: firstForwardedEntry},
	{name: "X-Real-IP", extract: strings.TrimSpace},
}

// ClientIP derives the rate-limit key for a request from proxy headers.
// It never fails; requests without a usable header share UnknownKey.
func ClientIP(r *http.Request) string {
	for _, rule := range ipHeaderRules {
		if raw := r.Header.Get(rule.name); raw != "" {
			if ip := rule.extract(raw); ip != "" {
				return ip
			}
		}
	}
	return UnknownKey
}

// firstForwardedEntry returns the first non-empty element of a
// comma-separated X-Forwarded-For chain, the original client.
func firstForwardedEntry(raw string) string {
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
