package http

import "regexp"

// originPattern matches http(s)://host[:port] where host is dot-separated
// labels of alphanumerics with internal hyphens only. Fully anchored, so any
// path, query, fragment, whitespace, or CSP metacharacter fails the match.
var originPattern = regexp.MustCompile(
	`^https?://(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\.)*[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?(?::\d{1,5})?$`)

// isValidOrigin reports whether origin is safe to interpolate into a
// Content-Security-Policy header value. Operator-supplied origin lists end
// up verbatim inside the header, so one malformed entry must not be able to
// smuggle in additional directives.
func isValidOrigin(origin string) bool {
	switch origin {
	case "*", "'self'", "'none'":
		return true
	}
	return originPattern.MatchString(origin)
}

// validOrigins filters a configured allow-list down to entries that pass
// isValidOrigin, preserving order.
func validOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if isValidOrigin(o) {
			out = append(out, o)
		}
	}
	return out
}
