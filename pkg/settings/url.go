package settings

import (
	"net/url"
	"regexp"
	"strings"
)

var duplicateSlashes = regexp.MustCompile(`([^:])(/{2,})`)

// NormalizeURL collapses repeated slashes (keeping the one after the scheme)
// and drops characters that are not allowed in URLs.
func NormalizeURL(raw string) string {
	if raw == "" {
		return ""
	}
	u := duplicateSlashes.ReplaceAllString(raw, "$1/")
	return strings.Map(func(r rune) rune {
		if isURLRune(r) {
			return r
		}
		return -1
	}, u)
}

// ProcessURL ensures a non-empty URL ends with exactly one slash.
func ProcessURL(raw string) string {
	if raw == "" || raw == "/" {
		return raw
	}
	trimmed := strings.TrimRight(raw, "/")
	if trimmed == "" {
		return trimmed
	}
	return trimmed + "/"
}

// IsHTTP reports whether raw uses the plain http scheme.
func IsHTTP(raw string) bool {
	return len(raw) >= 7 && strings.EqualFold(raw[:7], "http://")
}

func hasScheme(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// joinURL appends path to base and normalises the result.
func joinURL(base, path string) string {
	if base == "" {
		return ""
	}
	return NormalizeURL(ProcessURL(base) + strings.TrimLeft(path, "/"))
}

// originOf returns scheme://host[:port] of raw or "" when it cannot be parsed.
func originOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// isURLRune reports whether r may appear in a sanitized URL: letters, digits
// and the reserved and unreserved punctuation.
func isURLRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("$-_.+!*'(),{}|\\^~[]`<>#%\";/?:@&=", r)
}
