package headerutil

import "strings"

// ParseCookieValue returns the value of the named cookie, searching every
// Cookie header occurrence in order. The first matching pair wins; name
// comparison is case-sensitive per RFC 6265.
//
// Values wrapped in a matched pair of double quotes are unquoted once. An
// unmatched leading quote is part of the value and preserved. Malformed
// segments (missing "=", empty names, stray separators) are skipped
// without error.
//
// Returns "" when no cookie with the given name exists.
func (u *Util) ParseCookieValue(headers HeaderMap, key string) string {
	for _, header := range headers.Values(headerCookie) {
		for _, segment := range strings.Split(header, ";") {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}

			name, value, found := strings.Cut(segment, "=")
			if !found || name == "" {
				continue
			}
			if name != key {
				continue
			}

			u.config.metrics.RecordParseSuccess(opCookie)
			return trimMatchedChar(value, '"')
		}
	}

	u.config.metrics.RecordParseFailure(opCookie)
	return ""
}

// trimMatchedPair removes one leading and trailing delimiter when both
// match. A lone delimiter on either side is left in place.
func trimMatchedPair(s string, start, end byte) string {
	if len(s) < 2 {
		return s
	}

	if s[0] != start || s[len(s)-1] != end {
		return s
	}

	return s[1 : len(s)-1]
}

// trimMatchedChar removes one matching leading and trailing character.
func trimMatchedChar(s string, ch byte) string {
	return trimMatchedPair(s, ch, ch)
}
