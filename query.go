package headerutil

import "strings"

// ParseQueryString decodes the query parameters of a request target.
//
// A missing "?" or an empty query yields an empty map. Fragments without
// "=" record the name with an empty value, and empty fragments from
// doubled or trailing separators are skipped. Malformed input never
// produces an error; unparseable fragments are dropped.
//
// Values are returned as they appear on the wire; no percent-decoding is
// performed.
func (u *Util) ParseQueryString(path string) QueryParams {
	params := QueryParams{}

	start := strings.IndexByte(path, '?')
	if start == -1 {
		return params
	}

	for _, fragment := range strings.Split(path[start+1:], "&") {
		if fragment == "" {
			continue
		}

		name, value, _ := strings.Cut(fragment, "=")
		if name == "" {
			continue
		}
		params[name] = value
	}

	return params
}
