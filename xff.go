package headerutil

import "strings"

// AppendXff appends the peer address to the X-Forwarded-For header,
// comma-space-joining with any existing value and creating the header when
// absent. Non-IP peers (Unix-domain sockets, named pipes) have no
// representation in the chain; for those the header is left unmodified.
//
// AppendXff mutates headers in place and is the only mutating operation in
// the package.
func (u *Util) AppendXff(headers HeaderMap, address Address) {
	if address == nil {
		return
	}

	switch address.Family() {
	case FamilyIPv4, FamilyIPv6:
	default:
		return
	}

	entry := address.String()
	if existing := headers.Get(headerXForwardedFor); existing != "" {
		entry = existing + xffEntryJoiner + entry
	}
	headers.Set(headerXForwardedFor, entry)
}

// LastAddressFromXff returns the last comma-separated entry of the
// X-Forwarded-For chain, trimmed of surrounding whitespace: the hop
// appended most recently, i.e. the immediate downstream peer as reported
// by the chain.
//
// It returns "" when the header is absent or empty, and performs no
// address validation; whatever trails the final comma is returned
// verbatim. Callers making trust decisions validate the result
// themselves.
func (u *Util) LastAddressFromXff(headers HeaderMap) string {
	values := headers.Values(headerXForwardedFor)
	if len(values) == 0 {
		return ""
	}

	// With repeated headers the chain is their concatenation; the last
	// entry lives in the final value.
	last := values[len(values)-1]
	if idx := strings.LastIndexByte(last, ','); idx >= 0 {
		last = last[idx+1:]
	}

	return strings.TrimSpace(last)
}
