package headerutil

// Canonical header names used by the helpers. HeaderMap lookups are
// case-insensitive, so the casing here is cosmetic for HTTP/1 containers;
// pseudo-headers are always lowercase on the wire.
const (
	headerXForwardedFor = "X-Forwarded-For"
	headerConnection    = "Connection"
	headerUpgrade       = "Upgrade"
	headerCookie        = "Cookie"

	pseudoHeaderAuthority = ":authority"
	pseudoHeaderPath      = ":path"
	pseudoHeaderStatus    = ":status"
)

const (
	upgradeTokenValue = "upgrade"
	webSocketValue    = "websocket"
	sslRedirectPrefix = "https://"
	xffEntryJoiner    = ", "
)

// HeaderMap is the header container the helpers operate on: an ordered
// multi-map from case-insensitive header name to one or more values.
//
// net/http.Header satisfies HeaderMap directly. Codec-owned header
// containers in proxy data planes implement it with trivial adapters.
//
// Get returns the first value associated with the name, or "" when the
// header is absent. Values returns all values in insertion order. Set
// replaces all existing values for the name.
type HeaderMap interface {
	Get(name string) string
	Values(name string) []string
	Set(name, value string)
}
