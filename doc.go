// Package headerutil provides request/response header helpers for
// reverse-proxy and edge-routing data planes: query-string decoding,
// internal-address classification, X-Forwarded-For chain manipulation,
// WebSocket upgrade detection, cookie extraction, SSL-redirect URL
// construction, and HTTP/2 settings resolution.
//
// Every helper runs on the hot path of request processing, so parsing is
// strictly lenient on untrusted input: malformed query fragments, cookie
// segments, and proxy-chain entries fall back to empty results or no-ops
// instead of errors. The only loud failures are genuine protocol or
// configuration contradictions: a response missing its ":status"
// pseudo-header, or HTTP/2 options that request both "no compression" and
// an explicit HPACK table size.
//
// # Basic Usage
//
// The package-level functions use built-in defaults (RFC1918 ranges plus
// loopback for internal classification):
//
//	params := headerutil.ParseQueryString(r.URL.RequestURI())
//
//	if headerutil.IsWebSocketUpgradeRequest(r.Header) {
//	    // hand off to the WebSocket path
//	}
//
//	token := headerutil.ParseCookieValue(r.Header, "token")
//
// # Header Access
//
// All helpers read headers through the HeaderMap interface, which
// net/http.Header satisfies directly. Proxy codecs with their own header
// containers implement the three methods to plug in.
//
// # Proxy Chains
//
// AppendXff records the downstream peer before a request is forwarded;
// LastAddressFromXff recovers the nearest hop on the way back:
//
//	headerutil.AppendXff(r.Header, headerutil.IPAddress(peer))
//	nearest := headerutil.LastAddressFromXff(r.Header)
//
// IsInternalRequest answers a different trust question: whether the
// request originated inside the internal network. It inspects the chain's
// origin entry, and deliberately does not share selection logic with
// LastAddressFromXff.
//
// # Configuration
//
// New builds a Util with explicit internal networks, logging, and metrics:
//
//	cidrs, _ := headerutil.ParseCIDRs("10.0.0.0/8", "127.0.0.0/8")
//	util, err := headerutil.New(
//	    headerutil.InternalNetworks(cidrs...),
//	    headerutil.WithLogger(slog.Default()),
//	)
//
// # Observability
//
// The Logger interface mirrors slog's Warn signature, so *slog.Logger is
// usable without an adapter. Metrics implementations count parse outcomes
// and security-significant events; a Prometheus-backed implementation
// lives in github.com/abczzz13/headerutil/prometheus:
//
//	import headerutilprom "github.com/abczzz13/headerutil/prometheus"
//
//	util, err := headerutil.New(
//	    headerutilprom.WithMetrics(),
//	)
//
// # Concurrency
//
// All helpers are synchronous and allocation-light. Util instances are
// safe for concurrent reuse. AppendXff mutates the passed-in header map in
// place; callers own synchronization of shared header maps, exactly as
// with net/http.Header.
package headerutil
