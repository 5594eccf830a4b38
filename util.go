package headerutil

import (
	"fmt"
	"sync"
)

// Util evaluates header utilities against one configuration: the internal
// network set, logging, and metrics.
//
// Util instances are safe for concurrent reuse. The only method that
// mutates its input is AppendXff; see the package documentation for the
// ownership contract.
type Util struct {
	config *Config
}

// New creates a Util from zero or more Option builders.
func New(opts ...Option) (*Util, error) {
	cfg, err := configFromOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Util{config: cfg}, nil
}

// defaultUtil backs the package-level convenience functions. The default
// configuration cannot fail validation.
var defaultUtil = sync.OnceValue(func() *Util {
	util, err := New()
	if err != nil {
		panic(fmt.Sprintf("headerutil: default configuration invalid: %v", err))
	}
	return util
})

// ParseQueryString decodes the query parameters of a request target using
// the default configuration.
func ParseQueryString(path string) QueryParams {
	return defaultUtil().ParseQueryString(path)
}

// IsInternalRequest reports whether the request originated inside the
// default internal networks (RFC1918 plus loopback).
func IsInternalRequest(headers HeaderMap) bool {
	return defaultUtil().IsInternalRequest(headers)
}

// IsWebSocketUpgradeRequest reports whether headers form a WebSocket
// upgrade request.
func IsWebSocketUpgradeRequest(headers HeaderMap) bool {
	return defaultUtil().IsWebSocketUpgradeRequest(headers)
}

// AppendXff appends the peer address to the X-Forwarded-For chain using
// the default configuration.
func AppendXff(headers HeaderMap, address Address) {
	defaultUtil().AppendXff(headers, address)
}

// LastAddressFromXff returns the last entry of the X-Forwarded-For chain
// using the default configuration.
func LastAddressFromXff(headers HeaderMap) string {
	return defaultUtil().LastAddressFromXff(headers)
}

// ParseCookieValue returns the value of the named cookie using the default
// configuration.
func ParseCookieValue(headers HeaderMap, key string) string {
	return defaultUtil().ParseCookieValue(headers, key)
}

// SSLRedirectPath builds the https redirect target for the request using
// the default configuration.
func SSLRedirectPath(headers HeaderMap) string {
	return defaultUtil().SSLRedirectPath(headers)
}

// ResponseStatus extracts the ":status" code from a response header block
// using the default configuration.
func ResponseStatus(headers HeaderMap) (int, error) {
	return defaultUtil().ResponseStatus(headers)
}

// ParseHTTP2Settings resolves HTTP/2 codec settings from protocol options
// using the default configuration.
func ParseHTTP2Settings(opts HTTP2ProtocolOptions) (HTTP2Settings, error) {
	return defaultUtil().ParseHTTP2Settings(opts)
}
