package headerutil

import (
	"fmt"
	"net/netip"
)

// QueryParams maps decoded query parameter names to values. When a name
// repeats in the query string, the last occurrence wins.
type QueryParams map[string]string

// HTTP2Settings holds the fully resolved HTTP/2 codec settings. After
// ParseHTTP2Settings every field carries a concrete value; there is no
// "unset" state.
type HTTP2Settings struct {
	HpackTableSize              uint32
	MaxConcurrentStreams        uint32
	InitialStreamWindowSize     uint32
	InitialConnectionWindowSize uint32
}

// HTTP2ProtocolOptions carries optional per-listener overrides for the
// HTTP/2 codec settings, plus the legacy codec flag that predates explicit
// settings.
//
// Use Set(v) to mark an override as explicitly provided:
//
//	opts := headerutil.HTTP2ProtocolOptions{
//	    MaxConcurrentStreams: headerutil.Set[uint32](1024),
//	}
type HTTP2ProtocolOptions struct {
	HpackTableSize              SetValue[uint32]
	MaxConcurrentStreams        SetValue[uint32]
	InitialStreamWindowSize     SetValue[uint32]
	InitialConnectionWindowSize SetValue[uint32]

	// NoCompression is the legacy codec option implying an HPACK table
	// size of zero. It conflicts with an explicit HpackTableSize override.
	NoCompression bool
}

var (
	// ErrNoStatusHeader reports a response header block without the
	// required ":status" pseudo-header.
	ErrNoStatusHeader = fmt.Errorf("missing required %q header", pseudoHeaderStatus)

	// ErrInvalidStatusHeader reports a ":status" value that is not a
	// decimal status code.
	ErrInvalidStatusHeader = fmt.Errorf("invalid %q header", pseudoHeaderStatus)

	// ErrSettingsConflict reports contradictory HTTP/2 codec options.
	ErrSettingsConflict = fmt.Errorf("conflicting HTTP/2 codec options")
)

// SettingsConflictError reports that a legacy codec option and an explicit
// HTTP/2 setting contradict each other. Both option paths are named so the
// operator can see exactly which two lines of configuration collide.
type SettingsConflictError struct {
	LegacyOption string
	SettingField string
}

func (e *SettingsConflictError) Error() string {
	return fmt.Sprintf("'%s' conflicts with '%s'", e.LegacyOption, e.SettingField)
}

func (e *SettingsConflictError) Unwrap() error {
	return ErrSettingsConflict
}

// StatusError reports a missing or malformed ":status" pseudo-header.
type StatusError struct {
	Err   error
	Value string
}

func (e *StatusError) Error() string {
	if e.Value == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Value)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// ParseCIDRs parses CIDR strings into masked prefixes for use with
// InternalNetworks.
func ParseCIDRs(cidrs ...string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for _, cidr := range cidrs {
		prefix, err := netip.ParsePrefix(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid CIDR %q: %w", cidr, err)
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	return prefixes, nil
}
