package headerutil

import (
	"net/netip"
	"strings"
)

// IsInternalRequest reports whether the request originated inside the
// configured internal networks.
//
// It inspects the originating edge of the X-Forwarded-For chain: the
// header value must hold exactly one address. A chain with multiple
// entries has traversed an external hop at some point and is never
// classified internal, regardless of the addresses it contains. An
// absent header, an empty value, or a value that does not parse as an IP
// address classifies as not-internal, never as an error.
//
// This is deliberately not the mirror image of LastAddressFromXff: that
// helper identifies the nearest hop for peer-trust decisions, while this
// one classifies the origin.
func (u *Util) IsInternalRequest(headers HeaderMap) bool {
	xff := headers.Get(headerXForwardedFor)
	if xff == "" {
		return false
	}

	if strings.Contains(xff, ",") {
		u.config.metrics.RecordSecurityEvent(securityEventMultiHopOrigin)
		return false
	}

	addr, err := netip.ParseAddr(strings.TrimSpace(xff))
	if err != nil {
		u.config.metrics.RecordSecurityEvent(securityEventInvalidOriginAddr)
		return false
	}

	return u.isInternalAddress(normalizeIP(addr))
}

// isInternalAddress performs a prefix comparison against each configured
// internal network.
func (u *Util) isInternalAddress(ip netip.Addr) bool {
	if !ip.IsValid() {
		return false
	}

	for _, network := range u.config.internalNetworks {
		if network.Contains(ip) {
			return true
		}
	}

	return false
}
