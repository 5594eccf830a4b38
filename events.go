package headerutil

// Operation labels used with Metrics parse counters.
const (
	opCookie         = "cookie"
	opResponseStatus = "response_status"
	opHTTP2Settings  = "http2_settings"
)

// Security event labels used with Metrics.RecordSecurityEvent.
const (
	securityEventMultiHopOrigin    = "multi_hop_origin"
	securityEventInvalidOriginAddr = "invalid_origin_address"
	securityEventMissingStatus     = "missing_status_header"
	securityEventSettingsConflict  = "http2_settings_conflict"
)
