package headerutil

// Default HTTP/2 codec settings applied when HTTP2ProtocolOptions leaves a
// field unset.
const (
	// DefaultHpackTableSize is the HPACK dynamic table size advertised by
	// RFC 7541 as the initial value.
	DefaultHpackTableSize uint32 = 4096
	// DefaultMaxConcurrentStreams leaves concurrency effectively
	// unlimited; callers constrain it through explicit options.
	DefaultMaxConcurrentStreams uint32 = 1<<31 - 1
	// DefaultInitialStreamWindowSize is 256 MiB, sized for high-throughput
	// proxying rather than the protocol's 64 KiB minimum.
	DefaultInitialStreamWindowSize uint32 = 256 * 1024 * 1024
	// DefaultInitialConnectionWindowSize matches the per-stream window.
	DefaultInitialConnectionWindowSize uint32 = 256 * 1024 * 1024
)

// Configuration paths named in the settings conflict error.
const (
	legacyNoCompressionPath = "http_codec_options.no_compression"
	hpackTableSizePath      = "http2_settings.hpack_table_size"
)

// ParseHTTP2Settings resolves concrete HTTP/2 codec settings from protocol
// options: each field takes its explicit override when set and its default
// otherwise, and the legacy NoCompression codec flag forces the HPACK
// table size to zero.
//
// NoCompression combined with an explicit HpackTableSize override is a
// configuration contradiction. It fails fast with a SettingsConflictError
// naming both option paths, before any defaulting is applied; precedence
// between the two is never resolved silently.
func (u *Util) ParseHTTP2Settings(opts HTTP2ProtocolOptions) (HTTP2Settings, error) {
	if opts.NoCompression && opts.HpackTableSize.isSet() {
		err := &SettingsConflictError{
			LegacyOption: legacyNoCompressionPath,
			SettingField: hpackTableSizePath,
		}
		u.config.metrics.RecordParseFailure(opHTTP2Settings)
		u.config.metrics.RecordSecurityEvent(securityEventSettingsConflict)
		u.config.logger.Warn("conflicting HTTP/2 codec options",
			"legacy_option", err.LegacyOption,
			"setting_field", err.SettingField,
		)
		return HTTP2Settings{}, err
	}

	settings := HTTP2Settings{
		HpackTableSize:              settingOrDefault(opts.HpackTableSize, DefaultHpackTableSize),
		MaxConcurrentStreams:        settingOrDefault(opts.MaxConcurrentStreams, DefaultMaxConcurrentStreams),
		InitialStreamWindowSize:     settingOrDefault(opts.InitialStreamWindowSize, DefaultInitialStreamWindowSize),
		InitialConnectionWindowSize: settingOrDefault(opts.InitialConnectionWindowSize, DefaultInitialConnectionWindowSize),
	}

	if opts.NoCompression {
		settings.HpackTableSize = 0
	}

	u.config.metrics.RecordParseSuccess(opHTTP2Settings)
	return settings, nil
}

func settingOrDefault(value SetValue[uint32], fallback uint32) uint32 {
	if value.isSet() {
		return value.value()
	}
	return fallback
}
