package headerutil

// Metrics records parse outcomes and security events emitted by Util.
//
// Implementations should be safe for concurrent use, as a single Util
// instance is typically shared across many goroutines.
type Metrics interface {
	// RecordParseSuccess is called when an operation resolves a value from
	// request or configuration input.
	RecordParseSuccess(op string)
	// RecordParseFailure is called when an operation cannot resolve a
	// value, whether it falls back silently or returns an error.
	RecordParseFailure(op string)
	// RecordSecurityEvent is called when a helper observes a
	// security-relevant condition.
	RecordSecurityEvent(event string)
}

// noopMetrics is the default Metrics implementation when metrics are not
// explicitly configured.
type noopMetrics struct{}

func (noopMetrics) RecordParseSuccess(string) {}

func (noopMetrics) RecordParseFailure(string) {}

func (noopMetrics) RecordSecurityEvent(string) {}
