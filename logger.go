package headerutil

// Logger records the loud failures this package can observe: HTTP/2
// settings conflicts and response header blocks missing ":status".
//
// Implementations should be safe for concurrent use, as a single Util
// instance is typically shared across many goroutines.
//
// The interface intentionally mirrors slog's Warn signature, so
// *slog.Logger can be used directly without an adapter.
type Logger interface {
	Warn(msg string, args ...any)
}

// noopLogger is the default Logger implementation when logging is not
// explicitly configured.
type noopLogger struct{}

func (noopLogger) Warn(string, ...any) {}
