package headerutil

import (
	"fmt"
	"net/netip"
)

// Option configures a Util.
//
// Construct options using package-provided option builder functions.
type Option func(*Config) error

// SetValue represents an optional override value.
//
// Use Set(v) to mark an override as explicitly provided; the zero value
// means "unset, use the default".
type SetValue[T any] struct {
	v   T
	set bool
}

// Set marks a value as explicitly set.
func Set[T any](value T) SetValue[T] {
	return SetValue[T]{v: value, set: true}
}

// isSet reports whether a value was explicitly provided.
func (s SetValue[T]) isSet() bool {
	return s.set
}

// value returns the stored value.
func (s SetValue[T]) value() T {
	return s.v
}

// InternalNetworks replaces the ranges IsInternalRequest classifies as
// internal. The built-in default is the RFC1918 ranges plus IPv4
// loopback.
func InternalNetworks(prefixes ...netip.Prefix) Option {
	prefixes = clonePrefixes(prefixes)

	return func(c *Config) error {
		normalized := make([]netip.Prefix, 0, len(prefixes))
		for _, prefix := range prefixes {
			if !prefix.IsValid() {
				return fmt.Errorf("invalid internal network %q", prefix)
			}
			normalized = append(normalized, prefix.Masked())
		}

		c.internalNetworks = normalized
		return nil
	}
}

// WithLogger sets the logger implementation used for warning events.
func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics sets a concrete metrics implementation.
//
// If previously configured, a metrics factory is disabled.
func WithMetrics(metrics Metrics) Option {
	return func(c *Config) error {
		c.metrics = metrics
		c.metricsFactory = nil
		c.useMetricsFactory = false
		return nil
	}
}

// WithMetricsFactory configures a lazy metrics constructor.
//
// The factory is invoked only after option validation succeeds, so a bad
// configuration cannot register collectors as a side effect.
func WithMetricsFactory(factory func() (Metrics, error)) Option {
	return func(c *Config) error {
		if factory == nil {
			return fmt.Errorf("metrics factory cannot be nil")
		}

		c.metricsFactory = factory
		c.useMetricsFactory = true
		return nil
	}
}
