package headerutil

import (
	"fmt"
	"net/netip"
	"reflect"
)

// Config holds Util configuration state.
//
// It is mutated by Option functions during construction. Fields are
// unexported; construct configurations through New and the option
// builders.
type Config struct {
	internalNetworks []netip.Prefix

	logger  Logger
	metrics Metrics

	metricsFactory    func() (Metrics, error)
	useMetricsFactory bool
}

// defaultInternalNetworks contains the ranges treated as internal when
// InternalNetworks is not configured: the RFC1918 private ranges plus
// IPv4 loopback. These match what edge deployments conventionally consider
// "behind the perimeter".
var defaultInternalNetworks = []netip.Prefix{
	mustParsePrefix("10.0.0.0/8"),
	mustParsePrefix("172.16.0.0/12"),
	mustParsePrefix("192.168.0.0/16"),
	mustParsePrefix("127.0.0.0/8"),
}

func mustParsePrefix(cidr string) netip.Prefix {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in CIDR %q: %v", cidr, err))
	}
	return prefix
}

func defaultConfig() *Config {
	return &Config{
		internalNetworks: clonePrefixes(defaultInternalNetworks),
		logger:           noopLogger{},
		metrics:          noopMetrics{},
	}
}

func configFromOptions(opts ...Option) (*Config, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.useMetricsFactory && cfg.metricsFactory == nil {
		return nil, fmt.Errorf("metrics factory cannot be nil")
	}

	// Validate before invoking a metrics factory so a bad configuration
	// never registers collectors as a side effect.
	validationConfig := cfg
	if cfg.useMetricsFactory {
		validationConfig = cfg.clone()
		validationConfig.metrics = noopMetrics{}
	}

	if err := validationConfig.validate(); err != nil {
		return nil, err
	}

	if cfg.useMetricsFactory {
		metrics, err := cfg.metricsFactory()
		if err != nil {
			return nil, err
		}
		cfg.metrics = metrics

		if err := cfg.validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) clone() *Config {
	cloned := *c
	cloned.internalNetworks = clonePrefixes(c.internalNetworks)
	return &cloned
}

func (c *Config) validate() error {
	if len(c.internalNetworks) == 0 {
		return fmt.Errorf("at least one internal network required; use InternalNetworks or rely on the defaults")
	}
	for _, prefix := range c.internalNetworks {
		if !prefix.IsValid() {
			return fmt.Errorf("invalid internal network %q", prefix)
		}
	}
	if isNilInterface(c.logger) {
		return fmt.Errorf("logger cannot be nil")
	}
	if isNilInterface(c.metrics) {
		return fmt.Errorf("metrics cannot be nil")
	}
	return nil
}

func clonePrefixes(prefixes []netip.Prefix) []netip.Prefix {
	if prefixes == nil {
		return nil
	}
	cloned := make([]netip.Prefix, len(prefixes))
	copy(cloned, prefixes)
	return cloned
}

func isNilInterface(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
