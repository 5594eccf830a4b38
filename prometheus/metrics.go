package prometheus

import (
	"errors"
	"fmt"

	"github.com/abczzz13/headerutil"
	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics is a Prometheus-backed implementation of
// headerutil.Metrics.
type PrometheusMetrics struct {
	parseTotal     *prom.CounterVec
	securityEvents *prom.CounterVec
}

// WithMetrics returns a headerutil option that installs Prometheus-backed
// metrics using prom.DefaultRegisterer.
func WithMetrics() headerutil.Option {
	return withMetricsFactory(New)
}

// WithRegisterer returns a headerutil option that installs
// Prometheus-backed metrics using the provided registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used.
func WithRegisterer(registerer prom.Registerer) headerutil.Option {
	return withMetricsFactory(func() (*PrometheusMetrics, error) {
		return NewWithRegisterer(registerer)
	})
}

// withMetricsFactory adapts a PrometheusMetrics constructor into a
// headerutil.Option.
func withMetricsFactory(factory func() (*PrometheusMetrics, error)) headerutil.Option {
	return func(c *headerutil.Config) error {
		metrics, err := factory()
		if err != nil {
			return err
		}
		return headerutil.WithMetrics(metrics)(c)
	}
}

// New creates PrometheusMetrics and registers its collectors on
// prom.DefaultRegisterer.
func New() (*PrometheusMetrics, error) {
	return NewWithRegisterer(prom.DefaultRegisterer)
}

// NewWithRegisterer creates PrometheusMetrics and registers its collectors
// on the given registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used. If the metrics are
// already registered, existing compatible collectors are reused.
func NewWithRegisterer(registerer prom.Registerer) (*PrometheusMetrics, error) {
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}

	parseTotalCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "header_parse_total",
			Help: "Total number of header parse attempts by operation (cookie, response_status, http2_settings) and result (success, failure).",
		},
		[]string{"op", "result"},
	)
	securityEventsCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "header_security_events_total",
			Help: "Security-related events observed while parsing headers, labeled by event.",
		},
		[]string{"event"},
	)

	parseTotal, err := registerCounterVec(registerer, parseTotalCollector, "header_parse_total")
	if err != nil {
		return nil, err
	}

	securityEvents, err := registerCounterVec(registerer, securityEventsCollector, "header_security_events_total")
	if err != nil {
		return nil, err
	}

	return &PrometheusMetrics{
		parseTotal:     parseTotal,
		securityEvents: securityEvents,
	}, nil
}

func registerCounterVec(registerer prom.Registerer, collector *prom.CounterVec, metricName string) (*prom.CounterVec, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prom.CounterVec)
			if ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return nil, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

// RecordParseSuccess increments header_parse_total with result="success"
// for the provided operation.
func (m *PrometheusMetrics) RecordParseSuccess(op string) {
	m.parseTotal.WithLabelValues(op, "success").Inc()
}

// RecordParseFailure increments header_parse_total with result="failure"
// for the provided operation.
func (m *PrometheusMetrics) RecordParseFailure(op string) {
	m.parseTotal.WithLabelValues(op, "failure").Inc()
}

// RecordSecurityEvent increments header_security_events_total for the
// provided event label.
func (m *PrometheusMetrics) RecordSecurityEvent(event string) {
	m.securityEvents.WithLabelValues(event).Inc()
}
