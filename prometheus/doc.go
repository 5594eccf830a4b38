// Package prometheus provides a Prometheus-backed implementation of
// headerutil.Metrics.
//
// Two counters are exported: header_parse_total, labeled by operation and
// result, and header_security_events_total, labeled by event. Collectors
// register on prom.DefaultRegisterer unless a registerer is supplied;
// already-registered compatible collectors are reused, so multiple Util
// instances can share one process registry.
//
//	util, err := headerutil.New(
//	    prometheus.WithMetrics(),
//	)
package prometheus
