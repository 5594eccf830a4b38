package prometheus

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/abczzz13/headerutil"
	prom "github.com/prometheus/client_golang/prometheus"
)

type mockMetrics struct {
	mu           sync.Mutex
	successCount map[string]int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{
		successCount: make(map[string]int),
	}
}

func (m *mockMetrics) RecordParseSuccess(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.successCount[op]++
}

func (m *mockMetrics) RecordParseFailure(string) {}

func (m *mockMetrics) RecordSecurityEvent(string) {}

func (m *mockMetrics) getSuccessCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.successCount[op]
}

func counterValue(t *testing.T, registry *prom.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("registry.Gather() error = %v", err)
	}

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metric:
		for _, metric := range family.GetMetric() {
			labelValues := make(map[string]string, len(metric.GetLabel()))
			for _, pair := range metric.GetLabel() {
				labelValues[pair.GetName()] = pair.GetValue()
			}
			for wantName, wantValue := range labels {
				if labelValues[wantName] != wantValue {
					continue metric
				}
			}
			return metric.GetCounter().GetValue()
		}
	}

	return 0
}

func TestWithRegisterer_Option(t *testing.T) {
	registry := prom.NewRegistry()

	util, err := headerutil.New(
		WithRegisterer(registry),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	headers := http.Header{"Cookie": {"token=abc123"}}
	if got := util.ParseCookieValue(headers, "token"); got != "abc123" {
		t.Fatalf("ParseCookieValue() = %q, want %q", got, "abc123")
	}

	if got := counterValue(t, registry, "header_parse_total", map[string]string{"op": "cookie", "result": "success"}); got != 1 {
		t.Fatalf("header_parse_total counter = %v, want 1", got)
	}

	util.ParseCookieValue(headers, "missing")
	if got := counterValue(t, registry, "header_parse_total", map[string]string{"op": "cookie", "result": "failure"}); got != 1 {
		t.Fatalf("header_parse_total failure counter = %v, want 1", got)
	}
}

func TestWithRegisterer_SecurityEvents(t *testing.T) {
	registry := prom.NewRegistry()

	util, err := headerutil.New(
		WithRegisterer(registry),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	util.IsInternalRequest(http.Header{"X-Forwarded-For": {"10.0.0.1,10.0.0.2"}})

	if got := counterValue(t, registry, "header_security_events_total", map[string]string{"event": "multi_hop_origin"}); got != 1 {
		t.Fatalf("header_security_events_total counter = %v, want 1", got)
	}
}

func TestMetricsOptions_Precedence_LastWins(t *testing.T) {
	t.Run("custom metrics after prometheus option", func(t *testing.T) {
		registry := prom.NewRegistry()
		customMetrics := newMockMetrics()

		util, err := headerutil.New(
			WithRegisterer(registry),
			headerutil.WithMetrics(customMetrics),
		)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		util.ParseCookieValue(http.Header{"Cookie": {"token=abc123"}}, "token")

		if got := customMetrics.getSuccessCount("cookie"); got != 1 {
			t.Fatalf("custom metrics success count = %d, want 1", got)
		}
		if got := counterValue(t, registry, "header_parse_total", map[string]string{"op": "cookie", "result": "success"}); got != 0 {
			t.Fatalf("prometheus counter = %v, want 0", got)
		}
	})

	t.Run("prometheus option after custom metrics", func(t *testing.T) {
		registry := prom.NewRegistry()
		customMetrics := newMockMetrics()

		util, err := headerutil.New(
			headerutil.WithMetrics(customMetrics),
			WithRegisterer(registry),
		)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		util.ParseCookieValue(http.Header{"Cookie": {"token=abc123"}}, "token")

		if got := customMetrics.getSuccessCount("cookie"); got != 0 {
			t.Fatalf("custom metrics success count = %d, want 0", got)
		}
		if got := counterValue(t, registry, "header_parse_total", map[string]string{"op": "cookie", "result": "success"}); got != 1 {
			t.Fatalf("prometheus counter = %v, want 1", got)
		}
	})
}

func TestNewWithRegisterer_Creation(t *testing.T) {
	registry := prom.NewRegistry()
	metricsA, err := NewWithRegisterer(registry)
	if err != nil {
		t.Fatalf("NewWithRegisterer() error = %v", err)
	}

	metricsB, err := NewWithRegisterer(registry)
	if err != nil {
		t.Fatalf("second NewWithRegisterer() error = %v", err)
	}

	if metricsA == nil || metricsB == nil {
		t.Fatal("expected non-nil prometheus metrics instances")
	}

	metricsA.RecordParseSuccess("cookie")
	metricsB.RecordSecurityEvent("http2_settings_conflict")
}

type failingRegisterer struct {
	err error
}

func (r failingRegisterer) Register(prom.Collector) error {
	return r.err
}

func (r failingRegisterer) MustRegister(...prom.Collector) {}

func (r failingRegisterer) Unregister(prom.Collector) bool {
	return false
}

func TestNewWithRegisterer_RegisterError(t *testing.T) {
	registerErr := errors.New("register failed")

	_, err := NewWithRegisterer(failingRegisterer{err: registerErr})
	if !errors.Is(err, registerErr) {
		t.Fatalf("error = %v, want wrapped register error", err)
	}
}

func TestNewWithRegisterer_IncompatibleCollectorType(t *testing.T) {
	registry := prom.NewRegistry()
	gauge := prom.NewGaugeVec(
		prom.GaugeOpts{
			Name: "header_parse_total",
			Help: "Total number of header parse attempts by operation (cookie, response_status, http2_settings) and result (success, failure).",
		},
		[]string{"op", "result"},
	)
	if err := registry.Register(gauge); err != nil {
		t.Fatalf("registry.Register() error = %v", err)
	}

	_, err := NewWithRegisterer(registry)
	if err == nil {
		t.Fatal("expected error for incompatible existing collector type")
	}
	if !strings.Contains(err.Error(), "incompatible collector type") {
		t.Fatalf("error = %q, want incompatible collector type message", err.Error())
	}
}
