package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestPrometheusRecordsMountedNavigation(t *testing.T) {
	reg := prometheus.NewRegistry()
	hook := Prometheus(WithRegistry(reg))
	m := hook.(*metricsHook)

	end := hook.ResolveStart("/users/42")
	end(router.Outcome{
		Path:     "/users/42",
		Pattern:  "/users/:id",
		Kind:     router.OutcomeMounted,
		Duration: 5 * time.Millisecond,
	})

	if got := counterValue(t, m.navigationsTotal.WithLabelValues("/users/:id", "Mounted")); got != 1 {
		t.Errorf("navigations_total(Mounted) = %v, want 1", got)
	}
	if got := histogramCount(t, m.navigationDuration.WithLabelValues("/users/:id")); got != 1 {
		t.Errorf("navigation_duration count = %v, want 1", got)
	}
	if got := counterValue(t, m.navigationErrors.WithLabelValues("/users/:id")); got != 0 {
		t.Errorf("navigation_errors_total = %v, want 0", got)
	}
}

func TestPrometheusRecordsHandlerFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	hook := Prometheus(WithRegistry(reg))
	m := hook.(*metricsHook)

	end := hook.ResolveStart("/boom")
	end(router.Outcome{
		Path:    "/boom",
		Pattern: "/boom",
		Kind:    router.OutcomeFailed,
		Err:     errors.New("handler failed"),
	})

	if got := counterValue(t, m.navigationsTotal.WithLabelValues("/boom", "Failed")); got != 1 {
		t.Errorf("navigations_total(Failed) = %v, want 1", got)
	}
	if got := counterValue(t, m.navigationErrors.WithLabelValues("/boom")); got != 1 {
		t.Errorf("navigation_errors_total = %v, want 1", got)
	}
}

func TestPrometheusLabelsUnmatchedNavigations(t *testing.T) {
	reg := prometheus.NewRegistry()
	hook := Prometheus(WithRegistry(reg))
	m := hook.(*metricsHook)

	end := hook.ResolveStart("/nope")
	end(router.Outcome{Path: "/nope", Kind: router.OutcomeNotFound})

	if got := counterValue(t, m.navigationsTotal.WithLabelValues("unmatched", "NotFound")); got != 1 {
		t.Errorf("navigations_total(unmatched, NotFound) = %v, want 1", got)
	}
}

func TestPrometheusRespectsNamespaceOption(t *testing.T) {
	reg := prometheus.NewRegistry()
	hook := Prometheus(WithRegistry(reg), WithNamespace("myapp"))

	end := hook.ResolveStart("/")
	end(router.Outcome{Path: "/", Pattern: "/", Kind: router.OutcomeMounted})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "myapp_navigations_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected myapp_navigations_total in registry")
	}
}
