package middleware

import (
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

func TestOpenTelemetrySettlesWithoutPanic(t *testing.T) {
	hook := OpenTelemetry(
		WithTracerName("test"),
		WithSpanAttributes(attribute.String("app", "test")),
	)

	end := hook.ResolveStart("/users/42")
	if end == nil {
		t.Fatal("expected a settlement callback")
	}
	end(router.Outcome{
		Path:    "/users/42",
		Pattern: "/users/:id",
		Kind:    router.OutcomeMounted,
	})

	end = hook.ResolveStart("/boom")
	end(router.Outcome{
		Path:    "/boom",
		Pattern: "/boom",
		Kind:    router.OutcomeFailed,
		Err:     errors.New("handler failed"),
	})
}

func TestOpenTelemetryFilterSkipsNavigation(t *testing.T) {
	hook := OpenTelemetry(WithPathFilter(func(path string) bool {
		return path != "/health"
	}))

	if end := hook.ResolveStart("/health"); end != nil {
		t.Error("filtered navigation must not be traced")
	}
	if end := hook.ResolveStart("/users"); end == nil {
		t.Error("unfiltered navigation must be traced")
	}
}
