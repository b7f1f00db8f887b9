// Package middleware provides router navigation hooks for observability.
//
// Hooks implement router.Hook and observe the navigation lifecycle without
// participating in it. Two hooks are provided:
//
//   - Prometheus records navigation counts, durations, and handler failures
//     as Prometheus metrics, labeled by the matched route pattern.
//   - OpenTelemetry records one span per navigation from resolve start to
//     settlement.
//
// Both are configured with functional options and attached through
// router.Config.Hooks:
//
//	rt := router.New(router.Config{
//	    Table:    table,
//	    Adapter:  adapter,
//	    Renderer: renderer,
//	    Hooks: []router.Hook{
//	        middleware.Prometheus(),
//	        middleware.OpenTelemetry(),
//	    },
//	})
package middleware
