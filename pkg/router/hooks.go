package router

import "time"

// OutcomeKind classifies how a navigation settled.
type OutcomeKind uint8

const (
	// OutcomeMounted: the matched route's view was mounted.
	OutcomeMounted OutcomeKind = iota

	// OutcomeNotFound: no route matched; the fallback view was mounted.
	OutcomeNotFound

	// OutcomeFailed: the handler errored or panicked; the error view was
	// mounted.
	OutcomeFailed

	// OutcomeStale: a later navigation superseded this one before it
	// settled. Silent; the container was not touched.
	OutcomeStale
)

// String returns the string representation of the OutcomeKind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMounted:
		return "Mounted"
	case OutcomeNotFound:
		return "NotFound"
	case OutcomeFailed:
		return "Failed"
	case OutcomeStale:
		return "Stale"
	default:
		return "Unknown"
	}
}

// Outcome describes one settled navigation for observers.
type Outcome struct {
	// Path is the canonical navigation path.
	Path string

	// Pattern is the matched route pattern, empty when nothing matched.
	Pattern string

	// Kind is how the navigation settled.
	Kind OutcomeKind

	// Err is the handler failure, when Kind is OutcomeFailed.
	Err error

	// Duration is the time from resolve start to settlement.
	Duration time.Duration
}

// Hook observes the router's navigation lifecycle. ResolveStart is called
// when a navigation begins resolving; the returned function is called exactly
// once when that navigation settles. Settlement runs outside the router's
// internal locks, so a hook may call back into the router.
type Hook interface {
	ResolveStart(path string) func(Outcome)
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(path string) func(Outcome)

// ResolveStart implements Hook.
func (f HookFunc) ResolveStart(path string) func(Outcome) {
	return f(path)
}

// hookStart fans ResolveStart out to every hook and returns the combined
// settlement callback.
func (r *Router) hookStart(path string) func(Outcome) {
	if len(r.hooks) == 0 {
		return func(Outcome) {}
	}
	start := time.Now()
	ends := make([]func(Outcome), 0, len(r.hooks))
	for _, h := range r.hooks {
		if end := h.ResolveStart(path); end != nil {
			ends = append(ends, end)
		}
	}
	return func(o Outcome) {
		o.Duration = time.Since(start)
		for _, end := range ends {
			end(o)
		}
	}
}
