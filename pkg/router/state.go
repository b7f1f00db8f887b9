package router

// Status is the router's lifecycle state.
type Status uint8

const (
	// StatusIdle: constructed, nothing resolved yet.
	StatusIdle Status = iota

	// StatusResolving: a navigation is in flight; its handler has not
	// settled.
	StatusResolving

	// StatusMounted: a route's view (or the error view) occupies the
	// container.
	StatusMounted

	// StatusNotFound: the fallback view occupies the container. Identical to
	// StatusMounted for transition purposes; it still holds a view handle.
	StatusNotFound
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusResolving:
		return "Resolving"
	case StatusMounted:
		return "Mounted"
	case StatusNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}
