package history

import (
	"sync"

	"github.com/wayfind-dev/wayfind/pkg/route"
)

// PathAdapter is the path-based strategy: routes live in the resolvable URL
// path via the History API. Deep links are canonical URLs, but the serving
// layer must resolve unknown paths back to the application's entry document
// so direct loads and refreshes succeed.
type PathAdapter struct {
	bridge Bridge
	notifier

	mu      sync.Mutex
	current Location
}

// NewPathAdapter creates a path-based adapter. It fails immediately with
// ErrUnavailable when the client did not report History API support.
func NewPathAdapter(bridge Bridge, initial Location) (*PathAdapter, error) {
	if !bridge.Capabilities().HistoryAPI {
		return nil, ErrUnavailable
	}
	path, _, err := route.Canonicalize(initial.Path)
	if err != nil {
		return nil, err
	}
	return &PathAdapter{
		bridge:  bridge,
		current: Location{Path: path, State: initial.State},
	}, nil
}

// Navigate implements Adapter.
func (a *PathAdapter) Navigate(path string, state []byte) error {
	return a.change(path, state, a.bridge.PushURL)
}

// Replace implements Adapter.
func (a *PathAdapter) Replace(path string, state []byte) error {
	return a.change(path, state, a.bridge.ReplaceURL)
}

func (a *PathAdapter) change(path string, state []byte, send func(string, []byte) error) error {
	canon, query, err := route.Canonicalize(path)
	if err != nil {
		return err
	}
	url := canon
	if query != "" {
		url += "?" + query
	}
	if err := send(url, state); err != nil {
		return err
	}
	a.mu.Lock()
	a.current = Location{Path: canon, State: state}
	a.mu.Unlock()
	return nil
}

// OnTransition implements Adapter.
func (a *PathAdapter) OnTransition(fn TransitionFunc) func() {
	return a.subscribe(fn)
}

// CurrentPath implements Adapter.
func (a *PathAdapter) CurrentPath() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current.Path
}

// HandleTransition is called by the session when the client reports a
// back/forward traversal. The reported URL becomes the active location and
// registered handlers fire.
func (a *PathAdapter) HandleTransition(url string, state []byte) {
	canon, _, err := route.Canonicalize(url)
	if err != nil {
		// Hostile popstate URL; ignore rather than corrupt the location.
		return
	}
	a.mu.Lock()
	a.current = Location{Path: canon, State: state}
	a.mu.Unlock()
	a.notify(canon, state)
}
