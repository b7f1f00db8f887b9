package history

import (
	"strings"
	"sync"

	"github.com/wayfind-dev/wayfind/pkg/route"
)

// FragmentAdapter is the fragment-based strategy: the route lives in the URL
// fragment (#/notes/42). It needs no server cooperation for deep links, at
// the cost of less canonical URLs. Fragment traversal works on every client,
// so construction never fails for missing capabilities.
type FragmentAdapter struct {
	bridge Bridge
	notifier

	mu      sync.Mutex
	current Location
}

// NewFragmentAdapter creates a fragment-based adapter. The initial location
// may be a full URL with a fragment or a bare path.
func NewFragmentAdapter(bridge Bridge, initial Location) (*FragmentAdapter, error) {
	path, _, err := route.Canonicalize(fragmentPath(initial.Path))
	if err != nil {
		return nil, err
	}
	return &FragmentAdapter{
		bridge:  bridge,
		current: Location{Path: path, State: initial.State},
	}, nil
}

// fragmentPath extracts the routed path from a URL. Everything after the
// first "#" is the route; a URL without a fragment routes to "/".
func fragmentPath(url string) string {
	if i := strings.Index(url, "#"); i >= 0 {
		if frag := url[i+1:]; frag != "" {
			return frag
		}
		return "/"
	}
	// A bare path (no fragment) is already the routed path. This lets the
	// router treat both strategies uniformly.
	if strings.HasPrefix(url, "/") {
		return url
	}
	return "/"
}

// Navigate implements Adapter.
func (a *FragmentAdapter) Navigate(path string, state []byte) error {
	return a.change(path, state, a.bridge.PushURL)
}

// Replace implements Adapter.
func (a *FragmentAdapter) Replace(path string, state []byte) error {
	return a.change(path, state, a.bridge.ReplaceURL)
}

func (a *FragmentAdapter) change(path string, state []byte, send func(string, []byte) error) error {
	canon, query, err := route.Canonicalize(path)
	if err != nil {
		return err
	}
	frag := canon
	if query != "" {
		frag += "?" + query
	}
	if err := send("#"+frag, state); err != nil {
		return err
	}
	a.mu.Lock()
	a.current = Location{Path: canon, State: state}
	a.mu.Unlock()
	return nil
}

// OnTransition implements Adapter.
func (a *FragmentAdapter) OnTransition(fn TransitionFunc) func() {
	return a.subscribe(fn)
}

// CurrentPath implements Adapter.
func (a *FragmentAdapter) CurrentPath() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current.Path
}

// HandleTransition is called by the session when the client reports a
// hashchange traversal.
func (a *FragmentAdapter) HandleTransition(url string, state []byte) {
	canon, _, err := route.Canonicalize(fragmentPath(url))
	if err != nil {
		return
	}
	a.mu.Lock()
	a.current = Location{Path: canon, State: state}
	a.mu.Unlock()
	a.notify(canon, state)
}
