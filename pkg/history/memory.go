package history

import (
	"sync"

	"github.com/wayfind-dev/wayfind/pkg/route"
)

// MemoryAdapter keeps the navigation stack in process memory. It backs
// headless use and tests: Back and Forward simulate the user-driven
// traversal a browser would report.
type MemoryAdapter struct {
	notifier

	mu    sync.Mutex
	stack []Location
	index int
}

// NewMemoryAdapter creates an in-memory adapter starting at the given
// location.
func NewMemoryAdapter(initial Location) (*MemoryAdapter, error) {
	path, _, err := route.Canonicalize(initial.Path)
	if err != nil {
		return nil, err
	}
	return &MemoryAdapter{
		stack: []Location{{Path: path, State: initial.State}},
	}, nil
}

// Navigate implements Adapter. Forward entries beyond the current index are
// discarded, matching platform pushState semantics.
func (a *MemoryAdapter) Navigate(path string, state []byte) error {
	canon, _, err := route.Canonicalize(path)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.stack = append(a.stack[:a.index+1], Location{Path: canon, State: state})
	a.index = len(a.stack) - 1
	a.mu.Unlock()
	return nil
}

// Replace implements Adapter.
func (a *MemoryAdapter) Replace(path string, state []byte) error {
	canon, _, err := route.Canonicalize(path)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.stack[a.index] = Location{Path: canon, State: state}
	a.mu.Unlock()
	return nil
}

// OnTransition implements Adapter.
func (a *MemoryAdapter) OnTransition(fn TransitionFunc) func() {
	return a.subscribe(fn)
}

// CurrentPath implements Adapter.
func (a *MemoryAdapter) CurrentPath() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stack[a.index].Path
}

// Back simulates user-driven backward traversal. It reports whether a prior
// entry existed; when it did, transition handlers fire.
func (a *MemoryAdapter) Back() bool {
	a.mu.Lock()
	if a.index == 0 {
		a.mu.Unlock()
		return false
	}
	a.index--
	loc := a.stack[a.index]
	a.mu.Unlock()
	a.notify(loc.Path, loc.State)
	return true
}

// Forward simulates user-driven forward traversal.
func (a *MemoryAdapter) Forward() bool {
	a.mu.Lock()
	if a.index >= len(a.stack)-1 {
		a.mu.Unlock()
		return false
	}
	a.index++
	loc := a.stack[a.index]
	a.mu.Unlock()
	a.notify(loc.Path, loc.State)
	return true
}

// Depth returns the number of entries on the stack.
func (a *MemoryAdapter) Depth() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.stack)
}
