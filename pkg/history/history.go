package history

import (
	"sync"

	"github.com/wayfind-dev/wayfind/internal/errors"
)

// ErrUnavailable is returned at construction time when the client cannot
// provide the navigation primitives a strategy needs. It is a startup
// failure, never deferred to the first navigation.
var ErrUnavailable = errors.New(errors.CodeAdapterNoHistory, errors.CategoryHistory,
	"history: navigation primitives unavailable on this client")

// Location is the active location: the canonical path plus the opaque state
// payload riding on the history entry.
type Location struct {
	Path  string
	State []byte
}

// TransitionFunc is invoked when the user-driven back/forward mechanism
// changes the active location. Programmatic Navigate/Replace calls never
// trigger it.
type TransitionFunc func(path string, state []byte)

// Adapter wraps the platform's navigation primitives behind one contract.
// Two interchangeable strategies exist: path-based (History API URLs) and
// fragment-based (#/... URLs needing no server cooperation).
//
// Navigate and Replace synchronously update CurrentPath's subsequent return
// value and do not invoke transition callbacks; only externally driven
// back/forward traversal does. This keeps programmatic navigation and the
// transition handler from feeding back into each other.
type Adapter interface {
	// Navigate mutates the visible location without a reload and pushes a
	// new entry onto the platform navigation stack.
	Navigate(path string, state []byte) error

	// Replace is Navigate but overwrites the current entry.
	Replace(path string, state []byte) error

	// OnTransition registers a back/forward handler and returns its
	// deregistration function.
	OnTransition(fn TransitionFunc) (unsubscribe func())

	// CurrentPath reads the active location synchronously.
	CurrentPath() string
}

// Capabilities are the navigation features the client reported during
// handshake.
type Capabilities struct {
	// HistoryAPI reports pushState/replaceState support.
	HistoryAPI bool `json:"historyApi"`
}

// Bridge carries history commands to the platform. The live session
// implements it by sending protocol frames; tests use a recording fake.
type Bridge interface {
	// PushURL makes the client push url onto its navigation stack.
	PushURL(url string, state []byte) error

	// ReplaceURL makes the client overwrite the current entry with url.
	ReplaceURL(url string, state []byte) error

	// Capabilities returns what the client reported at handshake.
	Capabilities() Capabilities
}

// notifier manages transition subscriptions. Subscription and delivery may
// happen on different goroutines; callbacks run outside the lock.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]TransitionFunc
}

func (n *notifier) subscribe(fn TransitionFunc) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]TransitionFunc)
	}
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

func (n *notifier) notify(path string, state []byte) {
	n.mu.Lock()
	fns := make([]TransitionFunc, 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn(path, state)
	}
}
