package router

import (
	"context"
	"log/slog"
	"sync"

	"github.com/wayfind-dev/wayfind/internal/errors"
	"github.com/wayfind-dev/wayfind/pkg/history"
	"github.com/wayfind-dev/wayfind/pkg/route"
	"github.com/wayfind-dev/wayfind/pkg/view"
)

// Config assembles a router from its collaborators. Table, Adapter, and
// Renderer are required.
type Config struct {
	// Table is the ordered route table, read-only after startup.
	Table *route.Table

	// Adapter is the history strategy. The router holds the only active
	// transition subscription.
	Adapter history.Adapter

	// Renderer is the sole writer to the mount container.
	Renderer *view.Renderer

	// NotFound produces the fallback view. Defaults to a plain built-in.
	NotFound route.Handler

	// ErrorView produces the view mounted when a handler fails. Defaults to
	// a plain built-in carrying the error text.
	ErrorView func(err error) view.Component

	// Hooks observe the navigation lifecycle.
	Hooks []Hook

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Router orchestrates navigation: it listens for navigation intents and
// back/forward transitions, resolves paths against the table, and drives the
// renderer. It lives for the whole application lifetime; Close is only for
// embedding scenarios that tear sessions down.
type Router struct {
	table    *route.Table
	adapter  history.Adapter
	renderer *view.Renderer
	notFound route.Handler
	errView  func(err error) view.Component
	hooks    []Hook
	logger   *slog.Logger

	mu       sync.Mutex
	status   Status
	gen      uint64
	cancel   context.CancelFunc
	curPath  string
	curState []byte
	unsub    func()
	closed   bool
}

// New creates a router and subscribes it to the adapter's transition
// channel. The router starts Idle; call Start to resolve the adapter's
// current location.
func New(cfg Config) (*Router, error) {
	if cfg.Table == nil || cfg.Adapter == nil || cfg.Renderer == nil {
		return nil, errors.New(errors.CodeConfigInvalid, errors.CategoryConfig,
			"router: Table, Adapter, and Renderer are required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notFound := cfg.NotFound
	if notFound == nil {
		notFound = defaultNotFound
	}
	errView := cfg.ErrorView
	if errView == nil {
		errView = defaultErrorView
	}

	r := &Router{
		table:    cfg.Table,
		adapter:  cfg.Adapter,
		renderer: cfg.Renderer,
		notFound: notFound,
		errView:  errView,
		hooks:    cfg.Hooks,
		logger:   logger,
		status:   StatusIdle,
	}
	r.unsub = cfg.Adapter.OnTransition(r.onTransition)
	return r, nil
}

// NavigateOption configures one navigation.
type NavigateOption func(*navigateOptions)

type navigateOptions struct {
	replace bool
	state   []byte
}

// WithReplace overwrites the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *navigateOptions) { o.replace = true }
}

// WithState attaches an opaque payload to the new history entry. It comes
// back on back/forward transitions into this entry.
func WithState(state []byte) NavigateOption {
	return func(o *navigateOptions) { o.state = state }
}

// Navigate performs a programmatic navigation: the URL changes first, then
// the path resolves and the matched view mounts. Navigating to the already
// mounted path with the same state is a no-op - the view is not remounted.
func (r *Router) Navigate(path string, opts ...NavigateOption) error {
	var o navigateOptions
	for _, opt := range opts {
		opt(&o)
	}

	canon, _, err := route.Canonicalize(path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return errors.New(errors.CodeAdapterClosed, errors.CategoryRouting, "router: closed")
	}
	if r.isCurrent(canon, o.state) {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	// URL first, then resolve: the adapter guarantees this does not feed
	// back through the transition channel.
	change := r.adapter.Navigate
	if o.replace {
		change = r.adapter.Replace
	}
	if err := change(path, o.state); err != nil {
		return err
	}

	r.resolve(canon, o.state)
	return nil
}

// Start resolves the adapter's current location, mounting the initial view.
// Called once after the session handshake.
func (r *Router) Start() {
	r.resolve(r.adapter.CurrentPath(), nil)
}

// onTransition handles externally driven back/forward traversal reported by
// the adapter: the URL already changed, so it re-enters resolution directly.
func (r *Router) onTransition(path string, state []byte) {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return
	}
	canon, _, err := route.Canonicalize(path)
	if err != nil {
		r.logger.Warn("router: ignoring transition with invalid path", "path", path, "err", err)
		return
	}
	r.resolve(canon, state)
}

// isCurrent reports whether the canonical path and state match the mounted
// view. Caller holds r.mu.
func (r *Router) isCurrent(canon string, state []byte) bool {
	if r.status != StatusMounted && r.status != StatusNotFound {
		return false
	}
	return r.curPath == canon && string(r.curState) == string(state)
}

// Status returns the router's lifecycle state.
func (r *Router) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// CurrentPath returns the adapter's active path.
func (r *Router) CurrentPath() string {
	return r.adapter.CurrentPath()
}

// Close tears the router down: the in-flight navigation (if any) is
// discarded, the transition subscription is dropped, and the mounted view's
// cleanup runs.
func (r *Router) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.gen++ // any in-flight resolution is now stale
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	unsub := r.unsub
	r.unsub = nil
	r.status = StatusIdle
	r.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	return r.renderer.Unmount()
}
