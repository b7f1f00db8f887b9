// Package wayfind is a server-driven client-side router: route resolution,
// history integration, and view rendering run on the server, while a thin
// browser client relays navigation events and applies container patches.
//
// A minimal application:
//
//	app := wayfind.New(wayfind.Config{Address: ":8080"})
//
//	app.Handle("/", func(ctx context.Context, params wayfind.Params) (wayfind.Component, error) {
//	    return view.Static(vdom.El("h1", "home")), nil
//	})
//	app.Handle("/notes/:id", notes.Show)
//
//	log.Fatal(app.Run(context.Background()))
//
// Routes match in registration order, first match wins. See pkg/route for
// pattern syntax, pkg/router for navigation semantics, and pkg/server for
// the serving model and deployment contract.
package wayfind

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/wayfind-dev/wayfind/pkg/route"
	"github.com/wayfind-dev/wayfind/pkg/router"
	"github.com/wayfind-dev/wayfind/pkg/server"
	"github.com/wayfind-dev/wayfind/pkg/view"
)

// Re-exported types so simple applications import one package.
type (
	// Component is a renderable view.
	Component = view.Component

	// Params are the path captures of a matched route.
	Params = route.Params

	// Handler produces the view for a matched route.
	Handler = route.Handler

	// Strategy selects how routes map onto visible URLs.
	Strategy = server.Strategy

	// Hook observes the navigation lifecycle of every session.
	Hook = router.Hook
)

// Strategy values.
const (
	StrategyPath     = server.StrategyPath
	StrategyFragment = server.StrategyFragment
)

// Config configures an App. The zero value is usable.
type Config struct {
	// Address is the listen address (default: ":8080").
	Address string

	// Strategy is the history strategy (default: StrategyPath).
	Strategy Strategy

	// ContainerID is the DOM id of the mount container (default: "wf-root").
	ContainerID string

	// NotFound produces the fallback view when no route matches.
	NotFound Handler

	// ErrorView produces the view mounted when a handler fails.
	ErrorView func(err error) Component

	// Hooks observe every session's navigation lifecycle.
	Hooks []Hook

	// EntryDocument overrides the built-in HTML entry document.
	EntryDocument []byte

	// StaticDir serves files under /static/ when non-empty.
	StaticDir string

	// MetricsHandler is mounted at /metrics when non-nil.
	MetricsHandler http.Handler

	// SessionTTL is how long a disconnected session stays resumable.
	SessionTTL time.Duration

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// App assembles the route table and the server into one application. Routes
// are registered up front; the table is read-only once serving starts.
type App struct {
	table  *route.Table
	config Config
	logger *slog.Logger

	srv *server.Server
}

// New creates an application.
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		table:  route.NewTable(),
		config: cfg,
		logger: logger,
	}
}

// Handle registers a route. Registration order is match order. It panics on
// an invalid pattern, mirroring http.ServeMux, since route registration
// happens at startup.
func (a *App) Handle(pattern string, handler Handler) {
	a.table.MustAdd(pattern, handler)
}

// Table returns the application's route table.
func (a *App) Table() *route.Table {
	return a.table
}

// server builds the underlying server on first use.
func (a *App) buildServer() (*server.Server, error) {
	if a.srv != nil {
		return a.srv, nil
	}
	srv, err := server.New(&server.Config{
		Address:        a.config.Address,
		Strategy:       a.config.Strategy,
		ContainerID:    a.config.ContainerID,
		Table:          a.table,
		NotFound:       a.config.NotFound,
		ErrorView:      a.config.ErrorView,
		Hooks:          a.config.Hooks,
		EntryDocument:  a.config.EntryDocument,
		StaticDir:      a.config.StaticDir,
		MetricsHandler: a.config.MetricsHandler,
		SessionTTL:     a.config.SessionTTL,
		Logger:         a.logger,
	})
	if err != nil {
		return nil, err
	}
	a.srv = srv
	return srv, nil
}

// Handler returns the application as an http.Handler, for embedding into an
// existing server.
func (a *App) Handler() (http.Handler, error) {
	srv, err := a.buildServer()
	if err != nil {
		return nil, err
	}
	return srv.Handler(), nil
}

// Run serves the application until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	srv, err := a.buildServer()
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
