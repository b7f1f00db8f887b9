package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/wayfind-dev/wayfind/internal/errors"
	"github.com/wayfind-dev/wayfind/pkg/route"
	"github.com/wayfind-dev/wayfind/pkg/router"
	"github.com/wayfind-dev/wayfind/pkg/view"
)

// Strategy selects how routes map onto visible URLs.
type Strategy string

const (
	// StrategyPath keeps routes in the URL path via the History API. Deep
	// links are canonical URLs; the server resolves unknown paths to the
	// entry document so direct loads and refreshes succeed.
	StrategyPath Strategy = "path"

	// StrategyFragment keeps routes in the URL fragment (#/notes/42). Deep
	// links need no server cooperation and the History API is optional.
	StrategyFragment Strategy = "fragment"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == StrategyPath || s == StrategyFragment
}

// Config configures the HTTP/WebSocket server.
type Config struct {
	// Address is the listen address (default: ":8080").
	Address string

	// Strategy selects the history strategy (default: StrategyPath).
	Strategy Strategy

	// ContainerID is the DOM id of the mount container (default: "wf-root").
	ContainerID string

	// Table is the application's route table. Required.
	Table *route.Table

	// NotFound and ErrorView are passed through to each session's router.
	NotFound  route.Handler
	ErrorView func(err error) view.Component

	// Hooks observe every session's navigation lifecycle.
	Hooks []router.Hook

	// EntryDocument overrides the built-in HTML entry document. It is
	// served for the root path and, under StrategyPath, for any path that
	// is not a server asset.
	EntryDocument []byte

	// StaticDir serves files under /static/ when non-empty.
	StaticDir string

	// MetricsHandler is mounted at /metrics when non-nil, typically
	// promhttp.Handler().
	MetricsHandler http.Handler

	// CheckOrigin validates WebSocket upgrade origins. Defaults to
	// same-origin.
	CheckOrigin func(r *http.Request) bool

	// Timeouts.
	ReadTimeout       time.Duration // WebSocket read deadline (default: 60s)
	WriteTimeout      time.Duration // WebSocket write deadline (default: 10s)
	HeartbeatInterval time.Duration // Ping cadence (default: 30s)
	HandshakeTimeout  time.Duration // First-frame deadline (default: 10s)
	ShutdownTimeout   time.Duration // Graceful shutdown limit (default: 15s)
	SessionTTL        time.Duration // Detached session retention (default: 60s)

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a config with production defaults. Table must still
// be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":8080",
		Strategy:          StrategyPath,
		ContainerID:       "wf-root",
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		HandshakeTimeout:  10 * time.Second,
		ShutdownTimeout:   15 * time.Second,
		SessionTTL:        60 * time.Second,
	}
}

// withDefaults fills unset fields from DefaultConfig and validates.
func (c *Config) withDefaults() (*Config, error) {
	d := DefaultConfig()
	out := *c
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.Strategy == "" {
		out.Strategy = d.Strategy
	}
	if out.ContainerID == "" {
		out.ContainerID = d.ContainerID
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = d.ReadTimeout
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = d.WriteTimeout
	}
	if out.HeartbeatInterval == 0 {
		out.HeartbeatInterval = d.HeartbeatInterval
	}
	if out.HandshakeTimeout == 0 {
		out.HandshakeTimeout = d.HandshakeTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	if out.SessionTTL == 0 {
		out.SessionTTL = d.SessionTTL
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	if out.Table == nil {
		return nil, errors.New(errors.CodeConfigInvalid, errors.CategoryConfig,
			"server: route table is required")
	}
	if !out.Strategy.Valid() {
		return nil, errors.New(errors.CodeConfigInvalid, errors.CategoryConfig,
			"server: unknown strategy").WithDetailf("strategy %q", out.Strategy)
	}
	return &out, nil
}
