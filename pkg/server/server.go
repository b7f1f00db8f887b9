package server

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	clientdist "github.com/wayfind-dev/wayfind/client/dist"
	"github.com/wayfind-dev/wayfind/pkg/history"
	"github.com/wayfind-dev/wayfind/pkg/protocol"
	"github.com/wayfind-dev/wayfind/pkg/router"
	"github.com/wayfind-dev/wayfind/pkg/view"
)

// Server is the HTTP/WebSocket server: it serves the entry document and the
// thin client, upgrades connections, and runs one router per session.
type Server struct {
	config   *Config
	sessions *Manager
	mux      chi.Router
	upgrader websocket.Upgrader
	entry    []byte
	logger   *slog.Logger

	httpServer *http.Server
}

// New creates a server from config. Config.Table is required.
func New(config *Config) (*Server, error) {
	cfg, err := config.withDefaults()
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:   cfg,
		sessions: NewManager(cfg.SessionTTL, cfg.Logger),
		logger:   cfg.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}

	s.entry = cfg.EntryDocument
	if s.entry == nil {
		s.entry = []byte(fmt.Sprintf(entryTemplate, cfg.ContainerID, cfg.ContainerID, cfg.Strategy))
	}

	mux := chi.NewRouter()
	mux.Use(chimw.Recoverer)
	mux.Get("/_wayfind/ws", s.handleWS)
	mux.Get("/_wayfind/client.js", s.serveThinClient)
	mux.Head("/_wayfind/client.js", s.serveThinClient)
	if cfg.StaticDir != "" {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		mux.Handle("/static/*", fileServer)
	}
	if cfg.MetricsHandler != nil {
		mux.Handle("/metrics", cfg.MetricsHandler)
	}
	mux.Get("/", s.serveEntry)
	mux.NotFound(s.handleNotFound)
	s.mux = mux

	return s, nil
}

// entryTemplate is the built-in HTML document. Deployments with their own
// shell set Config.EntryDocument instead.
const entryTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Wayfind</title>
</head>
<body>
<div id="%s"></div>
<script src="/_wayfind/client.js" data-container="%s" data-strategy="%s" defer></script>
</body>
</html>
`

// Handler returns the server's HTTP handler, for embedding in an existing
// mux or for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Sessions returns the session manager.
func (s *Server) Sessions() *Manager {
	return s.sessions
}

// serveEntry serves the application entry document.
func (s *Server) serveEntry(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		w.Write(s.entry)
	}
}

// handleNotFound implements the deployment contract. Under the path
// strategy every non-asset path must resolve to the entry document so deep
// links and refreshes reach the application; the session then routes the
// real path. Under the fragment strategy only "/" is an application URL.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if s.config.Strategy == StrategyPath &&
		(r.Method == http.MethodGet || r.Method == http.MethodHead) &&
		!strings.HasPrefix(r.URL.Path, "/_wayfind/") &&
		!strings.HasPrefix(r.URL.Path, "/static/") &&
		r.URL.Path != "/metrics" {
		s.serveEntry(w, r)
		return
	}
	http.NotFound(w, r)
}

var thinClientETag = func() string {
	sum := sha256.Sum256(clientdist.WayfindJS)
	return fmt.Sprintf("%q", fmt.Sprintf("%x", sum[:8]))
}()

// serveThinClient serves the embedded client bundle with ETag revalidation.
func (s *Server) serveThinClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", thinClientETag)
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")

	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, thinClientETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(clientdist.WayfindJS)
}

// handleWS upgrades the connection, performs the handshake, and starts or
// resumes a session.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "err", err)
		return
	}

	hs, err := s.readHandshake(conn)
	if err != nil {
		s.logger.Warn("handshake failed", "err", err)
		conn.Close()
		return
	}

	if hs.Resume != "" {
		if old := s.sessions.Get(hs.Resume); old != nil && old.Detached() {
			if err := old.resume(conn); err != nil {
				s.logger.Warn("resume failed", "session", old.ID, "err", err)
				conn.Close()
				return
			}
			old.sendMessage(protocol.FrameControl, protocol.Control{Op: "hello", Session: old.ID})
			return
		}
		// Unknown or still-attached session; fall through to a fresh one.
	}

	if err := s.startSession(conn, hs); err != nil {
		s.logger.Warn("session start failed", "err", err)
		sendFatal(conn, err, s.config.WriteTimeout)
		conn.Close()
	}
}

// readHandshake reads the first frame, which must be a handshake, within the
// handshake deadline.
func (s *Server) readHandshake(conn *websocket.Conn) (*protocol.Handshake, error) {
	conn.SetReadDeadline(time.Now().Add(s.config.HandshakeTimeout))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	frame, err := protocol.DecodeFrame(msg)
	if err != nil {
		return nil, err
	}
	return protocol.DecodeHandshake(frame)
}

// startSession wires a fresh session: the session is both the renderer's
// patch sink and the history adapter's bridge, so one connection backs the
// whole loop.
func (s *Server) startSession(conn *websocket.Conn, hs *protocol.Handshake) error {
	caps := history.Capabilities{HistoryAPI: hs.HistoryAPI}
	sess := newSession(conn, caps, s.config, func(closed *Session) {
		s.sessions.Remove(closed.ID)
	})

	initial := history.Location{Path: sess.routedPath(hs.URL)}
	var (
		adapter transitioner
		err     error
	)
	switch s.config.Strategy {
	case StrategyFragment:
		adapter, err = history.NewFragmentAdapter(sess, initial)
	default:
		// A client without the History API cannot run the path strategy.
		// This is fatal at session startup, never deferred to the first
		// navigation.
		adapter, err = history.NewPathAdapter(sess, initial)
	}
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(sess, s.config.ContainerID)
	rt, err := router.New(router.Config{
		Table:     s.config.Table,
		Adapter:   adapter,
		Renderer:  renderer,
		NotFound:  s.config.NotFound,
		ErrorView: s.config.ErrorView,
		Hooks:     s.config.Hooks,
		Logger:    sess.logger,
	})
	if err != nil {
		return err
	}

	sess.adapter = adapter
	sess.renderer = renderer
	sess.router = rt
	s.sessions.Add(sess)

	if err := sess.sendMessage(protocol.FrameControl, protocol.Control{Op: "hello", Session: sess.ID}); err != nil {
		sess.Close()
		return err
	}

	rt.Start()
	sess.start()
	return nil
}

// sendFatal best-effort reports a startup failure before the connection
// closes.
func sendFatal(conn *websocket.Conn, err error, timeout time.Duration) {
	report := protocol.ErrorReport{Message: err.Error()}
	if werr := wfErr(err); werr != nil {
		report.Code = werr.Code
	}
	frame, encErr := protocol.EncodeFrame(protocol.FrameError, report)
	if encErr != nil {
		return
	}
	conn.SetWriteDeadline(time.Now().Add(timeout))
	conn.WriteMessage(websocket.BinaryMessage, frame.Encode())
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Address, "strategy", string(s.config.Strategy))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.sessions.Shutdown()
	return s.httpServer.Shutdown(shutdownCtx)
}
