package server

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wayfind-dev/wayfind/pkg/history"
	"github.com/wayfind-dev/wayfind/pkg/protocol"
	"github.com/wayfind-dev/wayfind/pkg/router"
	"github.com/wayfind-dev/wayfind/pkg/vdom"
	"github.com/wayfind-dev/wayfind/pkg/view"
)

// transitioner is the session-facing side of a history adapter: the Adapter
// contract plus the entry point for client-reported back/forward traversal.
// Both concrete strategies satisfy it.
type transitioner interface {
	history.Adapter
	HandleTransition(url string, state []byte)
}

// Session is one WebSocket connection and its routing state. Each session
// owns a private router and renderer; the shared route table is read-only.
//
// Session is the live implementation of both view.PatchSink (renderer output
// becomes patch frames) and history.Bridge (history commands become history
// frames).
type Session struct {
	ID string

	config   *Config
	caps     history.Capabilities
	adapter  transitioner
	router   *router.Router
	renderer *view.Renderer
	logger   *slog.Logger

	// conn writes are serialized by writeMu. A detached session has a nil
	// conn until the client resumes.
	writeMu sync.Mutex
	conn    *websocket.Conn

	done       chan struct{}
	closeOnce  sync.Once
	onClose    func(*Session)
	lastActive atomic.Int64 // unix nano
	detached   atomic.Bool
}

// newSessionID returns a 32-hex-char random session ID.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("server: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func newSession(conn *websocket.Conn, caps history.Capabilities, config *Config, onClose func(*Session)) *Session {
	id := newSessionID()
	s := &Session{
		ID:      id,
		config:  config,
		caps:    caps,
		logger:  config.Logger.With("session", id),
		conn:    conn,
		done:    make(chan struct{}),
		onClose: onClose,
	}
	s.touch()
	return s
}

func (s *Session) touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

// LastActive returns the time of the last frame in either direction.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

// Detached reports whether the client connection is gone but the session is
// retained for resume.
func (s *Session) Detached() bool {
	return s.detached.Load()
}

// start launches the session loops after the handshake completes.
func (s *Session) start() {
	go s.readLoop()
	go s.heartbeatLoop()
}

// sendFrame writes one frame to the connection. Writes from the router
// goroutines and the heartbeat are serialized here.
func (s *Session) sendFrame(f *protocol.Frame) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.conn == nil {
		return errDetached
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	return s.conn.WriteMessage(websocket.BinaryMessage, f.Encode())
}

func (s *Session) sendMessage(ft protocol.FrameType, msg any) error {
	f, err := protocol.EncodeFrame(ft, msg)
	if err != nil {
		return err
	}
	return s.sendFrame(f)
}

// ApplyPatches implements view.PatchSink.
func (s *Session) ApplyPatches(patches []vdom.Patch) error {
	batch := protocol.EncodePatches(patches)
	return s.sendMessage(protocol.FramePatches, batch)
}

// PushURL implements history.Bridge.
func (s *Session) PushURL(url string, state []byte) error {
	return s.sendMessage(protocol.FrameHistory, protocol.HistoryCommand{
		Action: protocol.HistoryPush,
		URL:    url,
		State:  state,
	})
}

// ReplaceURL implements history.Bridge.
func (s *Session) ReplaceURL(url string, state []byte) error {
	return s.sendMessage(protocol.FrameHistory, protocol.HistoryCommand{
		Action: protocol.HistoryReplace,
		URL:    url,
		State:  state,
	})
}

// Capabilities implements history.Bridge.
func (s *Session) Capabilities() history.Capabilities {
	return s.caps
}

// Router returns the session's router.
func (s *Session) Router() *router.Router {
	return s.router
}

// readLoop reads frames until the connection drops, relaying navigation
// events into the router.
func (s *Session) readLoop() {
	defer s.detach()

	for {
		s.writeMu.Lock()
		conn := s.conn
		s.writeMu.Unlock()
		if conn == nil {
			return
		}

		conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "err", err)
			}
			return
		}
		s.touch()

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			s.logger.Warn("bad frame", "err", err)
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			s.handleEventFrame(frame)
		case protocol.FrameControl:
			s.handleControlFrame(frame)
		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type.String())
		}
	}
}

func (s *Session) handleEventFrame(frame *protocol.Frame) {
	event, err := protocol.DecodeEvent(frame)
	if err != nil {
		s.logger.Warn("bad event", "err", err)
		s.sendError(err)
		return
	}

	switch event.Kind {
	case protocol.EventLink:
		// Intercepted link activation: same contract as a programmatic call.
		path := s.routedPath(event.URL)
		if err := s.router.Navigate(path); err != nil {
			s.logger.Warn("navigate failed", "url", event.URL, "err", err)
			s.sendError(err)
		}
	case protocol.EventTransition:
		// User-driven back/forward: the URL already changed client-side.
		s.adapter.HandleTransition(s.routedPath(event.URL), event.State)
	}
}

func (s *Session) handleControlFrame(frame *protocol.Frame) {
	var ctl protocol.Control
	if err := decodePayload(frame, &ctl); err != nil {
		s.logger.Warn("bad control", "err", err)
		return
	}
	switch ctl.Op {
	case "ping":
		if err := s.sendMessage(protocol.FrameControl, protocol.Control{Op: "pong"}); err != nil {
			s.logger.Warn("pong failed", "err", err)
		}
	case "pong":
		// Heartbeat answered; lastActive was already refreshed.
	}
}

// routedPath maps a client URL onto the path the route table sees. Under the
// path strategy the fragment is dropped; under the fragment strategy the
// route lives after the "#".
func (s *Session) routedPath(url string) string {
	if s.config.Strategy == StrategyFragment {
		if i := strings.Index(url, "#"); i >= 0 {
			if frag := url[i+1:]; frag != "" {
				return frag
			}
			return "/"
		}
		if strings.HasPrefix(url, "/") {
			return url
		}
		return "/"
	}
	if i := strings.Index(url, "#"); i >= 0 {
		url = url[:i]
	}
	if url == "" {
		return "/"
	}
	return url
}

func (s *Session) sendError(err error) {
	report := protocol.ErrorReport{Message: err.Error()}
	if werr := wfErr(err); werr != nil {
		report.Code = werr.Code
	}
	if serr := s.sendMessage(protocol.FrameError, report); serr != nil {
		s.logger.Warn("error report failed", "err", serr)
	}
}

// heartbeatLoop pings on a fixed cadence so half-open connections are
// noticed within the read deadline.
func (s *Session) heartbeatLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if s.Detached() {
				continue
			}
			if err := s.sendMessage(protocol.FrameControl, protocol.Control{Op: "ping"}); err != nil {
				s.logger.Debug("ping failed", "err", err)
			}
		case <-s.done:
			return
		}
	}
}

// detach drops the connection but keeps the session alive for SessionTTL so
// a reconnecting client can resume with its view state intact.
func (s *Session) detach() {
	s.writeMu.Lock()
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	s.writeMu.Unlock()
	if s.detached.CompareAndSwap(false, true) {
		s.touch()
		s.logger.Debug("session detached")
	}
}

// resume attaches a new connection to a detached session and resyncs the
// client by replacing the container contents with the mounted tree.
func (s *Session) resume(conn *websocket.Conn) error {
	s.writeMu.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.conn = conn
	s.writeMu.Unlock()
	s.detached.Store(false)
	s.touch()

	tree := s.renderer.Tree()
	batch := protocol.PatchBatch{Patches: []protocol.WirePatch{{
		Op:   "replace",
		ID:   s.config.ContainerID,
		Node: protocol.EncodeNode(tree),
	}}}
	if err := s.sendMessage(protocol.FramePatches, batch); err != nil {
		return err
	}
	go s.readLoop()
	return nil
}

// Close tears the session down for good: the router unmounts (running view
// cleanup), the connection closes, and the manager forgets the session.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.router != nil {
			if err := s.router.Close(); err != nil {
				s.logger.Warn("router close", "err", err)
			}
		}
		s.writeMu.Lock()
		if s.conn != nil {
			s.conn.Close()
			s.conn = nil
		}
		s.writeMu.Unlock()
		if s.onClose != nil {
			s.onClose(s)
		}
		s.logger.Debug("session closed")
	})
}
