package server

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestManagerTracksSessions(t *testing.T) {
	m := NewManager(time.Minute, discardLogger())
	defer m.Shutdown()

	s := &Session{ID: "abc", config: DefaultConfig(), logger: discardLogger(), done: make(chan struct{})}
	m.Add(s)

	if got := m.Get("abc"); got != s {
		t.Error("Get did not return the added session")
	}
	if got := m.Count(); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}

	m.Remove("abc")
	if got := m.Get("abc"); got != nil {
		t.Error("Get after Remove returned a session")
	}
}

func TestManagerReapsExpiredDetachedSessions(t *testing.T) {
	m := NewManager(10*time.Millisecond, discardLogger())
	defer m.Shutdown()

	s := &Session{ID: "old", config: DefaultConfig(), logger: discardLogger(), done: make(chan struct{})}
	s.onClose = func(closed *Session) { m.Remove(closed.ID) }
	s.detached.Store(true)
	s.lastActive.Store(time.Now().Add(-time.Minute).UnixNano())
	m.Add(s)

	m.reapExpired()

	if got := m.Count(); got != 0 {
		t.Errorf("Count after reap = %d, want 0", got)
	}
}

func TestManagerKeepsFreshDetachedSessions(t *testing.T) {
	m := NewManager(time.Minute, discardLogger())
	defer m.Shutdown()

	s := &Session{ID: "fresh", config: DefaultConfig(), logger: discardLogger(), done: make(chan struct{})}
	s.detached.Store(true)
	s.touch()
	m.Add(s)

	m.reapExpired()

	if got := m.Count(); got != 1 {
		t.Errorf("Count after reap = %d, want 1", got)
	}
}
