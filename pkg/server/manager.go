package server

import (
	"log/slog"
	"sync"
	"time"
)

// Manager tracks live and detached sessions and reaps detached sessions
// whose retention window has passed.
type Manager struct {
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session

	done     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a session manager. ttl is how long a detached session
// stays resumable.
func NewManager(ttl time.Duration, logger *slog.Logger) *Manager {
	m := &Manager{
		ttl:      ttl,
		logger:   logger,
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
	}
	go m.reapLoop()
	return m
}

// Add registers a session.
func (m *Manager) Add(s *Session) {
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
}

// Get returns the session with the given ID, or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// Remove forgets a session. It does not close it.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of tracked sessions, live and detached.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) reapLoop() {
	interval := m.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.reapExpired()
		case <-m.done:
			return
		}
	}
}

// reapExpired closes detached sessions idle past the TTL.
func (m *Manager) reapExpired() {
	cutoff := time.Now().Add(-m.ttl)
	var expired []*Session
	m.mu.Lock()
	for _, s := range m.sessions {
		if s.Detached() && s.LastActive().Before(cutoff) {
			expired = append(expired, s)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		m.logger.Debug("reaping detached session", "session", s.ID)
		s.Close()
	}
}

// Shutdown closes every session and stops the reaper.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() { close(m.done) })

	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.mu.Unlock()

	for _, s := range all {
		s.Close()
	}
}
