package services

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// SessionStore keeps one FormController per browser session
type SessionStore struct {
	newController func() *FormController
	onCreate      func(sessionID string, fc *FormController)

	mu       sync.Mutex
	sessions map[string]*FormController
}

// NewSessionStore creates a store. onCreate, if set, runs once per new session
// before the controller is handed out.
func NewSessionStore(newController func() *FormController, onCreate func(sessionID string, fc *FormController)) *SessionStore {
	return &SessionStore{
		newController: newController,
		onCreate:      onCreate,
		sessions:      make(map[string]*FormController),
	}
}

// Get returns the controller of a session, creating it on first use
func (s *SessionStore) Get(sessionID string) *FormController {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fc, ok := s.sessions[sessionID]; ok {
		return fc
	}
	fc := s.newController()
	if s.onCreate != nil {
		s.onCreate(sessionID, fc)
	}
	s.sessions[sessionID] = fc
	logrus.Debugf("Session %s created (total sessions: %d)", sessionID, len(s.sessions))
	return fc
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictIdle drops sessions that have been idle longer than maxIdle, are not
// waiting on a request and have no open event streams. It returns how many
// were dropped.
func (s *SessionStore) EvictIdle(maxIdle time.Duration, hasClients func(sessionID string) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	evicted := 0
	for id, fc := range s.sessions {
		if now.Sub(fc.IdleSince()) <= maxIdle {
			continue
		}
		if fc.State().Loading {
			continue
		}
		if hasClients != nil && hasClients(id) {
			continue
		}
		delete(s.sessions, id)
		evicted++
	}
	return evicted
}
