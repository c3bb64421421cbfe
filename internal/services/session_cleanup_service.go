package services

import (
	"time"

	"github.com/sirupsen/logrus"
)

// SessionCleanupService periodically forgets abandoned browser sessions
type SessionCleanupService struct {
	store    *SessionStore
	hub      *SSEHub
	interval time.Duration
	maxIdle  time.Duration
	stopChan chan bool
}

func NewSessionCleanupService(store *SessionStore, hub *SSEHub, interval, maxIdle time.Duration) *SessionCleanupService {
	return &SessionCleanupService{
		store:    store,
		hub:      hub,
		interval: interval,
		maxIdle:  maxIdle,
		stopChan: make(chan bool),
	}
}

// Start starts the cleanup loop
func (s *SessionCleanupService) Start() {
	go s.run()
	logrus.Infof("Session cleanup service started (interval: %v, max idle: %v)", s.interval, s.maxIdle)
}

// Stop stops the cleanup loop
func (s *SessionCleanupService) Stop() {
	s.stopChan <- true
	logrus.Info("Session cleanup service stopped")
}

func (s *SessionCleanupService) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

func (s *SessionCleanupService) cleanup() {
	evicted := s.store.EvictIdle(s.maxIdle, func(sessionID string) bool {
		return s.hub.GetClientCount(sessionID) > 0
	})
	if evicted > 0 {
		logrus.Infof("Session cleanup completed: dropped %d idle session(s)", evicted)
	} else {
		logrus.Debug("Session cleanup completed: nothing to drop")
	}
}
