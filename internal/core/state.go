package core

import (
	"sync"

	"github.com/Rorical/SafeHer/internal/emergency"
)

// SafetyState records what the service has done this session. Sharing,
// contacts and location live in their own components; this only tracks
// alert history.
type SafetyState struct {
	mu         sync.RWMutex
	triggers   int
	alertsSent int
	lastAlert  string
	lastError  error
}

func NewSafetyState() *SafetyState {
	return &SafetyState{}
}

// RecordTrigger stores the outcome of one SOS trigger.
func (s *SafetyState) RecordTrigger(out emergency.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.triggers++
	if out.Composed {
		s.lastAlert = out.Message
		if out.NotifyErr == nil {
			s.alertsSent++
		}
	}
	s.lastError = out.NotifyErr
}

func (s *SafetyState) Triggers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.triggers
}

func (s *SafetyState) AlertsSent() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alertsSent
}

func (s *SafetyState) LastAlert() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastAlert
}

func (s *SafetyState) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err
}

func (s *SafetyState) GetLastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}
