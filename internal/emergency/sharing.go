package emergency

import "sync"

// Sharing tracks whether a location-sharing session is active. It is the
// only source of truth for whether "mark safe" is offered.
type Sharing struct {
	mu      sync.RWMutex
	sharing bool
}

func NewSharing() *Sharing {
	return &Sharing{}
}

// StartSharing begins a session without placing a call.
func (s *Sharing) StartSharing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sharing = true
}

// MarkSafe ends the session. Calling it while not sharing is harmless.
func (s *Sharing) MarkSafe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sharing = false
}

func (s *Sharing) IsSharing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sharing
}
