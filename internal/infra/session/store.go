// Package session holds in-progress registration dialogues in process memory.
// Sessions are intentionally volatile: a restart discards every one of them,
// and no persistence contract exists.
package session

import (
	"sync"

	"dirbot/internal/domain/entity"
)

// Store maps a sender address to its registration session. Operations on
// different keys are independent; two concurrent messages from the same
// sender resolve last-write-wins, which matches how messaging clients
// deliver one message at a time per user.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entity.RegistrationSession
}

// NewStore creates an empty session store. One instance is constructed at
// process start and owned by the registration service.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*entity.RegistrationSession),
	}
}

// Get returns the session for sender, if any.
func (s *Store) Get(sender string) (*entity.RegistrationSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sender]

	return sess, ok
}

// Put stores or replaces the session for its sender.
func (s *Store) Put(sess *entity.RegistrationSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.Sender] = sess
}

// Delete removes the session for sender. Deleting an absent key is a no-op.
func (s *Store) Delete(sender string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sender)
}

// Has reports whether sender currently has a session.
func (s *Store) Has(sender string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sessions[sender]

	return ok
}

// Len returns the number of in-flight sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
