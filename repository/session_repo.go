package repository

import (
	"sync"

	"saisolaredge/quotation"
)

// SessionStore holds the live quotation sessions. Sessions are
// volatile by design: there is no persistent implementation, closing
// the view discards the document.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*quotation.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*quotation.Session)}
}

func (s *SessionStore) Put(sess *quotation.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get returns nil when the session does not exist.
func (s *SessionStore) Get(id string) *quotation.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
