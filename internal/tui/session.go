package tui

import "sync"

// session holds the master key and the authenticated user id for the
// lifetime of one vault loop. The key is stored as a byte slice so wipe can
// zero it in place; strings handed out by key() are transient copies.
type session struct {
	mu        sync.Mutex
	masterKey []byte
	userID    int64
}

func newSession(userID int64) *session {
	return &session{userID: userID}
}

func (s *session) setKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.masterKey = []byte(key)
}

func (s *session) key() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.masterKey)
}

// wipe zeroes the master key bytes and drops the reference. Safe to call
// more than once.
func (s *session) wipe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.masterKey {
		s.masterKey[i] = 0
	}
	s.masterKey = nil
}
