package session

import (
	"sync"

	"teamdesk"
)

// MemStore keeps the session pair in memory. It backs tests and
// one-shot CLI invocations that should not touch the disk.
type MemStore struct {
	mu sync.Mutex

	token string
	user  teamdesk.User
	saved bool
}

func (s *MemStore) Save(token string, user teamdesk.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	s.saved = true
	return nil
}

func (s *MemStore) Load() (string, teamdesk.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return "", teamdesk.User{}, false, nil
	}
	return s.token, s.user, true, nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = teamdesk.User{}
	s.saved = false
	return nil
}
