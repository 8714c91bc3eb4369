package session

import (
	"sync"

	"teamdesk"
)

// Store is the durable side of a session. Exactly two things are
// persisted, always together: the bearer token and the identity record.
type Store interface {
	Save(token string, user teamdesk.User) error
	Load() (token string, user teamdesk.User, ok bool, err error)
	Clear() error
}

// Session tracks the current authenticated identity. It has two states:
// unauthenticated (no cached identity) and authenticated (identity and
// token cached, pair persisted in the store). Safe for concurrent use.
type Session struct {
	mu    sync.Mutex
	store Store

	token  string
	user   teamdesk.User
	authed bool
}

func New(store Store) *Session {
	return &Session{
		store: store,
	}
}

// Init derives the initial state from any previously persisted pair.
func (s *Session) Init() error {
	token, user, ok, err := s.store.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.token = token
		s.user = user
		s.authed = true
	}
	return nil
}

// Set moves the session to authenticated. The pair is persisted first:
// if that fails the session does not change state.
func (s *Session) Set(token string, user teamdesk.User) error {
	if err := s.store.Save(token, user); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	s.authed = true
	return nil
}

// Clear moves the session to unauthenticated. The in-memory state is
// always dropped, even when clearing the store fails: a local logout
// must not be blocked by a storage error.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = teamdesk.User{}
	s.authed = false
	s.mu.Unlock()

	return s.store.Clear()
}

// Token returns the current bearer token, empty when unauthenticated.
// It is read before every outgoing request; a logout racing an
// in-flight request leaves a best-effort staleness window, the remote
// service stays the authority on token validity.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) Current() (teamdesk.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.authed
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authed
}

func (s *Session) IsManager() bool {
	user, ok := s.Current()
	return ok && user.Role == teamdesk.RoleManager
}

func (s *Session) IsMember() bool {
	user, ok := s.Current()
	return ok && user.Role == teamdesk.RoleMember
}
