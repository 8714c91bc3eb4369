// Package views holds per-screen state containers on top of the
// workspace facade. Every view serializes its operations: a second
// call blocks until the first one is done instead of racing it. The
// snapshot fields stay readable while a request is in flight.
package views

import "sync"

type state struct {
	// opMu serializes operations, mu guards the snapshot fields.
	opMu sync.Mutex
	mu   sync.Mutex

	loading bool
	err     string
}

func (s *state) begin() {
	s.opMu.Lock()
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *state) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
	}
	s.mu.Unlock()
	s.opMu.Unlock()
}

func (s *state) snapshot() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading, s.err
}
