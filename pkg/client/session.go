package client

import (
	"sync"

	"github.com/preaus007/life-care/pkg/auth"
)

// State is the lifecycle of the client-side session mirror.
type State int

const (
	// StateUninitialized: CheckAuth has not run yet.
	StateUninitialized State = iota
	// StateChecking: a session check is in flight.
	StateChecking
	// StateAuthenticated: the server confirmed an active session.
	StateAuthenticated
	// StateAnonymous: no active session.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "uninitialized"
	}
}

// Session is the explicit, injectable authentication-state object consumed
// by route guards. It replaces ambient global state: construct one, hand it
// to the Client, and read it wherever guarding decisions are made.
type Session struct {
	mu    sync.RWMutex
	state State
	user  *auth.PublicUser
	err   string
}

func NewSession() *Session {
	return &Session{state: StateUninitialized}
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the authenticated user, or nil when anonymous.
func (s *Session) User() *auth.PublicUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Err returns the last server failure message, suitable for inline display.
func (s *Session) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Session) setChecking() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateChecking
	s.err = ""
}

func (s *Session) setAuthenticated(u auth.PublicUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.user = &u
	s.err = ""
}

func (s *Session) setAnonymous(errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnonymous
	s.user = nil
	s.err = errMsg
}

// setError records a failure without dropping an established session
// (e.g. a failed signup attempt while logged out).
func (s *Session) setError(errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errMsg
	if s.state == StateChecking || s.state == StateUninitialized {
		s.state = StateAnonymous
	}
}
