package client

// Decision tells a route guard what to do with the current navigation.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToVerify
	RedirectToHome
	Wait
)

// RequireAuthenticated guards routes that need a verified, logged-in user.
func RequireAuthenticated(s *Session) Decision {
	switch s.State() {
	case StateUninitialized, StateChecking:
		return Wait
	case StateAuthenticated:
		if u := s.User(); u != nil && !u.IsVerified {
			return RedirectToVerify
		}
		return Allow
	default:
		return RedirectToLogin
	}
}

// RedirectIfAuthenticated guards login/signup pages: a verified, logged-in
// user has no business there.
func RedirectIfAuthenticated(s *Session) Decision {
	switch s.State() {
	case StateUninitialized, StateChecking:
		return Wait
	case StateAuthenticated:
		if u := s.User(); u != nil && u.IsVerified {
			return RedirectToHome
		}
		return Allow
	default:
		return Allow
	}
}
