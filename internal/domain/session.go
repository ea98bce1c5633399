package domain

import "time"

// SessionAuthenticatedKey is the session flag set by a successful login.
const SessionAuthenticatedKey = "authenticated"

// Session holds the per-client flags carried by the session cookie.
type Session struct {
	flags   map[string]bool
	cleared bool
}

// NewSession returns a session holding a copy of flags.
func NewSession(flags map[string]bool) *Session {
	s := &Session{flags: make(map[string]bool, len(flags))}
	for k, v := range flags {
		s.flags[k] = v
	}
	return s
}

// Flag returns the flag value and whether it is present.
func (s *Session) Flag(key string) (value, ok bool) {
	value, ok = s.flags[key]
	return value, ok
}

// SetFlag sets a flag.
func (s *Session) SetFlag(key string, value bool) {
	s.flags[key] = value
	s.cleared = false
}

// Clear removes every flag. Saving a cleared session expires the cookie.
func (s *Session) Clear() {
	s.flags = make(map[string]bool)
	s.cleared = true
}

// Cleared reports whether Clear was called after the last SetFlag.
func (s *Session) Cleared() bool {
	return s.cleared
}

// Flags returns a copy of the flags.
func (s *Session) Flags() map[string]bool {
	out := make(map[string]bool, len(s.flags))
	for k, v := range s.flags {
		out[k] = v
	}
	return out
}

// Authenticated reports whether the authenticated flag is present and true.
func (s *Session) Authenticated() bool {
	v, ok := s.Flag(SessionAuthenticatedKey)
	return ok && v
}

// SessionCodec turns a session into an opaque signed token and back.
type SessionCodec interface {
	Encode(s *Session) (token string, expiresAt time.Time, err error)
	// Decode returns ErrInvalidSession for a token that is malformed, forged or expired.
	Decode(token string) (*Session, error)
}
