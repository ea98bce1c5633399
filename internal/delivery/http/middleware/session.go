package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"teamcalendar/internal/domain"
)

// SessionCookieName is the cookie that carries the signed session.
const SessionCookieName = "session"

// SessionStore loads and persists the per-client session.
type SessionStore interface {
	// Load never fails: a missing or untrusted cookie yields an empty session.
	Load(r *http.Request) *domain.Session
	Save(w http.ResponseWriter, s *domain.Session) error
}

// CookieSessionStore keeps the whole session inside a signed cookie.
type CookieSessionStore struct {
	codec  domain.SessionCodec
	secure bool
	logger *slog.Logger
}

func NewCookieSessionStore(codec domain.SessionCodec, secure bool, logger *slog.Logger) *CookieSessionStore {
	return &CookieSessionStore{
		codec:  codec,
		secure: secure,
		logger: logger,
	}
}

func (s *CookieSessionStore) Load(r *http.Request) *domain.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return domain.NewSession(nil)
	}
	session, err := s.codec.Decode(cookie.Value)
	if err != nil {
		s.logger.DebugContext(r.Context(), "ignoring session cookie", "path", r.URL.Path, "err", err)
		return domain.NewSession(nil)
	}
	return session
}

func (s *CookieSessionStore) Save(w http.ResponseWriter, session *domain.Session) error {
	if session.Cleared() {
		http.SetCookie(w, s.cookie("", time.Unix(0, 0), -1))
		return nil
	}
	token, expiresAt, err := s.codec.Encode(session)
	if err != nil {
		return err
	}
	http.SetCookie(w, s.cookie(token, expiresAt, int(time.Until(expiresAt).Seconds())))
	return nil
}

func (s *CookieSessionStore) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
