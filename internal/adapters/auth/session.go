package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"teamcalendar/internal/domain"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Flags map[string]bool `json:"flags"`
}

type jwtSessionCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTSessionCodec returns a SessionCodec that signs session flags into HS256 JWTs valid for ttl.
func NewJWTSessionCodec(secret string, ttl time.Duration) domain.SessionCodec {
	return &jwtSessionCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *jwtSessionCodec) Encode(s *domain.Session) (string, time.Time, error) {
	now := c.now()
	expiresAt := now.Add(c.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Flags: s.Flags(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return tokenString, expiresAt, nil
}

func (c *jwtSessionCodec) Decode(token string) (*domain.Session, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: expired", domain.ErrInvalidSession)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSession, err)
	}
	return domain.NewSession(claims.Flags), nil
}
