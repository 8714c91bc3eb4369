package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry decodes the current token without verifying its signature and
// returns its expiration time. The token stays opaque as far as
// authentication goes, this is only used to warn the user before a
// request is bound to come back 401. ok is false when unauthenticated,
// when the token is not a JWT, or when it carries no expiry.
func (s *Session) Expiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// Expired reports whether the token carries an expiry in the past.
func (s *Session) Expired() bool {
	exp, ok := s.Expiry()
	return ok && exp.Before(time.Now())
}
