// Package session carries the authenticated caller through a request.
package session

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const localsKey = "session"

var ErrNoSession = errors.New("no session in context")

// Session is the caller resolved from a verified bearer token. It lives for
// one request only.
type Session struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// FromToken builds a session from the claims of a verified token.
func FromToken(token *jwt.Token) (*Session, error) {
	if token == nil {
		return nil, errors.New("missing token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("missing sub claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid sub claim")
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return &Session{UserID: userID, Email: email, Role: role}, nil
}

// Set stores s on the request.
func Set(c *fiber.Ctx, s *Session) {
	c.Locals(localsKey, s)
}

// Get returns the session stored by the auth middleware.
func Get(c *fiber.Ctx) (*Session, error) {
	s, ok := c.Locals(localsKey).(*Session)
	if !ok || s == nil {
		return nil, ErrNoSession
	}
	return s, nil
}
