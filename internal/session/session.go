// Package session maps the signed session cookie onto a typed identity.
// The cookie value is an HS256 JWT; the auth middleware verifies it and
// leaves the parsed token in c.Locals("user").
package session

import (
	"errors"
	"strconv"
	"time"

	"github.com/akl-githu/platform-tracker/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie, mirroring the browser-session model
// of the legacy application.
const CookieName = "session"

var ErrNoSession = errors.New("no session in request context")

// Session is the per-request identity extracted from a verified cookie.
type Session struct {
	UserID   uint
	Username string
	Role     string
}

func (s *Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

// NewToken issues a signed session token for the given user.
func NewToken(user *models.User, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"role":     user.Role,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// FromCtx reads the session left behind by the auth middleware.
func FromCtx(c *fiber.Ctx) (*Session, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, ErrNoSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoSession
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, ErrNoSession
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &Session{
		UserID:   uint(id),
		Username: username,
		Role:     role,
	}, nil
}
