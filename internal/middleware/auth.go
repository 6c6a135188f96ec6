package middleware

import (
	"github.com/akl-githu/platform-tracker/internal/config"
	"github.com/akl-githu/platform-tracker/internal/session"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// SessionRequired verifies the signed session cookie. Missing or invalid
// sessions are redirected to the login page, matching the legacy
// behavior for both page and API routes.
func SessionRequired(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.SessionSecret)},
		TokenLookup: "cookie:" + session.CookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Redirect("/login", fiber.StatusFound)
		},
	})
}
