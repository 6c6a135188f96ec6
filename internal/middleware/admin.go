package middleware

import (
	"github.com/akl-githu/platform-tracker/internal/session"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired redirects non-admin sessions to the dashboard. It must
// run after SessionRequired so that an unauthenticated request hits the
// login redirect first, never the dashboard one.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := session.FromCtx(c)
		if err != nil || !sess.IsAdmin() {
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		return c.Next()
	}
}
