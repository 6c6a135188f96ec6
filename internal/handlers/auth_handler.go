package handlers

import (
	"errors"
	"time"

	"github.com/akl-githu/platform-tracker/internal/config"
	"github.com/akl-githu/platform-tracker/internal/services"
	"github.com/akl-githu/platform-tracker/internal/session"
	"github.com/akl-githu/platform-tracker/internal/web"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth  *services.AuthService
	cfg   *config.Config
	views *web.Renderer
}

func NewAuthHandler(auth *services.AuthService, cfg *config.Config, views *web.Renderer) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg, views: views}
}

// LoginPage handles GET / and GET /login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return h.views.Render(c, "login.html", fiber.Map{})
}

// Login handles the POST. A credential mismatch re-renders the login
// page with an inline error and HTTP 200; only a database failure is a
// server error.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	_, token, err := h.auth.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return h.views.Render(c, "login.html", fiber.Map{"Error": "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Database connection failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.SessionExpiry),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Logout clears the session cookie and records the logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := session.FromCtx(c); err == nil {
		h.auth.Logout(sess.Username)
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect("/login", fiber.StatusFound)
}
