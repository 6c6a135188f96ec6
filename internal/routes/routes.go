package routes

import (
	"time"

	"github.com/akl-githu/platform-tracker/internal/config"
	"github.com/akl-githu/platform-tracker/internal/handlers"
	"github.com/akl-githu/platform-tracker/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	pageHandler *handlers.PageHandler,
	userAPI *handlers.UserAPIHandler,
	documentAPI *handlers.DocumentAPIHandler,
	uploadHandler *handlers.UploadHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Login is the only unauthenticated surface; rate limit it per IP.
	loginLimiter := limiter.New(limiter.Config{
		Max:               30,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	app.Get("/", authHandler.LoginPage)
	app.Post("/", loginLimiter, authHandler.Login)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", loginLimiter, authHandler.Login)

	// Guard order matters: the session check runs before the admin
	// check, so an unauthenticated admin-only request is redirected to
	// login, not to the dashboard.
	protected := middleware.SessionRequired(cfg)
	admin := middleware.AdminRequired()

	app.Get("/logout", protected, authHandler.Logout)
	app.Get("/dashboard", protected, pageHandler.Dashboard)
	app.Get("/user_management", protected, admin, pageHandler.UserManagement)
	app.Get("/events_logs", protected, pageHandler.EventLogs)
	app.Get("/platform_tracker", protected, pageHandler.PlatformTracker)

	app.Get("/uploads/:filename", protected, uploadHandler.Serve)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)
	api.Post("/users", protected, admin, userAPI.Manage)
	api.Post("/documents", protected, documentAPI.Manage)
	api.Get("/documents/:platform_name", protected, documentAPI.ListByPlatform)
}
