package handlers

import (
	"github.com/akl-githu/platform-tracker/internal/services"
	"github.com/akl-githu/platform-tracker/internal/session"
	"github.com/akl-githu/platform-tracker/internal/web"
	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the authenticated HTML views.
type PageHandler struct {
	platforms *services.PlatformService
	users     *services.UserService
	logs      *services.EventLogService
	docs      *services.DocumentService
	views     *web.Renderer
}

func NewPageHandler(
	platforms *services.PlatformService,
	users *services.UserService,
	logs *services.EventLogService,
	docs *services.DocumentService,
	views *web.Renderer,
) *PageHandler {
	return &PageHandler{platforms: platforms, users: users, logs: logs, docs: docs, views: views}
}

func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	platforms, err := h.platforms.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Database connection failed")
	}

	return h.views.Render(c, "dashboard.html", fiber.Map{
		"Session":   sess,
		"Platforms": platforms,
	})
}

func (h *PageHandler) UserManagement(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	users, err := h.users.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Database connection failed")
	}

	return h.views.Render(c, "user_management.html", fiber.Map{
		"Session": sess,
		"Users":   users,
	})
}

func (h *PageHandler) EventLogs(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	filterUsername := c.Query("username")
	filterTimestamp := c.Query("timestamp")

	logs, err := h.logs.List(filterUsername, filterTimestamp)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Database connection failed")
	}

	return h.views.Render(c, "event_logs.html", fiber.Map{
		"Session":         sess,
		"Logs":            logs,
		"FilterUsername":  filterUsername,
		"FilterTimestamp": filterTimestamp,
	})
}

func (h *PageHandler) PlatformTracker(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	docs, err := h.docs.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Database connection failed")
	}
	names, err := h.platforms.DistinctNames()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Database connection failed")
	}

	return h.views.Render(c, "platform_tracker.html", fiber.Map{
		"Session":       sess,
		"Documents":     docs,
		"PlatformNames": names,
	})
}
