package handlers

import (
	"errors"

	"github.com/akl-githu/platform-tracker/internal/dto"
	"github.com/akl-githu/platform-tracker/internal/services"
	"github.com/akl-githu/platform-tracker/internal/session"
	"github.com/gofiber/fiber/v2"
)

type UserAPIHandler struct {
	users *services.UserService
}

func NewUserAPIHandler(users *services.UserService) *UserAPIHandler {
	return &UserAPIHandler{users: users}
}

// Manage handles POST /api/users: a single action-tagged endpoint for
// add, update and delete, admin only.
func (h *UserAPIHandler) Manage(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	var req dto.UserActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Invalid request body"))
	}

	switch req.Action {
	case "add":
		if err := h.users.Add(sess.Username, req.Username, req.Email, req.Password, req.Role); err != nil {
			if errors.Is(err, services.ErrUsernameTaken) {
				return c.JSON(dto.Error("Username already exists"))
			}
			return serverError(c)
		}
		return c.JSON(dto.Success("User added successfully"))

	case "update":
		if err := h.users.Update(sess.Username, req.ID, req.Username, req.Email, req.Password, req.Role); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.JSON(dto.Error("User not found"))
			}
			return serverError(c)
		}
		return c.JSON(dto.Success("User updated successfully"))

	case "delete":
		if err := h.users.Delete(sess.Username, req.ID); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.JSON(dto.Error("User not found"))
			}
			return serverError(c)
		}
		return c.JSON(dto.Success("User deleted successfully"))
	}

	return c.JSON(dto.Error("Invalid action"))
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal server error"))
}
