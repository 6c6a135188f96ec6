package handlers

import (
	"github.com/akl-githu/platform-tracker/internal/storage"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	store *storage.UploadStore
}

func NewUploadHandler(store *storage.UploadStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Serve streams a stored artifact from the upload area. Anything that
// escapes the area or does not exist is a 404.
func (h *UploadHandler) Serve(c *fiber.Ctx) error {
	path, err := h.store.Resolve(c.Params("filename"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Not found")
	}
	return c.SendFile(path)
}
