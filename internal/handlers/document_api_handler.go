package handlers

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/akl-githu/platform-tracker/internal/dto"
	"github.com/akl-githu/platform-tracker/internal/services"
	"github.com/akl-githu/platform-tracker/internal/session"
	"github.com/gofiber/fiber/v2"
)

type DocumentAPIHandler struct {
	docs *services.DocumentService
}

func NewDocumentAPIHandler(docs *services.DocumentService) *DocumentAPIHandler {
	return &DocumentAPIHandler{docs: docs}
}

// Manage handles POST /api/documents. The request shape is selected by
// content type, not sniffed: multipart form data carries add and update
// (with the optional doc_file part), a JSON body carries delete.
func (h *DocumentAPIHandler) Manage(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return h.upsert(c, sess)
	}
	return h.delete(c, sess)
}

func (h *DocumentAPIHandler) upsert(c *fiber.Ctx, sess *session.Session) error {
	fields := services.DocumentFields{
		PlatformName: c.FormValue("platform_name"),
		DocType:      c.FormValue("doc_type"),
		DocName:      c.FormValue("doc_name"),
		Version:      c.FormValue("version"),
		Comments:     c.FormValue("comments"),
	}

	var (
		filename string
		content  io.Reader
	)
	if fh, err := c.FormFile("doc_file"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return c.JSON(dto.Error("Failed to read uploaded file"))
		}
		defer f.Close()
		filename = fh.Filename
		content = f
	}

	switch c.FormValue("action") {
	case "add":
		if _, err := h.docs.Add(sess.Username, fields, filename, content); err != nil {
			if errors.Is(err, services.ErrMissingFile) {
				return c.JSON(dto.Error("Document file is required"))
			}
			return serverError(c)
		}
		return c.JSON(dto.Success("Document added successfully"))

	case "update":
		id, err := strconv.ParseUint(c.FormValue("id"), 10, 32)
		if err != nil {
			return c.JSON(dto.Error("Invalid document ID"))
		}
		if err := h.docs.Update(sess.Username, uint(id), fields, filename, content); err != nil {
			if errors.Is(err, services.ErrDocumentNotFound) {
				return c.JSON(dto.Error("Document not found"))
			}
			return serverError(c)
		}
		return c.JSON(dto.Success("Document updated successfully"))
	}

	return c.JSON(dto.Error("Invalid action"))
}

func (h *DocumentAPIHandler) delete(c *fiber.Ctx, sess *session.Session) error {
	var req dto.DocumentDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Invalid request body"))
	}

	if req.Action != "delete" {
		return c.JSON(dto.Error("Invalid action"))
	}

	if err := h.docs.Delete(sess.Username, req.ID); err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return c.JSON(dto.Error("Document not found"))
		}
		return serverError(c)
	}
	return c.JSON(dto.Success("Document deleted successfully"))
}

// ListByPlatform handles GET /api/documents/:platform_name.
func (h *DocumentAPIHandler) ListByPlatform(c *fiber.Ctx) error {
	docs, err := h.docs.ListByPlatform(c.Params("platform_name"))
	if err != nil {
		return serverError(c)
	}
	return c.JSON(docs)
}
