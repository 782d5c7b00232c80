package handlers

import (
	"errors"

	"github.com/3k2024/bodega-simple/internal/dto"
	"github.com/3k2024/bodega-simple/internal/importer"
	"github.com/3k2024/bodega-simple/internal/middleware"
	"github.com/3k2024/bodega-simple/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ImportHandler struct {
	importService *services.ImportService
}

func NewImportHandler(importService *services.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportFile accepts a multipart .xlsx upload under the "file" field.
func (h *ImportHandler) ImportFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing file upload",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not read upload",
		})
	}
	defer file.Close()

	summary, err := h.importService.ImportFile(fileHeader.Filename, file, middleware.GetUsername(c))
	if err != nil {
		return importError(c, err)
	}

	return c.JSON(summary)
}

func (h *ImportHandler) ImportRows(c *fiber.Ctx) error {
	var req dto.ManualImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if len(req.Rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No rows to import",
		})
	}

	summary, err := h.importService.ImportRows(req.Rows, middleware.GetUsername(c))
	if err != nil {
		return importError(c, err)
	}

	return c.JSON(summary)
}

// ListLogs is admin-only; the route applies AdminRequired.
func (h *ImportHandler) ListLogs(c *fiber.Ctx) error {
	logs, err := h.importService.ListLogs(c.QueryInt("limit", 50))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list import logs",
		})
	}
	return c.JSON(logs)
}

// importError maps the ingestion error taxonomy onto HTTP statuses. Every
// variant carries enough context to fix the source file and resubmit.
func importError(c *fiber.Ctx, err error) error {
	var format *importer.UnsupportedFormatError
	if errors.As(err, &format) {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{
			Error: true, Message: format.Error(),
		})
	}
	var missing *importer.MissingColumnsError
	if errors.As(err, &missing) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: missing.Error(),
		})
	}
	var row *importer.RowValidationError
	if errors.As(err, &row) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: row.Error(),
		})
	}
	var dup *importer.DuplicateGuideError
	if errors.As(err, &dup) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: dup.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Import failed",
	})
}
