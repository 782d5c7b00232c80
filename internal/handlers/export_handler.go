package handlers

import (
	"bytes"

	"github.com/3k2024/bodega-simple/internal/dto"
	"github.com/3k2024/bodega-simple/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) Excel(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.exportService.Excel(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to render spreadsheet",
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=bodega.xlsx`)
	return c.Send(buf.Bytes())
}

func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.exportService.PDF(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to render PDF",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=bodega.pdf`)
	return c.Send(buf.Bytes())
}
