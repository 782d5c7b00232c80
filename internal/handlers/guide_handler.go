package handlers

import (
	"errors"

	"github.com/3k2024/bodega-simple/internal/dto"
	"github.com/3k2024/bodega-simple/internal/importer"
	"github.com/3k2024/bodega-simple/internal/services"
	"github.com/gofiber/fiber/v2"
)

type GuideHandler struct {
	guideService *services.GuideService
}

func NewGuideHandler(guideService *services.GuideService) *GuideHandler {
	return &GuideHandler{guideService: guideService}
}

func (h *GuideHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	guide, err := h.guideService.Create(&req)
	if err != nil {
		var dup *importer.DuplicateGuideError
		if errors.As(err, &dup) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: dup.Error(),
			})
		}
		var rowErr *importer.RowValidationError
		if errors.As(err, &rowErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: rowErr.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create guide",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(guide)
}

func (h *GuideHandler) List(c *fiber.Ctx) error {
	guides, err := h.guideService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list guides",
		})
	}
	return c.JSON(guides)
}

func (h *GuideHandler) Get(c *fiber.Ctx) error {
	guide, err := h.guideService.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrGuideNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Guide not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch guide",
		})
	}
	return c.JSON(guide)
}

func (h *GuideHandler) AddItem(c *fiber.Ctx) error {
	var req dto.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.guideService.AddItem(c.Params("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrGuideNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Guide not found",
			})
		}
		var rowErr *importer.RowValidationError
		if errors.As(err, &rowErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: rowErr.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to add item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *GuideHandler) Delete(c *fiber.Ctx) error {
	if err := h.guideService.Delete(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrGuideNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Guide not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete guide",
		})
	}
	return c.JSON(fiber.Map{"message": "Guide deleted"})
}

func (h *GuideHandler) Search(c *fiber.Ctx) error {
	var q dto.SearchQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid query parameters",
		})
	}

	guides, err := h.guideService.Search(&q)
	if err != nil {
		var rowErr *importer.RowValidationError
		if errors.As(err, &rowErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: rowErr.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Search failed",
		})
	}
	return c.JSON(guides)
}

// Reset wipes every guide and item. Admin-only route.
func (h *GuideHandler) Reset(c *fiber.Ctx) error {
	if err := h.guideService.Reset(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to reset store",
		})
	}
	return c.JSON(fiber.Map{"message": "Store emptied"})
}
