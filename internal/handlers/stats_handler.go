package handlers

import (
	"github.com/3k2024/bodega-simple/internal/dto"
	"github.com/3k2024/bodega-simple/internal/models"
	"github.com/3k2024/bodega-simple/internal/services"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) BySpecialty(c *fiber.Ctx) error {
	counts, err := h.statsService.BySpecialty()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute stats",
		})
	}
	return c.JSON(counts)
}

// Specialties returns the fixed enum, for populating entry forms.
func (h *StatsHandler) Specialties(c *fiber.Ctx) error {
	return c.JSON(models.AllSpecialties())
}
