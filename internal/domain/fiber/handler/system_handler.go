package handler

import (
	"github.com/fadilmartias/sustainability-judge/internal/config"
	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type SystemHandler struct {
	cfg *config.AppConfig
}

func NewSystemHandler(cfg *config.AppConfig) *SystemHandler {
	return &SystemHandler{cfg: cfg}
}

func (h *SystemHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.Health)
}

func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.StatusResponse{
		Status:  dto.StatusHealthy,
		Message: h.cfg.Name + " is running",
	})
}
