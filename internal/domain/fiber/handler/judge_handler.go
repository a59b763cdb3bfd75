package handler

import (
	"time"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/fadilmartias/sustainability-judge/internal/middleware"
	"github.com/fadilmartias/sustainability-judge/internal/usecase"
	"github.com/fadilmartias/sustainability-judge/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JudgeHandler struct {
	uc *usecase.JudgeUsecase
}

func NewJudgeHandler(uc *usecase.JudgeUsecase) *JudgeHandler {
	return &JudgeHandler{uc: uc}
}

func (h *JudgeHandler) RegisterRoutes(app fiber.Router) {
	app.Post("/judge", middleware.RateLimiter(10, 1*time.Minute), h.Judge)
}

func (h *JudgeHandler) Judge(c *fiber.Ctx) error {
	var req dto.JudgeRequest
	if err := parseBody(c, &req); err != nil {
		return failure(c, "", err)
	}

	judgment, err := h.uc.EvaluateFood(c.UserContext(), userIDOrDefault(req.UserID), req.FoodQuery)
	if err != nil {
		return failure(c, "failed to evaluate food", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Fields: fiber.Map{"judgment": judgment},
	})
}
