package handler

import (
	"github.com/fadilmartias/sustainability-judge/internal/usecase"
	"github.com/fadilmartias/sustainability-judge/internal/util"
	"github.com/gofiber/fiber/v2"
)

type SummaryHandler struct {
	summary *usecase.SummaryUsecase
	lists   *usecase.ListUsecase
}

func NewSummaryHandler(summary *usecase.SummaryUsecase, lists *usecase.ListUsecase) *SummaryHandler {
	return &SummaryHandler{summary: summary, lists: lists}
}

func (h *SummaryHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/summary", h.Summary)
	app.Get("/history", h.History)
	app.Get("/stats", h.Stats)
}

func (h *SummaryHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.summary.Summary(c.UserContext(), queryUserID(c))
	if err != nil {
		return failure(c, "failed to generate summary", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Fields: fiber.Map{"summary": summary},
	})
}

func (h *SummaryHandler) History(c *fiber.Ctx) error {
	items, pagination, err := h.lists.History(c.UserContext(), queryUserID(c), c.QueryInt("page", 1), c.QueryInt("page_size", 0))
	if err != nil {
		return failure(c, "failed to get history", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Fields:     fiber.Map{"history": items},
		Pagination: pagination,
	})
}

func (h *SummaryHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.lists.Stats(c.UserContext(), queryUserID(c))
	if err != nil {
		return failure(c, "failed to get stats", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Fields: fiber.Map{"stats": stats},
	})
}
