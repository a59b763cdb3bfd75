package handler

import (
	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/fadilmartias/sustainability-judge/internal/usecase"
	"github.com/fadilmartias/sustainability-judge/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ListHandler struct {
	uc *usecase.ListUsecase
}

func NewListHandler(uc *usecase.ListUsecase) *ListHandler {
	return &ListHandler{uc: uc}
}

func (h *ListHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/cart", h.GetCart)
	app.Post("/cart/add", h.AddToCart)
	app.Delete("/cart/remove", h.RemoveFromCart)
	app.Delete("/cart/clear", h.ClearCart)

	app.Get("/favorites", h.GetFavorites)
	app.Post("/favorites/add", h.AddToFavorites)
	app.Delete("/favorites/remove", h.RemoveFromFavorites)
}

func (h *ListHandler) GetCart(c *fiber.Ctx) error {
	items, err := h.uc.GetCart(c.UserContext(), queryUserID(c))
	if err != nil {
		return failure(c, "failed to get cart", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Fields: fiber.Map{"cart_items": items},
	})
}

func (h *ListHandler) AddToCart(c *fiber.Ctx) error {
	var req dto.ListAddRequest
	if err := parseBody(c, &req); err != nil {
		return failure(c, "", err)
	}
	if err := h.uc.AddToCart(c.UserContext(), userIDOrDefault(req.UserID), req.FoodItem); err != nil {
		return failure(c, "failed to add item to cart", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Item added to cart"})
}

func (h *ListHandler) RemoveFromCart(c *fiber.Ctx) error {
	var req dto.ListRemoveRequest
	if err := parseBody(c, &req); err != nil {
		return failure(c, "", err)
	}
	if err := h.uc.RemoveFromCart(c.UserContext(), userIDOrDefault(req.UserID), req.FoodID); err != nil {
		return failure(c, "failed to remove item from cart", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Item removed from cart"})
}

func (h *ListHandler) ClearCart(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := parseBody(c, &req); err != nil {
		return failure(c, "", err)
	}
	userID := req.UserID
	if userID == "" {
		userID = c.Query("user_id")
	}
	if err := h.uc.ClearCart(c.UserContext(), userIDOrDefault(userID)); err != nil {
		return failure(c, "failed to clear cart", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Cart cleared"})
}

func (h *ListHandler) GetFavorites(c *fiber.Ctx) error {
	items, err := h.uc.GetFavorites(c.UserContext(), queryUserID(c))
	if err != nil {
		return failure(c, "failed to get favorites", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Fields: fiber.Map{"favorites": items},
	})
}

func (h *ListHandler) AddToFavorites(c *fiber.Ctx) error {
	var req dto.ListAddRequest
	if err := parseBody(c, &req); err != nil {
		return failure(c, "", err)
	}
	added, err := h.uc.AddToFavorites(c.UserContext(), userIDOrDefault(req.UserID), req.FoodItem)
	if err != nil {
		return failure(c, "failed to add item to favorites", err)
	}
	message := "Item added to favorites"
	if !added {
		message = "Item already in favorites"
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: message})
}

func (h *ListHandler) RemoveFromFavorites(c *fiber.Ctx) error {
	var req dto.ListRemoveRequest
	if err := parseBody(c, &req); err != nil {
		return failure(c, "", err)
	}
	if err := h.uc.RemoveFromFavorites(c.UserContext(), userIDOrDefault(req.UserID), req.FoodID); err != nil {
		return failure(c, "failed to remove item from favorites", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Item removed from favorites"})
}
