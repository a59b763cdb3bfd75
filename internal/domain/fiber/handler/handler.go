package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/sustainability-judge/internal/config"
	"github.com/fadilmartias/sustainability-judge/internal/usecase"
	"github.com/fadilmartias/sustainability-judge/internal/util"
	"github.com/gofiber/fiber/v2"
)

// requiredFields maps validation sentinels to the request field at fault.
var requiredFields = map[error]string{
	usecase.ErrFoodQueryRequired: "food_query",
	usecase.ErrFoodItemRequired:  "food_item",
	usecase.ErrFoodIDRequired:    "food_id",
}

func userIDOrDefault(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return config.DefaultUserID
}

func queryUserID(c *fiber.Ctx) string {
	return userIDOrDefault(c.Query("user_id"))
}

var errInvalidBody = errors.New("invalid request body")

// parseBody accepts an empty body so that requests relying on defaults
// still go through.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

// failure renders validation sentinels as 400 and everything else as 500
// with the given message.
func failure(c *fiber.Ctx, message string, err error) error {
	if errors.Is(err, errInvalidBody) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: errInvalidBody.Error(),
		}, err)
	}
	for sentinel, field := range requiredFields {
		if errors.Is(err, sentinel) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			}, util.NewFormError(err.Error(), map[string]string{field: "required"}))
		}
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: message}, err)
}
