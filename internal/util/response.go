package util

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/fadilmartias/sustainability-judge/internal/config"
	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/fadilmartias/sustainability-judge/internal/response"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Fields     fiber.Map
	Pagination *response.Pagination
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, errors map[string]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  errors,
	}
}

// SuccessResponse writes {"status":"success", ...Fields}. The payload keys
// sit next to status, e.g. {"status":"success","cart_items":[...]}.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	body := fiber.Map{"status": dto.StatusSuccess}
	if params.Message != "" {
		body["message"] = params.Message
	}
	if params.Pagination != nil {
		body["pagination"] = params.Pagination
	}
	for k, v := range params.Fields {
		body[k] = v
	}
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(body)
}

// ErrorResponse writes {"status":"error","message":...}. Outside production
// the underlying error and a stack trace are included.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	resp := OrderedErrorResponse{
		Status:  dto.StatusError,
		Message: params.Message,
	}

	var formErr *FormError
	if len(errs) > 0 && errors.As(errs[0], &formErr) {
		resp.Details = formErr.Errors
	}
	if params.Details != nil {
		resp.Details = params.Details
	}

	if !config.LoadAppConfig().IsProduction() {
		if len(errs) > 0 && errs[0] != nil {
			resp.DevMessage = errs[0].Error()
			resp.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			resp.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			resp.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if params.Code == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(resp)
}

// FiberErrorHandler renders errors that escape handlers in the same envelope.
func FiberErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if message == "" {
		message = "Internal Server Error"
	}

	return ctx.Status(code).JSON(fiber.Map{"status": dto.StatusError, "message": message})
}
