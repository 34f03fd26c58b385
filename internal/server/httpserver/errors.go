package httpserver

import (
	"errors"

	"github.com/dmitrijs2005/staffview/internal/common"
	"github.com/dmitrijs2005/staffview/internal/logging"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func statusFor(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.Is(err, common.ErrorValidation):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrInvalidHash):
		return fiber.StatusUnauthorized, "invalid request hash"
	case errors.Is(err, common.ErrorUnauthorized):
		return fiber.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return fiber.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, common.ErrorNotFound):
		return fiber.StatusNotFound, "not found"
	default:
		return fiber.StatusInternalServerError, "internal error"
	}
}

func errorHandler(log logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, msg := statusFor(err)
		if code >= fiber.StatusInternalServerError {
			log.Error(c.UserContext(), "request failed", "path", c.Path(), "error", err)
		}
		return c.Status(code).JSON(ErrorResponse{Code: code, Message: msg})
	}
}
