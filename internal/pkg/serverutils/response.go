package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
)

// Response is the common JSON envelope for every endpoint. Services return
// {data, error} pairs; the envelope lets the UI render inline messages
// without exception handling.
type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) Response {
	return Response{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// RespondError maps the service error taxonomy onto HTTP statuses.
func RespondError(ctx *fiber.Ctx, err error) error {
	var (
		validationErr *dto.ValidationError
		notFoundErr   *dto.NotFoundError
		conflictErr   *dto.ConflictError
		unauthErr     *dto.UnauthenticatedError
		upstreamErr   *dto.UpstreamError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Error()))
	case errors.As(err, &notFoundErr):
		return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, notFoundErr.Error()))
	case errors.As(err, &conflictErr):
		return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(fiber.StatusConflict, conflictErr.Error()))
	case errors.As(err, &unauthErr):
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, unauthErr.Error()))
	case errors.As(err, &upstreamErr):
		return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(fiber.StatusBadGateway, upstreamErr.Error()))
	case errors.As(err, &fiberErr):
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}

// ErrorHandlerMiddleware converts unhandled errors bubbling out of handlers
// into the common envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return RespondError(ctx, err)
	}
}
