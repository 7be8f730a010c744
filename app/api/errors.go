package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"aihub/resume"
	"aihub/types"
)

// ErrorHandler renders every failure as a well-formed {"error": ...} JSON
// object; a raw error trace never crosses the boundary.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if apiErr, ok := err.(Error); ok {
		return c.Status(apiErr.Code).JSON(apiErr)
	}
	if valErr, ok := err.(types.ValidationError); ok {
		return c.Status(valErr.Status).JSON(valErr)
	}

	apiErr := fromError(err)
	slog.Warn("request failed", "code", apiErr.Code, "error", apiErr.Message)
	return c.Status(apiErr.Code).JSON(apiErr)
}

// fromError maps extraction sentinel errors to client-facing status codes;
// anything unexpected is an internal error.
func fromError(err error) Error {
	switch {
	case errors.Is(err, resume.ErrUnsupportedFormat):
		return NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, resume.ErrExtractionEmpty):
		return NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	if fiberErr, ok := err.(*fiber.Error); ok {
		return NewError(fiberErr.Code, fiberErr.Message)
	}
	return NewError(fiber.StatusInternalServerError, err.Error())
}

type Error struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

// Error implements the error interface
func (e Error) Error() string {
	return e.Message
}

func NewError(code int, err string) Error {
	return Error{
		Code:    code,
		Message: err,
	}
}

func ErrBadRequest() Error {
	return Error{
		Code:    fiber.StatusBadRequest,
		Message: "invalid JSON request",
	}
}

func ErrNoFile() Error {
	return Error{
		Code:    fiber.StatusBadRequest,
		Message: "no file uploaded",
	}
}
