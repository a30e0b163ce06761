package response

import (
	"errors"

	autherror "github.com/Altraaa/creavibes-panel-api/internal/errors"
	"github.com/Altraaa/creavibes-panel-api/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// Envelope is the shape every endpoint returns. Errors carries a key-value
// map, e.g. {"server": "..."} for unexpected failures.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *fiber.Ctx, status int, message string, errs map[string]string) error {
	return c.Status(status).JSON(Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// ServiceError maps domain errors onto status codes; anything unrecognized
// is an internal failure whose detail lands in errors.server.
func ServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, autherror.ErrInvalidCredentials):
		return Error(c, fiber.StatusUnauthorized, constant.MsgInvalidCredentials, nil)
	case errors.Is(err, autherror.ErrAccountDisabled):
		return Error(c, fiber.StatusUnauthorized, constant.MsgAccountDisabled, nil)
	case errors.Is(err, autherror.ErrCurrentPasswordIncorrect):
		return Error(c, fiber.StatusUnauthorized, constant.MsgCurrentPasswordIncorrect, nil)
	case errors.Is(err, autherror.ErrUserNotFound):
		return Error(c, fiber.StatusNotFound, "User not found", nil)
	case errors.Is(err, autherror.ErrVolunteerNotFound):
		return Error(c, fiber.StatusNotFound, "Volunteer not found", nil)
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return Error(c, fiber.StatusUnprocessableEntity, "Email already in use", nil)
	default:
		return Error(c, fiber.StatusInternalServerError, fallback, map[string]string{
			"server": err.Error(),
		})
	}
}

// ValidationError is the 422 shape for malformed or incomplete input.
func ValidationError(c *fiber.Ctx, errs map[string]string) error {
	return Error(c, fiber.StatusUnprocessableEntity, "Validation failed", errs)
}
