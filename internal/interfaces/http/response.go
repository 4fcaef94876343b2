package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/karibu-groceries/kgl-api/internal/application/dto"
	"github.com/karibu-groceries/kgl-api/internal/domain"
)

// parseBody decodes the JSON body into out. A value of the wrong JSON type
// becomes a ValidationError on that field.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return domain.NewValidationError(typeErr.Field, "type", typeErr.Type.String())
		}
		return &bodyError{cause: err}
	}
	return nil
}

// bodyError unreadable request body; counts as a validation failure.
type bodyError struct{ cause error }

func (e *bodyError) Error() string   { return "invalid request body: " + e.cause.Error() }
func (e *bodyError) Is(t error) bool { return t == domain.ErrValidation }
func (e *bodyError) Unwrap() error   { return e.cause }

// respondError maps err to a status and the {code, message, details} body.
// message is the caller's human-readable summary; details carries err itself.
func respondError(c *fiber.Ctx, message string, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrValidation):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidID):
		status, code = fiber.StatusBadRequest, "INVALID_ID"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrEmpty):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
		message = err.Error()
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
		message = err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
		message = err.Error()
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg(message)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message, Details: err.Error()})
}
