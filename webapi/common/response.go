// Package common holds response and form-binding helpers shared by the
// route packages.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/mfadel/papertrade/pkg/domain"
)

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidShares),
		errors.Is(err, domain.ErrMissingSymbol),
		errors.Is(err, domain.ErrInvalidSymbol),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrSymbolNotOwned),
		errors.Is(err, domain.ErrInsufficientShares),
		errors.Is(err, domain.ErrDuplicateUsername),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrQuoteUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorToMessage maps domain errors to the user-visible message shown on
// the error page. Provider internals never leak here.
func ErrorToMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidShares):
		return "invalid shares"
	case errors.Is(err, domain.ErrMissingSymbol):
		return "missing symbol"
	case errors.Is(err, domain.ErrInvalidSymbol):
		return "invalid symbol"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "can't afford"
	case errors.Is(err, domain.ErrSymbolNotOwned):
		return "symbol not owned"
	case errors.Is(err, domain.ErrInsufficientShares):
		return "too many shares"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid username and/or password"
	case errors.Is(err, domain.ErrDuplicateUsername):
		return "username already taken"
	case errors.Is(err, domain.ErrPasswordMismatch):
		return "passwords do not match"
	case errors.Is(err, domain.ErrQuoteUnavailable):
		return "quote service unavailable, try again"
	default:
		return "something went wrong"
	}
}

// RenderError renders the error page with the message for err and the
// mapped status code.
func RenderError(c *fiber.Ctx, err error) error {
	return RenderErrorMessage(c, ErrorToStatusCode(err), ErrorToMessage(err))
}

// RenderErrorMessage renders the error page with an explicit status and
// message.
func RenderErrorMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("apology", fiber.Map{
		"Message": message,
	})
}

var validate = validator.New()

// BindAndValidate parses the form body into T and validates it. On
// failure it renders the error page with a 400 and returns nil, so no
// handler touches persistent state with malformed input.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, RenderErrorMessage(
			c, fiber.StatusBadRequest, "invalid form input")
	}
	if err := validate.Struct(input); err != nil {
		return nil, RenderErrorMessage(
			c, fiber.StatusBadRequest, "missing or invalid form field")
	}
	return &input, nil
}
