package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

// errorEnvelope matches the uniform response shape used by all handlers.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the canonical envelope: {"success": false, "message": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (middleware rejections, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User Already Exists!"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusUnauthorized, "Unauthorized Access!"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found!"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found!"
	case errors.Is(err, domain.ErrBrandNotFound):
		return http.StatusNotFound, "Brand not found!"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found!"
	case errors.Is(err, domain.ErrNothingToUpdate):
		return http.StatusBadRequest, "No fields were updated. Please provide valid data."
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest, "Cart is empty. Cannot place order."
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, "Not enough quantity available."
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong!"
}
