package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/portfolio-site/portfolio-api/internal/api/handler"
	"github.com/portfolio-site/portfolio-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders {"success": false, "message", "code"[, "errors"]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(resp.Code)
			return
		}
		_ = c.JSON(resp.Code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) handler.ErrorResponse {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return handler.ErrorResponse{
			Message: "validation failed",
			Code:    http.StatusBadRequest,
			Errors:  ve.Fields,
		}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return handler.ErrorResponse{Message: fmt.Sprintf("%v", he.Message), Code: he.Code}
	}

	switch {
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrMessageNotFound),
		errors.Is(err, domain.ErrVisualizationNotFound),
		errors.Is(err, domain.ErrResumeNotFound):
		return handler.ErrorResponse{Message: err.Error(), Code: http.StatusNotFound}
	case errors.Is(err, domain.ErrRateLimited):
		return handler.ErrorResponse{Message: "too many messages, please try again later", Code: http.StatusTooManyRequests}
	case errors.Is(err, domain.ErrUnauthorized):
		return handler.ErrorResponse{Message: "unauthorized", Code: http.StatusUnauthorized}
	case errors.Is(err, domain.ErrForbidden):
		return handler.ErrorResponse{Message: "access forbidden", Code: http.StatusForbidden}
	case errors.Is(err, domain.ErrStorageUnavailable):
		return handler.ErrorResponse{Message: err.Error(), Code: http.StatusServiceUnavailable}
	case errors.Is(err, domain.ErrValidation):
		return handler.ErrorResponse{Message: err.Error(), Code: http.StatusBadRequest}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return handler.ErrorResponse{Message: "internal server error", Code: http.StatusInternalServerError}
}
