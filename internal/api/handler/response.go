package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
)

// Envelope wraps the result of every write operation.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the body of every 4xx/5xx response.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Code    int                 `json:"code"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Envelope{Success: true, Message: message, Data: data})
}
