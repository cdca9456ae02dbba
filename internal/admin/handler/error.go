package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/service"

	"github.com/labstack/echo/v4"
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, model.ErrorResponse) {
	var code string
	var msg string
	var status int

	var detail *model.ErrorDetail
	switch {
	case errors.As(err, &detail):
		status = http.StatusBadRequest
		code = detail.Code
		msg = detail.Message
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = "Unauthorized"
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		code = "forbidden"
		msg = "Permission denied"
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
		msg = "Resource not found"
	case errors.Is(err, service.ErrInsufficientStock):
		status = http.StatusConflict
		code = "insufficient_stock"
		msg = "Stock cannot go below zero"
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		code = "conflict"
		msg = "Resource already exists or is in a conflicting state"
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Invalid input"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = "Internal server error"
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

// errorJSON writes the error response, tagging it with the request id.
// Unexpected errors are logged with their cause; the client only sees a generic message.
func errorJSON(c echo.Context, err error) error {
	status, body := httpError(err)
	body.Error.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"request_id", body.Error.RequestID,
			"error", err,
		)
	}
	return c.JSON(status, body)
}
