package handler

import (
	"bizadmin/internal/admin/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or generates one, echoes it in the
// response and makes it available to the service layer for activity entries.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, reqID)

		req := c.Request()
		c.SetRequest(req.WithContext(service.WithRequestID(req.Context(), reqID)))
		return next(c)
	}
}
