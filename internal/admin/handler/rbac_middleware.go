package handler

import (
	"net/http"

	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/policy"

	"github.com/labstack/echo/v4"
)

// RBACMiddleware handles permission checking based on the embedded route policy
type RBACMiddleware struct {
	policyEngine *policy.Engine
	repo         policy.RoleChecker
}

func NewRBACMiddleware(engine *policy.Engine, repo policy.RoleChecker) *RBACMiddleware {
	return &RBACMiddleware{policyEngine: engine, repo: repo}
}

// Middleware returns the Echo middleware function.
// Routes missing from the policy are denied.
func (m *RBACMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route, ok := m.policyEngine.Route(c.Request().Method, c.Path())
			if !ok {
				return c.JSON(http.StatusForbidden, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "forbidden", Message: "No access policy is defined for this route"},
				})
			}

			callerID := c.Request().Header.Get(headerUserID)
			if callerID == "" {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthorized", Message: "x-user-id header is required"},
				})
			}

			allowed, err := m.policyEngine.CheckPermission(c.Request().Context(), m.repo, callerID, route.Permission)
			if err != nil {
				return errorJSON(c, err)
			}
			if !allowed {
				return c.JSON(http.StatusForbidden, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "forbidden", Message: "You do not have permission to perform this action"},
				})
			}

			return next(c)
		}
	}
}
