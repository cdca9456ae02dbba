package handler

import (
	"net/http"

	"bizadmin/internal/admin/model"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetUserRolesMe(c echo.Context) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	resp, err := h.Service.GetUserRolesMe(c.Request().Context(), callerID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserRoles(c echo.Context) error {
	var req model.GetUserRolesReq
	if err := bindRequest(c, &req, "Invalid parameters"); err != nil {
		return errorJSON(c, err)
	}

	roles, err := h.Service.GetUserRoles(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, roles)
}

func (h *Handler) PostUserRoles(c echo.Context) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req model.AssignUserRoleReq
	if err := bindRequest(c, &req, "Invalid request body"); err != nil {
		return errorJSON(c, err)
	}

	if err := h.Service.AssignUserRole(c.Request().Context(), callerID, req); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, model.StatusResp{Status: "assigned"})
}

func (h *Handler) DeleteUserRoles(c echo.Context) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req model.DeleteUserRoleReq
	if err := bindRequest(c, &req, "Invalid parameters"); err != nil {
		return errorJSON(c, err)
	}

	if err := h.Service.DeleteUserRole(c.Request().Context(), callerID, req); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, model.StatusResp{Status: "deleted"})
}

func (h *Handler) GetActivityLogs(c echo.Context) error {
	var req model.GetActivityLogsReq
	if err := bindRequest(c, &req, "Invalid parameters"); err != nil {
		return errorJSON(c, err)
	}

	resp, err := h.Service.GetActivityLogs(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
