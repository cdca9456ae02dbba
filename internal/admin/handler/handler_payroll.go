package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListSalaries(c echo.Context) error {
	return handleList(c, h.Service.ListSalaries)
}

func (h *Handler) GetSalary(c echo.Context) error {
	return handleGet(c, h.Service.GetSalary)
}

func (h *Handler) CreateSalary(c echo.Context) error {
	return handleCreate(c, h.Service.CreateSalary)
}

func (h *Handler) UpdateSalary(c echo.Context) error {
	return handleUpdate(c, h.Service.UpdateSalary)
}

func (h *Handler) DeleteSalary(c echo.Context) error {
	return handleDelete(c, h.Service.DeleteSalary)
}

func (h *Handler) PaySalary(c echo.Context) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	rec, err := h.Service.PaySalary(c.Request().Context(), callerID, c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}
