package handler

import (
	"net/http"

	"bizadmin/internal/admin/model"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListProjects(c echo.Context) error {
	return handleList(c, h.Service.ListProjects)
}

func (h *Handler) GetProject(c echo.Context) error {
	return handleGet(c, h.Service.GetProject)
}

func (h *Handler) CreateProject(c echo.Context) error {
	return handleCreate(c, h.Service.CreateProject)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	return handleUpdate(c, h.Service.UpdateProject)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	return handleDelete(c, h.Service.DeleteProject)
}

func (h *Handler) ListCustomers(c echo.Context) error {
	return handleList(c, h.Service.ListCustomers)
}

func (h *Handler) GetCustomer(c echo.Context) error {
	return handleGet(c, h.Service.GetCustomer)
}

func (h *Handler) CreateCustomer(c echo.Context) error {
	return handleCreate(c, h.Service.CreateCustomer)
}

func (h *Handler) UpdateCustomer(c echo.Context) error {
	return handleUpdate(c, h.Service.UpdateCustomer)
}

func (h *Handler) DeleteCustomer(c echo.Context) error {
	return handleDelete(c, h.Service.DeleteCustomer)
}

func (h *Handler) AddMilestone(c echo.Context) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req model.MilestoneInput
	if err := bindRequest(c, &req, "Invalid request body"); err != nil {
		return errorJSON(c, err)
	}

	project, err := h.Service.AddMilestone(c.Request().Context(), callerID, c.Param("id"), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) UpdateMilestone(c echo.Context) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req model.MilestoneUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid request body"},
		})
	}

	project, err := h.Service.SetMilestoneCompletion(c.Request().Context(), callerID, c.Param("id"), c.Param("milestoneId"), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, project)
}
