package handler

import (
	"fmt"
	"net/http"

	"bizadmin/internal/admin/export"
	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/service"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetOverviewDashboard(c echo.Context) error {
	d, err := h.Service.OverviewDashboard(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) GetInventoryDashboard(c echo.Context) error {
	d, err := h.Service.InventoryDashboard(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) GetProjectDashboard(c echo.Context) error {
	d, err := h.Service.ProjectDashboard(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) GetHRDashboard(c echo.Context) error {
	d, err := h.Service.HRDashboard(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) GetPayrollDashboard(c echo.Context) error {
	var req model.PayrollDashboardReq
	if err := bindRequest(c, &req, "Invalid parameters"); err != nil {
		return errorJSON(c, err)
	}

	d, err := h.Service.PayrollDashboard(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) GetCustomerDashboard(c echo.Context) error {
	d, err := h.Service.CustomerDashboard(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ExportPayroll(c echo.Context) error {
	var req model.PayrollDashboardReq
	if err := bindRequest(c, &req, "Invalid parameters"); err != nil {
		return errorJSON(c, err)
	}

	report, err := h.Service.ExportPayroll(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return sendReport(c, report)
}

func (h *Handler) ExportInventory(c echo.Context) error {
	report, err := h.Service.ExportInventory(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return sendReport(c, report)
}

func sendReport(c echo.Context, report *service.Report) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.FileName))
	return c.Blob(http.StatusOK, export.ContentType, report.Data.Bytes())
}
