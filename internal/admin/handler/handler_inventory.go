package handler

import (
	"net/http"

	"bizadmin/internal/admin/model"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListSuppliers(c echo.Context) error {
	return handleList(c, h.Service.ListSuppliers)
}

func (h *Handler) GetSupplier(c echo.Context) error {
	return handleGet(c, h.Service.GetSupplier)
}

func (h *Handler) CreateSupplier(c echo.Context) error {
	return handleCreate(c, h.Service.CreateSupplier)
}

func (h *Handler) UpdateSupplier(c echo.Context) error {
	return handleUpdate(c, h.Service.UpdateSupplier)
}

func (h *Handler) DeleteSupplier(c echo.Context) error {
	return handleDelete(c, h.Service.DeleteSupplier)
}

func (h *Handler) ListProducts(c echo.Context) error {
	return handleList(c, h.Service.ListProducts)
}

func (h *Handler) GetProduct(c echo.Context) error {
	return handleGet(c, h.Service.GetProduct)
}

func (h *Handler) CreateProduct(c echo.Context) error {
	return handleCreate(c, h.Service.CreateProduct)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	return handleUpdate(c, h.Service.UpdateProduct)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	return handleDelete(c, h.Service.DeleteProduct)
}

func (h *Handler) ListReturns(c echo.Context) error {
	return handleList(c, h.Service.ListReturns)
}

func (h *Handler) GetReturn(c echo.Context) error {
	return handleGet(c, h.Service.GetReturn)
}

func (h *Handler) CreateReturn(c echo.Context) error {
	return handleCreate(c, h.Service.CreateReturn)
}

func (h *Handler) UpdateReturn(c echo.Context) error {
	return handleUpdate(c, h.Service.UpdateReturn)
}

func (h *Handler) DeleteReturn(c echo.Context) error {
	return handleDelete(c, h.Service.DeleteReturn)
}

func (h *Handler) AdjustStock(c echo.Context) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req model.StockAdjustReq
	if err := bindRequest(c, &req, "Invalid request body"); err != nil {
		return errorJSON(c, err)
	}

	product, err := h.Service.AdjustStock(c.Request().Context(), callerID, c.Param("id"), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *Handler) SetReturnStatus(c echo.Context) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req model.ReturnStatusReq
	if err := bindRequest(c, &req, "Invalid request body"); err != nil {
		return errorJSON(c, err)
	}

	ret, err := h.Service.SetReturnStatus(c.Request().Context(), callerID, c.Param("id"), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, ret)
}
