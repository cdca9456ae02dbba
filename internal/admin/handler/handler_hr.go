package handler

import (
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListEmployees(c echo.Context) error {
	return handleList(c, h.Service.ListEmployees)
}

func (h *Handler) GetEmployee(c echo.Context) error {
	return handleGet(c, h.Service.GetEmployee)
}

func (h *Handler) CreateEmployee(c echo.Context) error {
	return handleCreate(c, h.Service.CreateEmployee)
}

func (h *Handler) UpdateEmployee(c echo.Context) error {
	return handleUpdate(c, h.Service.UpdateEmployee)
}

func (h *Handler) DeleteEmployee(c echo.Context) error {
	return handleDelete(c, h.Service.DeleteEmployee)
}

func (h *Handler) ListDepartments(c echo.Context) error {
	return handleList(c, h.Service.ListDepartments)
}

func (h *Handler) GetDepartment(c echo.Context) error {
	return handleGet(c, h.Service.GetDepartment)
}

func (h *Handler) CreateDepartment(c echo.Context) error {
	return handleCreate(c, h.Service.CreateDepartment)
}

func (h *Handler) UpdateDepartment(c echo.Context) error {
	return handleUpdate(c, h.Service.UpdateDepartment)
}

func (h *Handler) DeleteDepartment(c echo.Context) error {
	return handleDelete(c, h.Service.DeleteDepartment)
}

func (h *Handler) ListDocuments(c echo.Context) error {
	return handleList(c, h.Service.ListDocuments)
}

func (h *Handler) GetDocument(c echo.Context) error {
	return handleGet(c, h.Service.GetDocument)
}

func (h *Handler) CreateDocument(c echo.Context) error {
	return handleCreate(c, h.Service.CreateDocument)
}

func (h *Handler) UpdateDocument(c echo.Context) error {
	return handleUpdate(c, h.Service.UpdateDocument)
}

func (h *Handler) DeleteDocument(c echo.Context) error {
	return handleDelete(c, h.Service.DeleteDocument)
}
