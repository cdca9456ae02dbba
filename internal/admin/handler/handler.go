package handler

import (
	"context"
	"net/http"

	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/service"

	"github.com/labstack/echo/v4"
)

const headerUserID = "x-user-id"

type Handler struct {
	Service *service.Service
}

func NewHandler(s *service.Service) *Handler {
	return &Handler{Service: s}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, model.StatusResp{Status: "ok"})
}

func extractCallerID(c echo.Context) (string, error) {
	callerID := c.Request().Header.Get(headerUserID)
	if callerID == "" {
		return "", service.ErrUnauthorized
	}
	return callerID, nil
}

type validatable interface {
	Validate() error
}

// bindRequest binds path, query and body into req and validates it.
func bindRequest(c echo.Context, req validatable, bindMsg string) error {
	if err := c.Bind(req); err != nil {
		return &model.ErrorDetail{Code: "bad_request", Message: bindMsg}
	}
	return req.Validate()
}

func handleList[T any](c echo.Context, list func(context.Context, model.ListReq) (*model.ListResp[T], error)) error {
	var req model.ListReq
	if err := bindRequest(c, &req, "Invalid parameters"); err != nil {
		return errorJSON(c, err)
	}

	resp, err := list(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func handleGet[T any](c echo.Context, get func(context.Context, string) (*T, error)) error {
	doc, err := get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

func handleCreate[T, R any, PR interface {
	*R
	validatable
}](c echo.Context, create func(context.Context, string, R) (*T, error)) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req R
	if err := bindRequest(c, PR(&req), "Invalid request body"); err != nil {
		return errorJSON(c, err)
	}

	doc, err := create(c.Request().Context(), callerID, req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, doc)
}

func handleUpdate[T, R any, PR interface {
	*R
	validatable
}](c echo.Context, update func(context.Context, string, string, R) (*T, error)) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req R
	if err := bindRequest(c, PR(&req), "Invalid request body"); err != nil {
		return errorJSON(c, err)
	}

	doc, err := update(c.Request().Context(), callerID, c.Param("id"), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

func handleDelete(c echo.Context, remove func(context.Context, string, string) error) error {
	callerID, err := extractCallerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	id := c.Param("id")
	if err := remove(c.Request().Context(), callerID, id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, model.StatusResp{Status: "deleted", ID: id})
}
