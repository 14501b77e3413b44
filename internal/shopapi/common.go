// Package shopapi exposes the REST surface of the store: product CRUD,
// name search, most-searched ranking and shopping carts. Handlers hold
// their services by constructor injection and translate the service
// error taxonomy into HTTP statuses.
package shopapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talkincode/clothesstore/internal/cart"
	"github.com/talkincode/clothesstore/internal/catalog"
)

// errorResult is the failure envelope
type errorResult struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

// pageResult wraps a paginated listing
type pageResult struct {
	Data     interface{} `json:"data"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, errorResult{Code: code, Message: message, Detail: detail})
}

func paged(c echo.Context, data interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, pageResult{Data: data, Total: total, Page: page, PageSize: pageSize})
}

// failService maps service errors onto the HTTP error surface
func failService(c echo.Context, err error) error {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, cart.ErrCartNotFound):
		return fail(c, http.StatusNotFound, "CART_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, catalog.ErrProductNameRequired):
		return fail(c, http.StatusBadRequest, "PRODUCT_NAME_REQUIRED", err.Error(), nil)
	default:
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "request failed", err.Error())
	}
}

// parsePagination reads zero-based page and limit query params with the
// historical defaults (page 0, limit 10)
func parsePagination(c echo.Context) (page, limit int) {
	page = 0
	limit = 10
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p >= 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 {
		limit = l
	}
	return page, limit
}
