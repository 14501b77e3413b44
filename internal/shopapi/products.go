package shopapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/talkincode/clothesstore/internal/catalog"
	"github.com/talkincode/clothesstore/internal/domain"
	"github.com/talkincode/clothesstore/internal/webserver"
)

// ProductService is the catalog capability the handlers need
type ProductService interface {
	GetMostSearched(ctx context.Context) ([]domain.Product, error)
	SearchByName(ctx context.Context, name string, page, limit int) ([]domain.Product, int64, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	CreateProduct(ctx context.Context, cmd catalog.ProductCommand) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, cmd catalog.ProductCommand) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	ListActive(ctx context.Context) ([]domain.Product, error)
}

type productPayload struct {
	Name            string          `json:"name"`
	ListPrice       decimal.Decimal `json:"list_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// operationStatus names a completed maintenance operation
type operationStatus struct {
	Operation string `json:"operation"`
	Status    string `json:"status"`
}

// productCSVRow is the catalog export row shape
type productCSVRow struct {
	ProductID       string `csv:"product_id"`
	Name            string `csv:"name"`
	ListPrice       string `csv:"list_price"`
	DiscountPercent string `csv:"discount_percent"`
	SalePrice       string `csv:"sale_price"`
	SearchCount     int64  `csv:"search_count"`
}

// ProductHandler serves the product catalog endpoints
type ProductHandler struct {
	products ProductService
}

// NewProductHandler creates a product handler
func NewProductHandler(products ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// RegisterRoutes registers the product endpoints
func (h *ProductHandler) RegisterRoutes() {
	webserver.ApiGET("/products/most-searched", h.getMostSearched)
	webserver.ApiGET("/products/export", h.exportProducts)
	webserver.ApiGET("/products", h.searchProducts)
	webserver.ApiGET("/products/:id", h.getProduct)
	webserver.ApiPOST("/products", h.createProduct)
	webserver.ApiPUT("/products/:id", h.updateProduct)
	webserver.ApiDELETE("/products/:id", h.deleteProduct)
}

func (h *ProductHandler) getMostSearched(c echo.Context) error {
	products, err := h.products.GetMostSearched(c.Request().Context())
	if err != nil {
		return failService(c, err)
	}
	return ok(c, products)
}

func (h *ProductHandler) searchProducts(c echo.Context) error {
	page, limit := parsePagination(c)
	products, total, err := h.products.SearchByName(c.Request().Context(), c.QueryParam("name"), page, limit)
	if err != nil {
		return failService(c, err)
	}
	return paged(c, products, total, page, limit)
}

func (h *ProductHandler) getProduct(c echo.Context) error {
	product, err := h.products.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failService(c, err)
	}
	return ok(c, product)
}

// validatePayload normalizes the payload and returns a rejection message,
// empty when the payload is acceptable
func validatePayload(payload *productPayload) string {
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return "Name is required"
	}
	if payload.ListPrice.IsNegative() {
		return "List price must be >= 0"
	}
	if payload.DiscountPercent.IsNegative() || payload.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return "Discount percent must be between 0 and 100"
	}
	return ""
}

func (h *ProductHandler) createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if msg := validatePayload(&payload); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	product, err := h.products.CreateProduct(c.Request().Context(), catalog.ProductCommand{
		Name:            payload.Name,
		ListPrice:       payload.ListPrice,
		DiscountPercent: payload.DiscountPercent,
	})
	if err != nil {
		return failService(c, err)
	}
	return ok(c, product)
}

func (h *ProductHandler) updateProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if msg := validatePayload(&payload); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	product, err := h.products.UpdateProduct(c.Request().Context(), c.Param("id"), catalog.ProductCommand{
		Name:            payload.Name,
		ListPrice:       payload.ListPrice,
		DiscountPercent: payload.DiscountPercent,
	})
	if err != nil {
		return failService(c, err)
	}
	return ok(c, product)
}

func (h *ProductHandler) deleteProduct(c echo.Context) error {
	if err := h.products.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return failService(c, err)
	}
	return ok(c, operationStatus{Operation: "DELETE", Status: "SUCCESS"})
}

func (h *ProductHandler) exportProducts(c echo.Context) error {
	products, err := h.products.ListActive(c.Request().Context())
	if err != nil {
		return failService(c, err)
	}

	rows := make([]productCSVRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productCSVRow{
			ProductID:       p.ProductID,
			Name:            p.Name,
			ListPrice:       p.ListPrice.StringFixed(2),
			DiscountPercent: p.DiscountPercent.String(),
			SalePrice:       p.SalePrice.StringFixed(2),
			SearchCount:     p.SearchCount,
		})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return gocsv.Marshal(&rows, c.Response())
}
