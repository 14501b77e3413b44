package shopapi

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/talkincode/clothesstore/internal/cart"
	"github.com/talkincode/clothesstore/internal/webserver"
)

// CartService is the cart capability the handlers need
type CartService interface {
	CreateCart(ctx context.Context) (*cart.CartView, error)
	AddProduct(ctx context.Context, cartID, productID string) (*cart.CartView, error)
	GetCart(ctx context.Context, cartID string) (*cart.CartView, error)
}

// CartHandler serves the shopping cart endpoints
type CartHandler struct {
	carts CartService
}

// NewCartHandler creates a cart handler
func NewCartHandler(carts CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// RegisterRoutes registers the cart endpoints
func (h *CartHandler) RegisterRoutes() {
	webserver.ApiPOST("/carts", h.createCart)
	webserver.ApiPOST("/carts/:cart_id/products/:product_id", h.addProduct)
	webserver.ApiGET("/carts/:cart_id", h.getCart)
}

func (h *CartHandler) createCart(c echo.Context) error {
	view, err := h.carts.CreateCart(c.Request().Context())
	if err != nil {
		return failService(c, err)
	}
	return ok(c, view)
}

func (h *CartHandler) addProduct(c echo.Context) error {
	view, err := h.carts.AddProduct(c.Request().Context(), c.Param("cart_id"), c.Param("product_id"))
	if err != nil {
		return failService(c, err)
	}
	return ok(c, view)
}

func (h *CartHandler) getCart(c echo.Context) error {
	view, err := h.carts.GetCart(c.Request().Context(), c.Param("cart_id"))
	if err != nil {
		return failService(c, err)
	}
	return ok(c, view)
}
