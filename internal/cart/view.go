package cart

import (
	"github.com/shopspring/decimal"

	"github.com/talkincode/clothesstore/internal/domain"
	"github.com/talkincode/clothesstore/internal/pricing"
)

// ProductView is the read model of one cart line's product
type ProductView struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	ListPrice       decimal.Decimal `json:"list_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	SalePrice       decimal.Decimal `json:"sale_price"`
}

// CartView is the derived, non-persisted read model of a cart. Totals are
// recomputed from the current lines on every read, nothing is cached.
type CartView struct {
	CartID        string          `json:"cart_id"`
	Products      []ProductView   `json:"products"`
	Total         decimal.Decimal `json:"total"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
}

// NewProductView converts a persisted product into its cart read model
func NewProductView(p domain.Product) ProductView {
	return ProductView{
		ProductID:       p.ProductID,
		Name:            p.Name,
		ListPrice:       p.ListPrice,
		DiscountPercent: p.DiscountPercent,
		SalePrice:       p.SalePrice,
	}
}

// NewCartView assembles the priced view of a cart from its line items
func NewCartView(c *domain.Cart) *CartView {
	products := make([]domain.Product, 0, len(c.Items))
	for _, item := range c.Items {
		products = append(products, item.Product)
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}

	return &CartView{
		CartID:        c.CartID,
		Products:      views,
		Total:         pricing.CartTotal(products),
		TotalDiscount: pricing.CartDiscountTotal(products),
	}
}
