// Package pricing holds the pure price arithmetic shared by the catalog
// and cart services. All functions are deterministic and side-effect free.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/talkincode/clothesstore/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// SalePrice applies a percentage discount to a list price and rounds to
// currency precision. The result is clamped at zero, a discount above 100
// never yields a negative price.
func SalePrice(listPrice, discountPercent decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(discountPercent.Div(hundred))
	price := listPrice.Mul(factor).Round(2)
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// DiscountAmount is the absolute saving on one product.
func DiscountAmount(listPrice, salePrice decimal.Decimal) decimal.Decimal {
	return listPrice.Sub(salePrice)
}

// CartTotal folds the sale prices of all products in a cart.
// An empty cart totals zero.
func CartTotal(products []domain.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.SalePrice)
	}
	return total
}

// CartDiscountTotal folds the per-product savings of all products in a cart.
// An empty cart totals zero.
func CartDiscountTotal(products []domain.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(DiscountAmount(p.ListPrice, p.SalePrice))
	}
	return total
}
