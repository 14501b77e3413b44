package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/talkincode/clothesstore/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSalePrice(t *testing.T) {
	tests := []struct {
		name     string
		list     string
		discount string
		want     string
	}{
		{"no discount", "100", "0", "100"},
		{"twenty percent", "100", "20", "80"},
		{"full discount", "100", "100", "0"},
		{"rounds to currency precision", "9.99", "15", "8.49"},
		{"zero list price", "0", "50", "0"},
		{"fractional discount", "49.50", "10", "44.55"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SalePrice(dec(tt.list), dec(tt.discount))
			assert.True(t, dec(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestSalePriceNeverExceedsListPrice(t *testing.T) {
	lists := []string{"0", "0.01", "19.99", "100", "12345.67"}
	discounts := []string{"0", "1", "33.33", "50", "99.99", "100"}
	for _, l := range lists {
		for _, d := range discounts {
			sale := SalePrice(dec(l), dec(d))
			assert.True(t, sale.LessThanOrEqual(dec(l)), "sale %s exceeds list %s at discount %s", sale, l, d)
			assert.False(t, sale.IsNegative())
		}
	}
}

func product(list, discount string) domain.Product {
	l, d := dec(list), dec(discount)
	return domain.Product{
		ListPrice:       l,
		DiscountPercent: d,
		SalePrice:       SalePrice(l, d),
	}
}

func TestCartTotalsEmpty(t *testing.T) {
	assert.True(t, CartTotal(nil).IsZero())
	assert.True(t, CartDiscountTotal(nil).IsZero())
}

func TestCartTotals(t *testing.T) {
	products := []domain.Product{
		product("100", "20"),  // sale 80, saving 20
		product("50", "0"),    // sale 50, saving 0
		product("9.99", "15"), // sale 8.49, saving 1.50
	}
	assert.Equal(t, "138.49", CartTotal(products).StringFixed(2))
	assert.Equal(t, "21.50", CartDiscountTotal(products).StringFixed(2))
}

func TestDuplicateProductDoublesContribution(t *testing.T) {
	p := product("100", "20")
	single := CartTotal([]domain.Product{p})
	double := CartTotal([]domain.Product{p, p})
	assert.True(t, single.Mul(decimal.NewFromInt(2)).Equal(double))

	singleDiscount := CartDiscountTotal([]domain.Product{p})
	doubleDiscount := CartDiscountTotal([]domain.Product{p, p})
	assert.True(t, singleDiscount.Mul(decimal.NewFromInt(2)).Equal(doubleDiscount))
}
