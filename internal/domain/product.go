package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Deletion is logical: Active=false hides the
// product from lookup, search and most-searched without removing the row.
type Product struct {
	ID              int64           `gorm:"primaryKey" json:"id,string"`
	ProductID       string          `gorm:"uniqueIndex;size:64" json:"product_id"` // business id, immutable
	Name            string          `gorm:"index" json:"name"`
	ListPrice       decimal.Decimal `gorm:"type:decimal(12,2)" json:"list_price"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount_percent"` // 0-100
	SalePrice       decimal.Decimal `gorm:"type:decimal(12,2)" json:"sale_price"`      // recomputed on create/update
	SearchCount     int64           `gorm:"index" json:"search_count"`
	Active          bool            `gorm:"index" json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
