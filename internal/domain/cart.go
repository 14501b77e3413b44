package domain

import (
	"time"
)

// Cart is a shopping session. The record itself never changes after
// creation, the priced view is re-derived from its items on every read.
type Cart struct {
	ID        int64      `gorm:"primaryKey" json:"id,string"`
	CartID    string     `gorm:"uniqueIndex;size:32" json:"cart_id"` // generated short token
	Items     []CartItem `gorm:"foreignKey:CartRefID" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName Specify table name
func (Cart) TableName() string {
	return "carts"
}

// CartItem links one cart to one product. There is no quantity column,
// adding the same product twice creates two rows.
type CartItem struct {
	ID           int64     `gorm:"primaryKey" json:"id,string"`
	CartRefID    int64     `gorm:"index;not null" json:"cart_ref_id,string"`
	ProductRefID int64     `gorm:"index;not null" json:"product_ref_id,string"`
	Product      Product   `gorm:"foreignKey:ProductRefID" json:"product"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName Specify table name
func (CartItem) TableName() string {
	return "cart_items"
}
