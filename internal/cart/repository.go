package cart

import (
	"context"

	"gorm.io/gorm"

	"github.com/talkincode/clothesstore/internal/domain"
)

// CartRepository handles database operations for carts and their lines
type CartRepository interface {
	// Create inserts a new cart, a duplicate token surfaces as
	// gorm.ErrDuplicatedKey so callers can retry with a fresh one
	Create(ctx context.Context, cart *domain.Cart) error

	// GetByCartID retrieves a cart by token with its lines and products
	GetByCartID(ctx context.Context, cartID string) (*domain.Cart, error)

	// AddItem appends one line to a cart
	AddItem(ctx context.Context, item *domain.CartItem) error
}

// ProductFinder is the catalog capability the cart service depends on:
// resolve an active product by business id.
type ProductFinder interface {
	GetByProductID(ctx context.Context, productID string) (*domain.Product, error)
}

// GormCartRepository is the GORM implementation of CartRepository
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM-based cart repository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Create(ctx context.Context, cart *domain.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *GormCartRepository) GetByCartID(ctx context.Context, cartID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).
		Preload("Items.Product").
		Where("cart_id = ?", cartID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormCartRepository) AddItem(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
