package catalog

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/talkincode/clothesstore/internal/domain"
)

// ProductRepository handles database operations for catalog products.
// All read paths only consider active products, soft-deleted rows stay
// in the table but never surface.
type ProductRepository interface {
	// GetByProductID retrieves an active product by its business id
	GetByProductID(ctx context.Context, productID string) (*domain.Product, error)

	// FindByName retrieves active products whose name contains the given
	// text, with zero-based pagination, and the total match count
	FindByName(ctx context.Context, name string, page, limit int) ([]domain.Product, int64, error)

	// MostSearched retrieves the top active products by search counter
	MostSearched(ctx context.Context, limit int) ([]domain.Product, error)

	// ListActive retrieves every active product (catalog export)
	ListActive(ctx context.Context) ([]domain.Product, error)

	// Create inserts a new product
	Create(ctx context.Context, product *domain.Product) error

	// Update persists a modified product
	Update(ctx context.Context, product *domain.Product) error

	// SoftDelete flags an active product as inactive
	SoftDelete(ctx context.Context, productID string) error

	// IncrementSearchCount bumps the search counter of the given rows
	IncrementSearchCount(ctx context.Context, ids []int64) error
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM-based product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) GetByProductID(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Where("product_id = ? and active = ?", productID, true).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByName(ctx context.Context, name string, page, limit int) ([]domain.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Product{}).Where("active = ?", true)

	if strings.EqualFold(r.db.Name(), "postgres") {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	} else {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	err := query.
		Order("name ASC").
		Offset(page * limit).
		Limit(limit).
		Find(&products).Error
	return products, total, err
}

func (r *GormProductRepository) MostSearched(ctx context.Context, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("search_count DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *GormProductRepository) SoftDelete(ctx context.Context, productID string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("product_id = ? and active = ?", productID, true).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormProductRepository) IncrementSearchCount(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id IN ?", ids).
		Update("search_count", gorm.Expr("search_count + 1")).Error
}
