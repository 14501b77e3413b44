package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/talkincode/clothesstore/internal/domain"
	"github.com/talkincode/clothesstore/internal/pricing"
	"github.com/talkincode/clothesstore/pkg/common"
)

// TopicProductSearched carries the row ids matched by a name search,
// an async subscriber bumps their search counters.
const TopicProductSearched = "catalog.product.searched"

// MostSearchedLimit caps the most-searched listing
const MostSearchedLimit = 5

var (
	ErrProductNotFound     = errors.New("product does not exist")
	ErrProductNameRequired = errors.New("product name is required")
)

// ProductCommand is the write payload for create and update operations
type ProductCommand struct {
	Name            string
	ListPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
}

// ProductService orchestrates catalog CRUD, name search and the
// most-searched ranking
type ProductService struct {
	repo ProductRepository
	bus  EventBus.Bus
}

// NewProductService creates the catalog service and wires the async
// search-counter subscriber on the shared event bus
func NewProductService(repo ProductRepository, bus EventBus.Bus) *ProductService {
	s := &ProductService{repo: repo, bus: bus}
	if bus != nil {
		if err := bus.SubscribeAsync(TopicProductSearched, s.onProductSearched, false); err != nil {
			zap.L().Error("failed to subscribe product searched topic", zap.Error(err))
		}
	}
	return s
}

// GetMostSearched returns the top products by search counter
func (s *ProductService) GetMostSearched(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.MostSearched(ctx, MostSearchedLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "query most searched products")
	}
	return products, nil
}

// SearchByName returns active products matching name, with zero-based
// pagination. A blank name is rejected before touching the store.
func (s *ProductService) SearchByName(ctx context.Context, name string, page, limit int) ([]domain.Product, int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, 0, ErrProductNameRequired
	}
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	products, total, err := s.repo.FindByName(ctx, name, page, limit)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(err, "search products by name")
	}

	if s.bus != nil && len(products) > 0 {
		ids := make([]int64, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		s.bus.Publish(TopicProductSearched, ids)
	}

	return products, total, nil
}

// GetProduct returns an active product by business id
func (s *ProductService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.repo.GetByProductID(ctx, productID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrProductNotFound
	case err != nil:
		return nil, pkgerrors.Wrap(err, "query product")
	}
	return product, nil
}

// CreateProduct persists a new product with a generated business id and
// a sale price computed from list price and discount
func (s *ProductService) CreateProduct(ctx context.Context, cmd ProductCommand) (*domain.Product, error) {
	now := time.Now()
	product := &domain.Product{
		ID:              common.UUIDint64(),
		ProductID:       common.UUID(),
		Name:            strings.TrimSpace(cmd.Name),
		ListPrice:       cmd.ListPrice,
		DiscountPercent: cmd.DiscountPercent,
		SalePrice:       pricing.SalePrice(cmd.ListPrice, cmd.DiscountPercent),
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(err, "create product")
	}
	zap.L().Info("product created",
		zap.String("product_id", product.ProductID),
		zap.String("name", product.Name))
	return product, nil
}

// UpdateProduct mutates an active product and recomputes its sale price.
// The business id never changes.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, cmd ProductCommand) (*domain.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(cmd.Name)
	product.ListPrice = cmd.ListPrice
	product.DiscountPercent = cmd.DiscountPercent
	product.SalePrice = pricing.SalePrice(cmd.ListPrice, cmd.DiscountPercent)
	product.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(err, "update product")
	}
	return product, nil
}

// DeleteProduct flags a product inactive, the row stays in the table
func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	err := s.repo.SoftDelete(ctx, productID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrProductNotFound
	case err != nil:
		return pkgerrors.Wrap(err, "delete product")
	}
	zap.L().Info("product deactivated", zap.String("product_id", productID))
	return nil
}

// ListActive returns the full active catalog (export)
func (s *ProductService) ListActive(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListActive(ctx)
}

func (s *ProductService) onProductSearched(ids []int64) {
	if err := s.repo.IncrementSearchCount(context.Background(), ids); err != nil {
		zap.L().Error("failed to increment search counters", zap.Error(err))
	}
}
