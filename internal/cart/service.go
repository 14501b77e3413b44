package cart

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/talkincode/clothesstore/internal/catalog"
	"github.com/talkincode/clothesstore/internal/domain"
	"github.com/talkincode/clothesstore/pkg/common"
)

// ErrCartNotFound is returned when a cart token resolves to nothing
var ErrCartNotFound = errors.New("cart does not exist")

// tokenRetries bounds collision retries when generating a cart token
const tokenRetries = 3

// CartService orchestrates cart creation, product association and the
// priced cart view
type CartService struct {
	repo     CartRepository
	products ProductFinder
	tokenLen int
}

// NewCartService creates a cart service. tokenLen is the generated cart
// token length, values <= 0 fall back to 3.
func NewCartService(repo CartRepository, products ProductFinder, tokenLen int) *CartService {
	if tokenLen <= 0 {
		tokenLen = 3
	}
	return &CartService{repo: repo, products: products, tokenLen: tokenLen}
}

// CreateCart persists a new empty cart under a freshly generated token
// and returns its view
func (s *CartService) CreateCart(ctx context.Context) (*CartView, error) {
	var lastErr error
	for i := 0; i < tokenRetries; i++ {
		c := &domain.Cart{
			ID:        common.UUIDint64(),
			CartID:    common.GenerateCartID(s.tokenLen),
			CreatedAt: time.Now(),
		}
		err := s.repo.Create(ctx, c)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, pkgerrors.Wrap(err, "create cart")
		}
		zap.L().Info("cart created", zap.String("cart_id", c.CartID))
		return NewCartView(c), nil
	}
	return nil, pkgerrors.Wrap(lastErr, "cart token collisions exhausted retries")
}

// AddProduct appends one line linking the product to the cart and returns
// the refreshed view. The same product may be added repeatedly, every call
// creates another line.
func (s *CartService) AddProduct(ctx context.Context, cartID, productID string) (*CartView, error) {
	product, err := s.products.GetByProductID(ctx, productID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, catalog.ErrProductNotFound
	case err != nil:
		return nil, pkgerrors.Wrap(err, "query product")
	}

	c, err := s.repo.GetByCartID(ctx, cartID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrCartNotFound
	case err != nil:
		return nil, pkgerrors.Wrap(err, "query cart")
	}

	item := &domain.CartItem{
		ID:           common.UUIDint64(),
		CartRefID:    c.ID,
		ProductRefID: product.ID,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(err, "add cart item")
	}

	zap.L().Info("product added to cart",
		zap.String("cart_id", cartID),
		zap.String("product_id", productID))

	return s.GetCart(ctx, cartID)
}

// GetCart returns the priced view of a cart, recomputed from its
// current lines
func (s *CartService) GetCart(ctx context.Context, cartID string) (*CartView, error) {
	c, err := s.repo.GetByCartID(ctx, cartID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrCartNotFound
	case err != nil:
		return nil, pkgerrors.Wrap(err, "query cart")
	}
	return NewCartView(c), nil
}
