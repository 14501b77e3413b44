package shopapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/clothesstore/internal/cart"
	"github.com/talkincode/clothesstore/internal/catalog"
	"github.com/talkincode/clothesstore/internal/domain"
	"github.com/talkincode/clothesstore/internal/pricing"
)

type fakeCartService struct {
	views map[string]*cart.CartView
}

func (f *fakeCartService) CreateCart(context.Context) (*cart.CartView, error) {
	view := &cart.CartView{CartID: "ABC", Products: []cart.ProductView{}, Total: decimal.Zero, TotalDiscount: decimal.Zero}
	f.views[view.CartID] = view
	return view, nil
}

func (f *fakeCartService) AddProduct(_ context.Context, cartID, productID string) (*cart.CartView, error) {
	if productID != "P1" {
		return nil, catalog.ErrProductNotFound
	}
	view, ok := f.views[cartID]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	list, discount := decimal.NewFromInt(100), decimal.NewFromInt(20)
	view.Products = append(view.Products, cart.ProductView{
		ProductID:       productID,
		Name:            "demo-jeans-classic",
		ListPrice:       list,
		DiscountPercent: discount,
		SalePrice:       pricing.SalePrice(list, discount),
	})
	view.Total = view.Total.Add(pricing.SalePrice(list, discount))
	view.TotalDiscount = view.TotalDiscount.Add(decimal.NewFromInt(20))
	return view, nil
}

func (f *fakeCartService) GetCart(_ context.Context, cartID string) (*cart.CartView, error) {
	view, ok := f.views[cartID]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	return view, nil
}

type fakeProductService struct {
	products []domain.Product
}

func (f *fakeProductService) GetMostSearched(context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeProductService) SearchByName(_ context.Context, name string, _, _ int) ([]domain.Product, int64, error) {
	if strings.TrimSpace(name) == "" {
		return nil, 0, catalog.ErrProductNameRequired
	}
	return f.products, int64(len(f.products)), nil
}

func (f *fakeProductService) GetProduct(_ context.Context, productID string) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].ProductID == productID {
			return &f.products[i], nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (f *fakeProductService) CreateProduct(_ context.Context, cmd catalog.ProductCommand) (*domain.Product, error) {
	p := domain.Product{
		ProductID:       "NEW1",
		Name:            cmd.Name,
		ListPrice:       cmd.ListPrice,
		DiscountPercent: cmd.DiscountPercent,
		SalePrice:       pricing.SalePrice(cmd.ListPrice, cmd.DiscountPercent),
		Active:          true,
	}
	f.products = append(f.products, p)
	return &p, nil
}

func (f *fakeProductService) UpdateProduct(_ context.Context, productID string, cmd catalog.ProductCommand) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].ProductID == productID {
			f.products[i].Name = cmd.Name
			f.products[i].ListPrice = cmd.ListPrice
			f.products[i].DiscountPercent = cmd.DiscountPercent
			f.products[i].SalePrice = pricing.SalePrice(cmd.ListPrice, cmd.DiscountPercent)
			return &f.products[i], nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (f *fakeProductService) DeleteProduct(_ context.Context, productID string) error {
	for _, p := range f.products {
		if p.ProductID == productID {
			return nil
		}
	}
	return catalog.ErrProductNotFound
}

func (f *fakeProductService) ListActive(context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func demoProduct() domain.Product {
	list, discount := decimal.NewFromInt(100), decimal.NewFromInt(20)
	return domain.Product{
		ID:              1,
		ProductID:       "P1",
		Name:            "demo-jeans-classic",
		ListPrice:       list,
		DiscountPercent: discount,
		SalePrice:       pricing.SalePrice(list, discount),
		Active:          true,
	}
}

func TestCreateCartEndpoint(t *testing.T) {
	h := NewCartHandler(&fakeCartService{views: map[string]*cart.CartView{}})
	c, rec := newContext(t, http.MethodPost, "/api/carts", "")

	require.NoError(t, h.createCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ABC", body["cart_id"])
	assert.Empty(t, body["products"])
}

func TestGetCartEndpointNotFound(t *testing.T) {
	h := NewCartHandler(&fakeCartService{views: map[string]*cart.CartView{}})
	c, rec := newContext(t, http.MethodGet, "/api/carts/MISSING", "")
	c.SetParamNames("cart_id")
	c.SetParamValues("MISSING")

	require.NoError(t, h.getCart(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CART_NOT_FOUND", decodeBody(t, rec)["code"])
}

func TestAddProductEndpoint(t *testing.T) {
	svc := &fakeCartService{views: map[string]*cart.CartView{}}
	_, err := svc.CreateCart(context.Background())
	require.NoError(t, err)

	h := NewCartHandler(svc)
	c, rec := newContext(t, http.MethodPost, "/api/carts/ABC/products/P1", "")
	c.SetParamNames("cart_id", "product_id")
	c.SetParamValues("ABC", "P1")

	require.NoError(t, h.addProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "80", body["total"])
	assert.Equal(t, "20", body["total_discount"])
}

func TestAddProductEndpointUnknownProduct(t *testing.T) {
	svc := &fakeCartService{views: map[string]*cart.CartView{}}
	_, err := svc.CreateCart(context.Background())
	require.NoError(t, err)

	h := NewCartHandler(svc)
	c, rec := newContext(t, http.MethodPost, "/api/carts/ABC/products/NOPE", "")
	c.SetParamNames("cart_id", "product_id")
	c.SetParamValues("ABC", "NOPE")

	require.NoError(t, h.addProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeBody(t, rec)["code"])
}

func TestSearchEndpointRequiresName(t *testing.T) {
	h := NewProductHandler(&fakeProductService{})
	c, rec := newContext(t, http.MethodGet, "/api/products", "")

	require.NoError(t, h.searchProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PRODUCT_NAME_REQUIRED", decodeBody(t, rec)["code"])
}

func TestSearchEndpointPaged(t *testing.T) {
	h := NewProductHandler(&fakeProductService{products: []domain.Product{demoProduct()}})
	c, rec := newContext(t, http.MethodGet, "/api/products?name=demo&page=0&limit=10", "")

	require.NoError(t, h.searchProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["total"])
	assert.EqualValues(t, 10, body["page_size"])
}

func TestCreateProductEndpointValidation(t *testing.T) {
	h := NewProductHandler(&fakeProductService{})
	c, rec := newContext(t, http.MethodPost, "/api/products",
		`{"name":"demo","list_price":100,"discount_percent":120}`)

	require.NoError(t, h.createProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeBody(t, rec)["code"])
}

func TestCreateProductEndpoint(t *testing.T) {
	h := NewProductHandler(&fakeProductService{})
	c, rec := newContext(t, http.MethodPost, "/api/products",
		`{"name":"demo-jeans-classic","list_price":100,"discount_percent":20}`)

	require.NoError(t, h.createProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "NEW1", body["product_id"])
	assert.Equal(t, "80", body["sale_price"])
}

func TestDeleteProductEndpoint(t *testing.T) {
	h := NewProductHandler(&fakeProductService{products: []domain.Product{demoProduct()}})
	c, rec := newContext(t, http.MethodDelete, "/api/products/P1", "")
	c.SetParamNames("id")
	c.SetParamValues("P1")

	require.NoError(t, h.deleteProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "DELETE", body["operation"])
	assert.Equal(t, "SUCCESS", body["status"])
}

func TestExportProductsEndpoint(t *testing.T) {
	h := NewProductHandler(&fakeProductService{products: []domain.Product{demoProduct()}})
	c, rec := newContext(t, http.MethodGet, "/api/products/export", "")

	require.NoError(t, h.exportProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "product_id")
	assert.Contains(t, lines[1], "demo-jeans-classic")
}
