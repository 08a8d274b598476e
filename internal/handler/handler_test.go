package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/apperr"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog returns canned errors so the status mapping can be exercised
// without a store.
type stubCatalog struct {
	err      error
	products []model.Product
}

func (s *stubCatalog) ListProducts(categoryID *uint) ([]model.Product, error) {
	return s.products, s.err
}
func (s *stubCatalog) GetProduct(id uint) (*model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Product{Name: "Laptop", SKU: "LAP123"}, nil
}
func (s *stubCatalog) CreateProduct(req *model.CreateProductRequest) error          { return s.err }
func (s *stubCatalog) UpdateProduct(id uint, req *model.UpdateProductRequest) error { return s.err }
func (s *stubCatalog) DeleteProduct(id uint) error                                  { return s.err }
func (s *stubCatalog) AdjustPrice(id uint, newPrice decimal.Decimal) error          { return s.err }
func (s *stubCatalog) AdjustBulkPrices(req *model.BulkPriceAdjustmentRequest) error { return s.err }
func (s *stubCatalog) ListCategories() ([]model.Category, error)                    { return nil, s.err }
func (s *stubCatalog) GetCategory(id uint) (*model.Category, error)                 { return nil, s.err }
func (s *stubCatalog) CreateCategory(req *model.CreateCategoryRequest) error        { return s.err }
func (s *stubCatalog) UpdateCategory(id uint, req *model.CreateCategoryRequest) error {
	return s.err
}
func (s *stubCatalog) DeleteCategory(id uint) error { return s.err }

func newProductApp(stub *stubCatalog) *fiber.App {
	app := fiber.New()
	h := NewProductHandler(stub)
	app.Get("/products/:id", h.GetProduct)
	app.Post("/products", h.CreateProduct)
	app.Delete("/products/:id", h.DeleteProduct)
	app.Post("/products/bulk-price-adjustment", h.AdjustBulkPrices)
	return app
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperr.NotFound("product not found"), fiber.StatusNotFound},
		{"validation", apperr.Validation("SKU must be unique"), fiber.StatusBadRequest},
		{"conflict", apperr.Conflict("duplicate"), fiber.StatusConflict},
		{"internal", assert.AnError, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newProductApp(&stubCatalog{err: tc.err})

			req := httptest.NewRequest("DELETE", "/products/1", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestGetProductSuccess(t *testing.T) {
	app := newProductApp(&stubCatalog{})

	resp, err := app.Test(httptest.NewRequest("GET", "/products/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetProductInvalidID(t *testing.T) {
	app := newProductApp(&stubCatalog{})

	resp, err := app.Test(httptest.NewRequest("GET", "/products/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateProductRejectsInvalidJSON(t *testing.T) {
	app := newProductApp(&stubCatalog{})

	req := httptest.NewRequest("POST", "/products", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateProductSuccessIsNoContent(t *testing.T) {
	app := newProductApp(&stubCatalog{})

	body := `{"name":"Laptop","price":"1500","sku":"LAP123"}`
	req := httptest.NewRequest("POST", "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
