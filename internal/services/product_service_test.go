package services

import (
	"testing"

	"marketplace_backend/internal/apperrors"
	"marketplace_backend/internal/models"
	"marketplace_backend/internal/repositories"
	"marketplace_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductTestService() (ProductService, *mockProductRepository, *mockCategoryRepository) {
	productRepo := &mockProductRepository{}
	categoryRepo := &mockCategoryRepository{}
	return NewProductService(productRepo, categoryRepo), productRepo, categoryRepo
}

func TestProductCreate_UnknownCategory(t *testing.T) {
	svc, productRepo, categoryRepo := newProductTestService()
	categoryRepo.On("FindByID", mock.Anything, "no-such-category").
		Return(nil, repositories.ErrCategoryNotFound)

	_, err := svc.Create(nil, &dto.CreateProductRequest{
		MarketID:   "market-1",
		CategoryID: "no-such-category",
		Name:       "Widget",
		Price:      9.99,
	})

	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductCreate_Success(t *testing.T) {
	svc, productRepo, categoryRepo := newProductTestService()
	categoryRepo.On("FindByID", mock.Anything, "category-1").
		Return(&models.Category{BaseModelWithDeleted: models.BaseModelWithDeleted{BaseModel: models.BaseModel{ID: "category-1"}}}, nil)
	productRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil)

	product, err := svc.Create(nil, &dto.CreateProductRequest{
		MarketID:    "market-1",
		CategoryID:  "category-1",
		Name:        "Widget",
		Description: "A fine widget",
		Price:       9.99,
		Stock:       5,
	})
	require.NoError(t, err)

	assert.Equal(t, "market-1", product.MarketID)
	assert.Equal(t, "category-1", product.CategoryID)
	assert.Equal(t, 9.99, product.Price)
	productRepo.AssertExpectations(t)
}

func TestProductUpdate_RevalidatesCategory(t *testing.T) {
	svc, productRepo, categoryRepo := newProductTestService()
	productRepo.On("FindByID", mock.Anything, "product-1").
		Return(&models.Product{
			BaseModel:  models.BaseModel{ID: "product-1"},
			MarketID:   "market-1",
			CategoryID: "category-1",
			Name:       "Widget",
		}, nil)
	categoryRepo.On("FindByID", mock.Anything, "no-such-category").
		Return(nil, repositories.ErrCategoryNotFound)

	_, err := svc.Update(nil, "product-1", &dto.UpdateProductRequest{
		CategoryID: "no-such-category",
		Name:       "Widget v2",
		Price:      12.50,
	})

	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductList_PassesCategoryFilter(t *testing.T) {
	svc, productRepo, _ := newProductTestService()
	productRepo.On("FindAll", mock.Anything, "category-1").
		Return([]models.Product{{CategoryID: "category-1", Name: "Widget"}}, nil)

	products, err := svc.List(nil, "category-1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "category-1", products[0].CategoryID)
}
