package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"inventory/internal/models"
	"inventory/internal/services"
)

func TestProductService_CreateProductComputesRevenue(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockSuppliers := new(MockSupplierRepository)
	service := services.NewProductService(mockRepo, mockSuppliers)

	mockSuppliers.On("GetByID", ctx, uint(3)).Return(&models.Supplier{ID: 3}, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.CreateProduct(ctx, 3, models.ProductIn{
		Name:         "Widget",
		UnitPrice:    decimal.RequireFromString("2.00"),
		QuantitySold: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(3), product.SuppliedByID)
	assert.Equal(t, "10.00", product.Revenue.StringFixed(2))
	mockRepo.AssertExpectations(t)
	mockSuppliers.AssertExpectations(t)
}

func TestProductService_CreateProductRoundsUnitPriceFirst(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockSuppliers := new(MockSupplierRepository)
	service := services.NewProductService(mockRepo, mockSuppliers)

	mockSuppliers.On("GetByID", ctx, uint(3)).Return(&models.Supplier{ID: 3}, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.CreateProduct(ctx, 3, models.ProductIn{
		Name:         "Widget",
		UnitPrice:    decimal.RequireFromString("2.005"),
		QuantitySold: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, "2.01", product.UnitPrice.String())
	assert.Equal(t, "10.05", product.Revenue.String())
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProductUnknownSupplier(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockSuppliers := new(MockSupplierRepository)
	service := services.NewProductService(mockRepo, mockSuppliers)

	mockSuppliers.On("GetByID", ctx, uint(42)).Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := service.CreateProduct(ctx, 42, models.ProductIn{Name: "Widget"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_GetAllProducts(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, new(MockSupplierRepository))

	expectedProducts := []models.Product{
		{ID: 1, Name: "Product A", QuantityInStock: 100},
		{ID: 2, Name: "Product B", QuantityInStock: 50},
	}
	mockRepo.On("GetAll", ctx).Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, new(MockSupplierRepository))

	existing := &models.Product{
		ID:           1,
		Name:         "Widget",
		UnitPrice:    decimal.RequireFromString("2.00"),
		Revenue:      decimal.RequireFromString("10.00"),
		QuantitySold: 5,
	}
	mockRepo.On("GetByID", ctx, uint(1)).Return(existing, nil).Once()
	mockRepo.On("Update", ctx, existing).Return(nil).Once()

	updated, err := service.UpdateProduct(ctx, 1, models.ProductUpdate{QuantitySold: ptr(3)})
	assert.NoError(t, err)
	assert.Equal(t, 8, updated.QuantitySold)
	assert.Equal(t, "10.00", updated.Revenue.StringFixed(2))
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", ctx, uint(1)).Return(existing, nil).Once()
	mockRepo.On("Update", ctx, existing).Return(fmt.Errorf("disk full")).Once()
	_, err = service.UpdateProduct(ctx, 1, models.ProductUpdate{})
	assert.ErrorContains(t, err, "disk full")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, new(MockSupplierRepository))

	mockRepo.On("GetByID", ctx, uint(1)).Return(&models.Product{ID: 1}, nil).Once()
	mockRepo.On("Delete", ctx, uint(1)).Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(ctx, 1))
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", ctx, uint(99)).Return(nil, fmt.Errorf("product with ID 99: %w", gorm.ErrRecordNotFound)).Once()
	err := service.DeleteProduct(ctx, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	mockRepo.AssertNotCalled(t, "Delete", ctx, uint(99))
}
