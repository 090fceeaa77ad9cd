package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"inventory/internal/models"
	"inventory/internal/services"
)

func TestSupplierService_CreateSupplier(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSupplierRepository)
	service := services.NewSupplierService(mockRepo)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Supplier")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Supplier).ID = 1
	}).Return(nil).Once()

	supplier, err := service.CreateSupplier(ctx, models.SupplierIn{Name: "Ada", Company: "Acme", Email: "ada@acme.test", Phone: "555"})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), supplier.ID)
	assert.Equal(t, "Acme", supplier.Company)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Supplier")).Return(fmt.Errorf("database error")).Once()
	_, err = service.CreateSupplier(ctx, models.SupplierIn{Name: "Ada"})
	assert.ErrorContains(t, err, "database error")
	mockRepo.AssertExpectations(t)
}

func TestSupplierService_FindSupplier(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSupplierRepository)
	service := services.NewSupplierService(mockRepo)

	mockRepo.On("FindByID", ctx, uint(99)).Return(nil, nil).Once()
	supplier, err := service.FindSupplier(ctx, 99)
	assert.NoError(t, err)
	assert.Nil(t, supplier)
	mockRepo.AssertExpectations(t)
}

func TestSupplierService_UpdateSupplier(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSupplierRepository)
	service := services.NewSupplierService(mockRepo)

	existing := &models.Supplier{ID: 1, Name: "Ada", Company: "Acme", Email: "ada@acme.test", Phone: "555-0000"}
	mockRepo.On("GetByID", ctx, uint(1)).Return(existing, nil).Once()
	mockRepo.On("Update", ctx, existing).Return(nil).Once()

	updated, err := service.UpdateSupplier(ctx, 1, models.SupplierUpdate{Phone: ptr("555-1234")})
	assert.NoError(t, err)
	assert.Equal(t, "555-1234", updated.Phone)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, "ada@acme.test", updated.Email)
	mockRepo.AssertExpectations(t)

	// Missing supplier propagates the repository error untouched.
	notFound := fmt.Errorf("supplier with ID 99: %w", gorm.ErrRecordNotFound)
	mockRepo.On("GetByID", ctx, uint(99)).Return(nil, notFound).Once()
	_, err = service.UpdateSupplier(ctx, 99, models.SupplierUpdate{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	mockRepo.AssertNotCalled(t, "Update", ctx, mock.MatchedBy(func(s *models.Supplier) bool { return s.ID == 99 }))
}

func TestSupplierService_DeleteSupplier(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSupplierRepository)
	service := services.NewSupplierService(mockRepo)

	mockRepo.On("GetByID", ctx, uint(1)).Return(&models.Supplier{ID: 1}, nil).Once()
	mockRepo.On("Delete", ctx, uint(1)).Return(nil).Once()
	assert.NoError(t, service.DeleteSupplier(ctx, 1))
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", ctx, uint(99)).Return(nil, gorm.ErrRecordNotFound).Once()
	assert.ErrorIs(t, service.DeleteSupplier(ctx, 99), gorm.ErrRecordNotFound)
	mockRepo.AssertNotCalled(t, "Delete", ctx, uint(99))
}
