package repositories

import (
	"context"

	"inventory/internal/models"
)

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	GetAll(ctx context.Context) ([]models.Supplier, error)
	// GetByID fails with an error wrapping gorm.ErrRecordNotFound when the id is absent.
	GetByID(ctx context.Context, id uint) (*models.Supplier, error)
	// FindByID returns nil, nil when the id is absent.
	FindByID(ctx context.Context, id uint) (*models.Supplier, error)
	Create(ctx context.Context, supplier *models.Supplier) error
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id uint) error
}
