package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inventory/internal/models"
)

// GORMSupplierRepository is a GORM implementation of SupplierRepository.
type GORMSupplierRepository struct {
	db *gorm.DB
}

// NewGORMSupplierRepository creates a new instance of GORMSupplierRepository.
func NewGORMSupplierRepository(db *gorm.DB) *GORMSupplierRepository {
	return &GORMSupplierRepository{
		db: db,
	}
}

// GetAll retrieves all suppliers in insertion order.
func (r *GORMSupplierRepository) GetAll(ctx context.Context) ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	if err := r.db.WithContext(ctx).Order("id").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all suppliers: %w", err)
	}
	return suppliers, nil
}

// GetByID retrieves a single supplier by its ID.
func (r *GORMSupplierRepository) GetByID(ctx context.Context, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supplier with ID %d: %w", id, err)
		}
		return nil, fmt.Errorf("failed to get supplier by ID %d: %w", id, err)
	}
	return &supplier, nil
}

// FindByID is GetByID without the not-found error.
func (r *GORMSupplierRepository) FindByID(ctx context.Context, id uint) (*models.Supplier, error) {
	supplier, err := r.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return supplier, err
}

// Create creates a new supplier in the database.
func (r *GORMSupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// Update writes every column of an existing supplier. A row deleted since it was
// read is reported as not found, never re-created.
func (r *GORMSupplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	res := r.db.WithContext(ctx).Model(supplier).Select("*").Updates(supplier)
	if res.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier with ID %d not found for update: %w", supplier.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete deletes a supplier by its ID. Its products go with it.
func (r *GORMSupplierRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Supplier{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier with ID %d not found for deletion: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
