package services

import (
	"context"
	"fmt"

	"inventory/internal/models"
	"inventory/internal/repositories"
)

// SupplierService handles business logic related to suppliers.
type SupplierService struct {
	repo repositories.SupplierRepository
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(repo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{
		repo: repo,
	}
}

// CreateSupplier stores a new supplier built from the request body.
func (s *SupplierService) CreateSupplier(ctx context.Context, in models.SupplierIn) (*models.Supplier, error) {
	supplier := &models.Supplier{
		Name:    in.Name,
		Company: in.Company,
		Email:   in.Email,
		Phone:   in.Phone,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetAllSuppliers retrieves all suppliers.
func (s *SupplierService) GetAllSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return s.repo.GetAll(ctx)
}

// FindSupplier returns nil, nil when the supplier does not exist.
func (s *SupplierService) FindSupplier(ctx context.Context, id uint) (*models.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateSupplier applies a partial update to an existing supplier.
// A missing supplier is reported as the repository's not-found error.
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uint, in models.SupplierUpdate) (*models.Supplier, error) {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ApplySupplierUpdate(supplier, in)
	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to save supplier %d: %w", id, err)
	}
	return supplier, nil
}

// DeleteSupplier deletes a supplier after confirming it exists.
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
