package services

import (
	"context"
	"fmt"

	"inventory/internal/models"
	"inventory/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	suppliers repositories.SupplierRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, suppliers repositories.SupplierRepository) *ProductService {
	return &ProductService{
		repo:      repo,
		suppliers: suppliers,
	}
}

// CreateProduct stores a new product for the given supplier. Revenue is derived
// from the payload here and only here.
func (s *ProductService) CreateProduct(ctx context.Context, supplierID uint, in models.ProductIn) (*models.Product, error) {
	supplier, err := s.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	unitPrice := models.Amount(in.UnitPrice)
	product := &models.Product{
		Name:            in.Name,
		QuantityInStock: in.QuantityInStock,
		UnitPrice:       unitPrice,
		SuppliedByID:    supplier.ID,
		Revenue:         models.Revenue(in.QuantitySold, unitPrice),
		QuantitySold:    in.QuantitySold,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProduct applies a partial update to an existing product.
// quantity_sold accumulates and revenue is left as stored unless supplied.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, in models.ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ApplyProductUpdate(product, in)
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product %d: %w", id, err)
	}
	return product, nil
}

// DeleteProduct deletes a product after confirming it exists.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
