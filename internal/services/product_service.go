// File: internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dcastano/go-shopchat/internal/domain"
	"github.com/dcastano/go-shopchat/internal/dtos"
	"github.com/dcastano/go-shopchat/internal/repository/product"
)

var ErrProductNotFound = errors.New("product not found")

// InvalidProductDataError wraps a domain validation failure so the handler
// layer can map it to a client error.
type InvalidProductDataError struct {
	Cause error
}

func (e *InvalidProductDataError) Error() string {
	return fmt.Sprintf("invalid product data: %v", e.Cause)
}

func (e *InvalidProductDataError) Unwrap() error { return e.Cause }

// ProductService holds the catalog use cases on top of the product store.
type ProductService struct {
	productRepo product.ProductRepository
	logger      Logger
}

func NewProductService(productRepo product.ProductRepository, logger Logger) *ProductService {
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &ProductService{productRepo: productRepo, logger: logger}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]dtos.ProductDTO, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dtos.ProductsFromDomain(products), nil
}

// GetAvailableProducts returns only products with stock left.
func (s *ProductService) GetAvailableProducts(ctx context.Context) ([]dtos.ProductDTO, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.IsAvailable() {
			available = append(available, p)
		}
	}
	return dtos.ProductsFromDomain(available), nil
}

func (s *ProductService) GetProductByID(ctx context.Context, productID uint) (*dtos.ProductDTO, error) {
	found, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrProductNotFound
	}
	dto := dtos.ProductFromDomain(*found)
	return &dto, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, dto dtos.ProductDTO) (*dtos.ProductDTO, error) {
	dto.ID = 0
	entity, err := dto.ToDomain()
	if err != nil {
		return nil, &InvalidProductDataError{Cause: err}
	}

	saved, err := s.productRepo.Upsert(ctx, entity)
	if err != nil {
		return nil, err
	}
	s.logger.Info("product created", "product_id", saved.ID, "name", saved.Name)

	out := dtos.ProductFromDomain(*saved)
	return &out, nil
}

// UpdateProduct replaces every field of an existing product. The update is
// a single keyed write; the caller supplies the full replacement record.
func (s *ProductService) UpdateProduct(ctx context.Context, productID uint, dto dtos.ProductDTO) (*dtos.ProductDTO, error) {
	existing, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	dto.ID = productID
	entity, err := dto.ToDomain()
	if err != nil {
		return nil, &InvalidProductDataError{Cause: err}
	}

	saved, err := s.productRepo.Upsert(ctx, entity)
	if err != nil {
		return nil, err
	}

	out := dtos.ProductFromDomain(*saved)
	return &out, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID uint) error {
	deleted, err := s.productRepo.Delete(ctx, productID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	s.logger.Info("product deleted", "product_id", productID)
	return nil
}

// AdjustStock applies a stock delta through the domain rules: a positive
// adjustment restocks, a negative one consumes and must not exceed the
// current stock.
func (s *ProductService) AdjustStock(ctx context.Context, productID uint, adjustment int) (*dtos.ProductDTO, error) {
	existing, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	switch {
	case adjustment > 0:
		err = existing.IncreaseStock(adjustment)
	case adjustment < 0:
		err = existing.ReduceStock(-adjustment)
	default:
		err = domain.ErrNonPositiveAmount
	}
	if err != nil {
		return nil, &InvalidProductDataError{Cause: err}
	}

	saved, err := s.productRepo.Upsert(ctx, existing)
	if err != nil {
		return nil, err
	}

	out := dtos.ProductFromDomain(*saved)
	return &out, nil
}

// SearchProducts filters the catalog by brand and/or category,
// case-insensitively. Store-level matching stays exact; the relaxed match
// is an application concern.
func (s *ProductService) SearchProducts(ctx context.Context, brand, category string) ([]dtos.ProductDTO, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if brand != "" && !strings.EqualFold(p.Brand, brand) {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		filtered = append(filtered, p)
	}
	return dtos.ProductsFromDomain(filtered), nil
}
