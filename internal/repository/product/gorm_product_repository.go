// File: internal/repository/product/gorm_product_repository.go
package product

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/dcastano/go-shopchat/internal/domain"
)

type gormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository returns the gorm-backed catalog store.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepository{db: db}
}

// FindAll returns every catalog record. Order is stable within one read
// (primary key ascending).
func (r *gormProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	if err != nil {
		log.Printf("[ProductRepository] Database error listing products: %v", err)
		return nil, errors.New("database error listing products")
	}
	return products, nil
}

// FindByID returns (nil, nil) when no record matches.
func (r *gormProductRepository) FindByID(ctx context.Context, productID uint) (*domain.Product, error) {
	if productID == 0 {
		return nil, errors.New("invalid product ID")
	}

	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("[ProductRepository] Database error finding product ID %d: %v", productID, err)
		return nil, errors.New("database error finding product")
	}
	return &product, nil
}

// FindByBrand matches the stored brand exactly, case-sensitively.
// Case-insensitive search lives in the product service.
func (r *gormProductRepository) FindByBrand(ctx context.Context, brand string) ([]domain.Product, error) {
	return r.findByField(ctx, "brand", brand)
}

// FindByCategory matches the stored category exactly, case-sensitively.
func (r *gormProductRepository) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.findByField(ctx, "category", category)
}

func (r *gormProductRepository) findByField(ctx context.Context, column, value string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", column), value).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		log.Printf("[ProductRepository] Database error filtering products by %s: %v", column, err)
		return nil, errors.New("database error filtering products")
	}
	return products, nil
}

// Upsert inserts the product when it carries no identity and replaces the
// record keyed by the identity otherwise. Save issues a single INSERT or
// UPDATE, so concurrent upserts to the same id never lose fields to a
// read-modify-write interleaving.
func (r *gormProductRepository) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product cannot be nil")
	}
	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		log.Printf("[ProductRepository] Database error saving product %q: %v", product.Name, err)
		return nil, errors.New("database error saving product")
	}
	return product, nil
}

// Delete removes the record and reports whether it existed. A missing id
// is not an error.
func (r *gormProductRepository) Delete(ctx context.Context, productID uint) (bool, error) {
	if productID == 0 {
		return false, errors.New("invalid product ID")
	}

	result := r.db.WithContext(ctx).Delete(&domain.Product{}, productID)
	if result.Error != nil {
		log.Printf("[ProductRepository] Database error deleting product ID %d: %v", productID, result.Error)
		return false, errors.New("database error deleting product")
	}
	return result.RowsAffected > 0, nil
}

// Count returns the number of catalog records.
func (r *gormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error
	if err != nil {
		log.Printf("[ProductRepository] Database error counting products: %v", err)
		return 0, errors.New("database error counting products")
	}
	return count, nil
}
