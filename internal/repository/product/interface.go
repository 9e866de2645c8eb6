// File: internal/repository/product/interface.go
package product

import (
	"context"

	"github.com/dcastano/go-shopchat/internal/domain"
)

// ProductRepository is the persistence contract for the catalog store.
// Lookups that find nothing return (nil, nil); absence is not an error.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, productID uint) (*domain.Product, error)
	FindByBrand(ctx context.Context, brand string) ([]domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, productID uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}
