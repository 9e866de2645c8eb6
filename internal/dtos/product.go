// File: internal/dtos/product.go
package dtos

import "github.com/dcastano/go-shopchat/internal/domain"

// ProductDTO is the wire shape of a catalog product.
type ProductDTO struct {
	ID          uint    `json:"id,omitempty"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

// StockAdjustmentRequest changes a product's stock: a positive adjustment
// restocks, a negative one consumes.
type StockAdjustmentRequest struct {
	Adjustment int `json:"adjustment"`
}

func ProductFromDomain(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Size:        p.Size,
		Color:       p.Color,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
	}
}

func ProductsFromDomain(products []domain.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ProductFromDomain(p))
	}
	return out
}

// ToDomain converts the DTO into a validated domain entity, carrying over
// the identity when present.
func (d ProductDTO) ToDomain() (*domain.Product, error) {
	p, err := domain.NewProduct(d.Name, d.Brand, d.Category, d.Size, d.Color, d.Price, d.Stock, d.Description)
	if err != nil {
		return nil, err
	}
	p.ID = d.ID
	return p, nil
}
