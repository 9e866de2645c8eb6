// File: internal/domain/product.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyProductName   = errors.New("product name cannot be empty")
	ErrNonPositivePrice   = errors.New("price must be greater than 0")
	ErrNegativeStock      = errors.New("stock cannot be negative")
	ErrNonPositiveAmount  = errors.New("quantity must be positive")
)

// Product represents an item in the store catalog.
type Product struct {
	ID          uint    `json:"id" gorm:"primarykey"`
	Name        string  `json:"name" gorm:"size:200;not null;index"`
	Brand       string  `json:"brand" gorm:"size:100;index"`
	Category    string  `json:"category" gorm:"size:100;index"`
	Size        string  `json:"size" gorm:"size:20"`
	Color       string  `json:"color" gorm:"size:50"`
	Price       float64 `json:"price" gorm:"not null"`
	Stock       int     `json:"stock" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
}

func (Product) TableName() string { return "products" }

// NewProduct builds a Product without an identity; the repository assigns
// the ID on first save. Invalid field values fail here, never at persistence.
func NewProduct(name, brand, category, size, color string, price float64, stock int, description string) (*Product, error) {
	p := &Product{
		Name:        name,
		Brand:       brand,
		Category:    category,
		Size:        size,
		Color:       color,
		Price:       price,
		Stock:       stock,
		Description: description,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the product invariants.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProductName
	}
	if p.Price <= 0 {
		return ErrNonPositivePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// IsAvailable reports whether the product has stock left.
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// ReduceStock decrements stock by quantity. The stock is left untouched
// when the quantity is non-positive or exceeds the current stock.
func (p *Product) ReduceStock(quantity int) error {
	if quantity <= 0 {
		return ErrNonPositiveAmount
	}
	if p.Stock < quantity {
		return fmt.Errorf("insufficient stock: have %d, requested %d", p.Stock, quantity)
	}
	p.Stock -= quantity
	return nil
}

// IncreaseStock increments stock by a positive quantity.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return ErrNonPositiveAmount
	}
	p.Stock += quantity
	return nil
}
