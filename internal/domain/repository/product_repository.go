// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrStockConflict is returned when a conditional stock decrement affects
	// no rows, meaning the product vanished or has too little stock left.
	ErrStockConflict = errors.New("stock decrement rejected")
)

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	CategoryID *uuid.UUID // nil means all categories.
	Search     string     // Matches against name and description.
	InStock    bool       // Restrict to stock > 0.
	Page       int        // 1-based.
	Limit      int
}

// ProductRepository defines the interface for catalog database operations.
type ProductRepository interface {
	// List returns a page of products matching the filter, newest first,
	// along with the total match count for pagination.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// FindByID retrieves a product by its unique ID, including its category name.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites an existing product's catalog fields.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity from a product's stock,
	// guarded so stock never drops below zero. Returns ErrStockConflict when
	// the product does not exist or holds less stock than requested.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)
}
