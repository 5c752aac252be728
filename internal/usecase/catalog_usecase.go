package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ListProductsInput carries the storefront catalog filters. CategoryID and
// Search are optional; Page and Limit fall back to the first page of twelve.
type ListProductsInput struct {
	CategoryID *uuid.UUID
	Search     string
	Page       int
	Limit      int
}

// ListProductsOutput is one page of the catalog plus pagination metadata.
type ListProductsOutput struct {
	Products   []*entity.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductDetailOutput bundles a product with its reviews for the detail page.
type ProductDetailOutput struct {
	Product       *entity.Product
	Reviews       []*entity.Review
	AverageRating float64
}

// CatalogUsecase defines the interface for public catalog reads.
type CatalogUsecase interface {
	// ListProducts returns in-stock products matching the filters, newest first.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)

	// GetProduct returns one product together with its reviews.
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDetailOutput, error)

	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
