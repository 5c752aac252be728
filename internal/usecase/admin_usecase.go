package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to add a catalog product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  uuid.UUID
	Image       string
}

// UpdateProductInput overwrites an existing product's catalog fields.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  uuid.UUID
	Image       string
}

// StatisticsOutput is the back-office dashboard summary.
type StatisticsOutput struct {
	TotalUsers    int64
	TotalProducts int64
	TotalOrders   int64
	PendingOrders int64
	TotalRevenue  decimal.Decimal
}

// AdminUsecase defines the interface for back-office operations. The
// delivery layer guards every call behind the admin role.
type AdminUsecase interface {
	// Statistics returns the dashboard aggregates.
	Statistics(ctx context.Context) (*StatisticsOutput, error)

	// ListProducts returns every product, including out-of-stock ones.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)

	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct overwrites a product's catalog fields.
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// ListOrders returns every order with the customer's name and email.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus replaces an order's status. The status must be a
	// member of the order status enum; transitions are otherwise free.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error

	// ListUsers returns every account, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
