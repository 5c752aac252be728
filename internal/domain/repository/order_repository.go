// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order does not exist or is not
	// owned by the requesting user.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists an order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// ListByUser returns the user's orders, newest first, each annotated
	// with its item count.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByIDForUser retrieves one order with its line items, scoped to the
	// owner. Returns ErrOrderNotFound when absent or owned by someone else.
	FindByIDForUser(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// ListAll returns every order, newest first, joined to the customer's
	// name and email. Back-office only.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus replaces an order's status. Returns ErrOrderNotFound when
	// the order does not exist.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error

	// Count returns the total number of orders, optionally restricted to one status.
	Count(ctx context.Context, status *entity.OrderStatus) (int64, error)

	// SumCompletedRevenue returns the total amount across completed orders.
	SumCompletedRevenue(ctx context.Context) (decimal.Decimal, error)
}
