// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartItemNotFound is returned when a cart line does not exist or is
	// not owned by the requesting user.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart line persistence.
type CartRepository interface {
	// ListByUser returns the user's cart lines in insertion order, each
	// joined to the product's current name, price and image. The price seen
	// here is the snapshot the order workflow copies into order lines.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// FindByUserAndProduct retrieves the single line for a (user, product)
	// pair. Returns ErrCartItemNotFound when absent.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)

	// Create persists a new cart line.
	Create(ctx context.Context, item *entity.CartItem) error

	// AddQuantity increments the quantity of an existing (user, product) line.
	AddQuantity(ctx context.Context, userID, productID uuid.UUID, delta int) error

	// SetQuantity overwrites the quantity of a line owned by the user.
	// Returns ErrCartItemNotFound when the line is absent or owned by
	// someone else.
	SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error

	// Delete removes a line scoped to its owner. Deleting an absent line is
	// not an error.
	Delete(ctx context.Context, userID, itemID uuid.UUID) error

	// FindByID retrieves a line scoped to its owner.
	FindByID(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error)

	// ClearByUser removes every line belonging to the user.
	ClearByUser(ctx context.Context, userID uuid.UUID) error
}
