package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddToCartInput defines the data required to add a product to the cart.
type AddToCartInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartOutput is the user's cart: lines in insertion order plus the subtotal
// computed from current product prices.
type CartOutput struct {
	Items    []*entity.CartItem
	Subtotal decimal.Decimal
}

// CartUsecase defines the interface for cart operations. Every operation is
// scoped to the owning user; items belonging to other users are invisible.
type CartUsecase interface {
	// GetCart returns the user's cart lines with a price-joined subtotal.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)

	// AddToCart adds a product to the cart, or increments the existing line
	// for the same product.
	AddToCart(ctx context.Context, userID uuid.UUID, input *AddToCartInput) (*CartOutput, error)

	// SetItemQuantity overwrites a line's quantity. Zero or negative removes
	// the line.
	SetItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*CartOutput, error)

	// RemoveItem deletes a line. Removing an absent line is not an error.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error

	// ClearCart deletes every line in the user's cart.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
