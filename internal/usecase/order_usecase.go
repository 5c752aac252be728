package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput carries the shipping and payment details for checkout.
// The order's contents always come from the server-side cart, never from
// the request body.
type PlaceOrderInput struct {
	ShippingAddress string
	ShippingCity    string
	ShippingZip     string
	PaymentMethod   string
}

// OrderUsecase defines the interface for the checkout workflow and order
// history reads.
type OrderUsecase interface {
	// PlaceOrder converts the user's cart into an order atomically: price
	// snapshot, stock decrement and cart clearing all commit or all roll
	// back together.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// ListOrders returns the user's orders, newest first, with item counts.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns one of the user's orders with its line items. Orders
	// owned by other users are reported as not found.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
}
