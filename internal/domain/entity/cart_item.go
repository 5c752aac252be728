package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a single (user, product, quantity) line preceding order
// creation. A user holds at most one line per product; re-adding the same
// product increments the quantity instead of creating a second line.
type CartItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	CreatedAt time.Time

	// Product snapshot fields populated by the price-joined cart read.
	ProductName  string
	ProductPrice decimal.Decimal
	ProductImage string
}

// LineTotal returns the price of this line at the joined product price.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.ProductPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
