package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a durable record of a checked-out cart. TotalAmount is computed
// once at creation from the snapshotted line prices and is never recomputed.
// Status is the only field that mutates after creation, and only through the
// admin back-office.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TotalAmount     decimal.Decimal
	ShippingAddress string
	ShippingCity    string
	ShippingZip     string
	PaymentMethod   string // Recorded tag only; settlement happens elsewhere.
	Status          OrderStatus
	Items           []*OrderItem
	ItemCount       int // Populated on list reads.
	CustomerName    string
	CustomerEmail   string
	CreatedAt       time.Time
}

// OrderItem is one line of an order. Price is the unit price copied from the
// product at order time, immune to later catalog price changes.
type OrderItem struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	ProductID    uuid.UUID
	Quantity     int
	Price        decimal.Decimal
	ProductName  string // Joined on detail reads.
	ProductImage string
}

// LineTotal returns quantity times the snapshotted unit price.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
