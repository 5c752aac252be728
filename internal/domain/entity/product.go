package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. Price is a non-negative decimal;
// Stock is the count of sellable units and is decremented on order creation.
type Product struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Price        decimal.Decimal // Unit price, two fractional digits.
	Stock        int
	CategoryID   uuid.UUID
	CategoryName string // Denormalized category name, populated on reads.
	Image        string // URL of the product image.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category groups products for catalog filtering.
type Category struct {
	ID   uuid.UUID
	Name string
}
