package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. TotalAmount is written once at
// creation and never updated; status is the only mutable column.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ShippingAddress string          `gorm:"type:varchar(255);not null"`
	ShippingCity    string          `gorm:"type:varchar(100);not null"`
	ShippingZip     string          `gorm:"type:varchar(20);not null"`
	PaymentMethod   string          `gorm:"type:varchar(50);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
	User  *UserModel       `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Price is the unit price
// snapshot copied from the product at order time.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null;check:quantity >= 1"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
