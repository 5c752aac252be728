package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table. The composite unique index on
// (user_id, product_id) enforces at most one line per pair; re-adds are
// expressed as quantity updates.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `gorm:"not null;check:quantity >= 1"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
