package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
	for _, status := range valid {
		assert.True(t, status.IsValid(), "%s should be valid", status)
	}

	invalid := []OrderStatus{"", "Pending", "returned", "unknown"}
	for _, status := range invalid {
		assert.False(t, status.IsValid(), "%q should be invalid", status)
	}
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("merchant").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := &OrderItem{
		Quantity: 3,
		Price:    decimal.RequireFromString("9.99"),
	}

	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("29.97")))
}

func TestCartItem_LineTotal(t *testing.T) {
	item := &CartItem{
		Quantity:     4,
		ProductPrice: decimal.RequireFromString("2.50"),
	}

	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("10.00")))
}
