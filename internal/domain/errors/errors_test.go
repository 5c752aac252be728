package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrInsufficientStock.WithDetails("only 1 left for Mug")

	assert.True(t, errors.Is(err, ErrInsufficientStock))
	assert.Equal(t, "only 1 left for Mug", err.Details())

	// The predefined singleton stays untouched.
	assert.Empty(t, ErrInsufficientStock.Details())
}

func TestBaseError_WithDetailsIdentitySurvivesWrapping(t *testing.T) {
	err := errors.Wrap(ErrProductUnavailable.WithDetails("product removed"), "place order")

	assert.True(t, errors.Is(err, ErrProductUnavailable))
	assert.False(t, errors.Is(err, ErrInsufficientStock))
}

func TestBaseError_IsMatchesByErrorCode(t *testing.T) {
	assert.True(t, errors.Is(ErrEmptyCart, ErrEmptyCart))
	assert.False(t, errors.Is(ErrEmptyCart, ErrCartItemNotFound))
	assert.False(t, errors.Is(errors.New("cart is empty"), ErrEmptyCart))
}

func TestCheckoutErrors_HTTPMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrInsufficientStock.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_STOCK", ErrInsufficientStock.ErrorCode())

	// A product vanishing mid-checkout is a conflict, not a bad request.
	assert.Equal(t, http.StatusConflict, ErrProductUnavailable.HTTPCode())
	assert.Equal(t, "PRODUCT_UNAVAILABLE", ErrProductUnavailable.ErrorCode())
}
