package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartServiceForTest(t *testing.T, cartRepo *MockCartRepository, productRepo *MockProductRepository) usecase.CartUsecase {
	t.Helper()

	return NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      testLogger(),
	})
}

func TestCartService_GetCart_Subtotal(t *testing.T) {
	cartRepo := NewMockCartRepository(t)
	productRepo := NewMockProductRepository(t)
	service := newCartServiceForTest(t, cartRepo, productRepo)

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.On("ListByUser", ctx, userID).Return([]*entity.CartItem{
		{Quantity: 2, ProductPrice: decimal.RequireFromString("10.00")},
		{Quantity: 3, ProductPrice: decimal.RequireFromString("2.50")},
	}, nil)

	cart, err := service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.True(t, cart.Subtotal.Equal(decimal.RequireFromString("27.50")),
		"subtotal mismatch, got %s", cart.Subtotal)
}

func TestCartService_AddToCart_NewLine(t *testing.T) {
	cartRepo := NewMockCartRepository(t)
	productRepo := NewMockProductRepository(t)
	service := newCartServiceForTest(t, cartRepo, productRepo)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	productRepo.On("FindByID", ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Mug", Stock: 10, Price: decimal.RequireFromString("10.00")}, nil)
	cartRepo.On("FindByUserAndProduct", ctx, userID, productID).Return(nil, repository.ErrCartItemNotFound)
	cartRepo.On("Create", ctx, mock.AnythingOfType("*entity.CartItem")).Return(nil)
	cartRepo.On("ListByUser", ctx, userID).Return([]*entity.CartItem{
		{ProductID: productID, Quantity: 2, ProductPrice: decimal.RequireFromString("10.00")},
	}, nil)

	cart, err := service.AddToCart(ctx, userID, &usecase.AddToCartInput{ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	assert.True(t, cart.Subtotal.Equal(decimal.RequireFromString("20.00")))
}

func TestCartService_AddToCart_IncrementsExistingLine(t *testing.T) {
	cartRepo := NewMockCartRepository(t)
	productRepo := NewMockProductRepository(t)
	service := newCartServiceForTest(t, cartRepo, productRepo)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	productRepo.On("FindByID", ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Mug", Stock: 10}, nil)
	cartRepo.On("FindByUserAndProduct", ctx, userID, productID).
		Return(&entity.CartItem{UserID: userID, ProductID: productID, Quantity: 2}, nil)
	cartRepo.On("AddQuantity", ctx, userID, productID, 3).Return(nil)
	cartRepo.On("ListByUser", ctx, userID).Return([]*entity.CartItem{
		{ProductID: productID, Quantity: 5},
	}, nil)

	cart, err := service.AddToCart(ctx, userID, &usecase.AddToCartInput{ProductID: productID, Quantity: 3})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCartService_AddToCart_InsufficientStockCountsExistingQuantity(t *testing.T) {
	cartRepo := NewMockCartRepository(t)
	productRepo := NewMockProductRepository(t)
	service := newCartServiceForTest(t, cartRepo, productRepo)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	// 4 in stock, 3 already carted: adding 2 more must fail.
	productRepo.On("FindByID", ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Mug", Stock: 4}, nil)
	cartRepo.On("FindByUserAndProduct", ctx, userID, productID).
		Return(&entity.CartItem{UserID: userID, ProductID: productID, Quantity: 3}, nil)

	cart, err := service.AddToCart(ctx, userID, &usecase.AddToCartInput{ProductID: productID, Quantity: 2})
	require.Error(t, err)
	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestCartService_AddToCart_ProductMissing(t *testing.T) {
	cartRepo := NewMockCartRepository(t)
	productRepo := NewMockProductRepository(t)
	service := newCartServiceForTest(t, cartRepo, productRepo)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	productRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	cart, err := service.AddToCart(ctx, userID, &usecase.AddToCartInput{ProductID: productID, Quantity: 1})
	require.Error(t, err)
	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_AddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	cartRepo := NewMockCartRepository(t)
	productRepo := NewMockProductRepository(t)
	service := newCartServiceForTest(t, cartRepo, productRepo)

	cart, err := service.AddToCart(context.Background(), uuid.New(), &usecase.AddToCartInput{ProductID: uuid.New(), Quantity: 0})
	require.Error(t, err)
	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_SetItemQuantity_ZeroDeletesLine(t *testing.T) {
	cartRepo := NewMockCartRepository(t)
	productRepo := NewMockProductRepository(t)
	service := newCartServiceForTest(t, cartRepo, productRepo)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	cartRepo.On("Delete", ctx, userID, itemID).Return(nil)
	cartRepo.On("ListByUser", ctx, userID).Return([]*entity.CartItem{}, nil)

	cart, err := service.SetItemQuantity(ctx, userID, itemID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Subtotal.IsZero())

	cartRepo.AssertNotCalled(t, "SetQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_SetItemQuantity_NotOwned(t *testing.T) {
	cartRepo := NewMockCartRepository(t)
	productRepo := NewMockProductRepository(t)
	service := newCartServiceForTest(t, cartRepo, productRepo)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	cartRepo.On("FindByID", ctx, userID, itemID).Return(nil, repository.ErrCartItemNotFound)

	cart, err := service.SetItemQuantity(ctx, userID, itemID, 2)
	require.Error(t, err)
	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_RemoveItem_Idempotent(t *testing.T) {
	cartRepo := NewMockCartRepository(t)
	productRepo := NewMockProductRepository(t)
	service := newCartServiceForTest(t, cartRepo, productRepo)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	// The repository reports success even when the line is already gone.
	cartRepo.On("Delete", ctx, userID, itemID).Return(nil).Twice()

	require.NoError(t, service.RemoveItem(ctx, userID, itemID))
	require.NoError(t, service.RemoveItem(ctx, userID, itemID))
}

func TestCartService_ClearCart(t *testing.T) {
	cartRepo := NewMockCartRepository(t)
	productRepo := NewMockProductRepository(t)
	service := newCartServiceForTest(t, cartRepo, productRepo)

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.On("ClearByUser", ctx, userID).Return(nil)

	require.NoError(t, service.ClearCart(ctx, userID))
}
