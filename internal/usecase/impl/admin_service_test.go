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

func newAdminServiceForTest(t *testing.T, userRepo *MockUserRepository, productRepo *MockProductRepository, orderRepo *MockOrderRepository) usecase.AdminUsecase {
	t.Helper()

	return NewAdminService(AdminServiceParams{
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		Logger:      testLogger(),
	})
}

func TestAdminService_Statistics(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	productRepo := NewMockProductRepository(t)
	orderRepo := NewMockOrderRepository(t)
	service := newAdminServiceForTest(t, userRepo, productRepo, orderRepo)

	ctx := context.Background()

	userRepo.On("Count", ctx).Return(int64(42), nil)
	productRepo.On("Count", ctx).Return(int64(17), nil)
	orderRepo.On("Count", ctx, (*entity.OrderStatus)(nil)).Return(int64(120), nil)
	orderRepo.On("Count", ctx, mock.MatchedBy(func(s *entity.OrderStatus) bool {
		return s != nil && *s == entity.OrderStatusPending
	})).Return(int64(7), nil)
	orderRepo.On("SumCompletedRevenue", ctx).Return(decimal.RequireFromString("1234.50"), nil)

	stats, err := service.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, int64(17), stats.TotalProducts)
	assert.Equal(t, int64(120), stats.TotalOrders)
	assert.Equal(t, int64(7), stats.PendingOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("1234.50")))
}

func TestAdminService_UpdateOrderStatus_ValidMember(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	productRepo := NewMockProductRepository(t)
	orderRepo := NewMockOrderRepository(t)
	service := newAdminServiceForTest(t, userRepo, productRepo, orderRepo)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.On("UpdateStatus", ctx, orderID, entity.OrderStatusShipped).Return(nil)

	require.NoError(t, service.UpdateOrderStatus(ctx, orderID, "shipped"))
}

func TestAdminService_UpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	productRepo := NewMockProductRepository(t)
	orderRepo := NewMockOrderRepository(t)
	service := newAdminServiceForTest(t, userRepo, productRepo, orderRepo)

	err := service.UpdateOrderStatus(context.Background(), uuid.New(), "teleported")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))

	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_UpdateOrderStatus_OrderMissing(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	productRepo := NewMockProductRepository(t)
	orderRepo := NewMockOrderRepository(t)
	service := newAdminServiceForTest(t, userRepo, productRepo, orderRepo)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.On("UpdateStatus", ctx, orderID, entity.OrderStatusCancelled).
		Return(repository.ErrOrderNotFound)

	err := service.UpdateOrderStatus(ctx, orderID, "cancelled")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestAdminService_CreateProduct_RejectsNegativePrice(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	productRepo := NewMockProductRepository(t)
	orderRepo := NewMockOrderRepository(t)
	service := newAdminServiceForTest(t, userRepo, productRepo, orderRepo)

	product, err := service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:  "Broken",
		Price: decimal.RequireFromString("-1.00"),
		Stock: 3,
	})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminService_CreateProduct_Success(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	productRepo := NewMockProductRepository(t)
	orderRepo := NewMockOrderRepository(t)
	service := newAdminServiceForTest(t, userRepo, productRepo, orderRepo)

	ctx := context.Background()
	categoryID := uuid.New()

	productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Product).ID = uuid.New()
		}).
		Return(nil)

	product, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:       "Mug",
		Price:      decimal.RequireFromString("10.00"),
		Stock:      5,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Mug", product.Name)
}

func TestAdminService_ListProducts_IncludesOutOfStock(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	productRepo := NewMockProductRepository(t)
	orderRepo := NewMockOrderRepository(t)
	service := newAdminServiceForTest(t, userRepo, productRepo, orderRepo)

	ctx := context.Background()

	productRepo.On("List", ctx, mock.MatchedBy(func(f repository.ProductFilter) bool {
		return !f.InStock
	})).Return([]*entity.Product{{Name: "Sold out", Stock: 0}}, int64(1), nil)

	out, err := service.ListProducts(ctx, &usecase.ListProductsInput{})
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, 0, out.Products[0].Stock)
}

func TestAdminService_DeleteProduct_Missing(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	productRepo := NewMockProductRepository(t)
	orderRepo := NewMockOrderRepository(t)
	service := newAdminServiceForTest(t, userRepo, productRepo, orderRepo)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.On("Delete", ctx, productID).Return(repository.ErrProductNotFound)

	err := service.DeleteProduct(ctx, productID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
