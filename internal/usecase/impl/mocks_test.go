package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Repository mocks ---

type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, phone string) error {
	return m.Called(ctx, id, name, phone).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, filter)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockProductRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]*entity.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

type MockCartRepository struct {
	mock.Mock
}

func NewMockCartRepository(t *testing.T) *MockCartRepository {
	m := &MockCartRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	args := m.Called(ctx, userID)
	if items, ok := args.Get(0).([]*entity.CartItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	if item, ok := args.Get(0).(*entity.CartItem); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartRepository) AddQuantity(ctx context.Context, userID, productID uuid.UUID, delta int) error {
	return m.Called(ctx, userID, productID, delta).Error(0)
}

func (m *MockCartRepository) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	return m.Called(ctx, userID, itemID, quantity).Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *MockCartRepository) FindByID(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	args := m.Called(ctx, userID, itemID)
	if item, ok := args.Get(0).(*entity.CartItem); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartRepository) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	if orders, ok := args.Get(0).([]*entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) FindByIDForUser(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	return m.Called(ctx, orderID, status).Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, status *entity.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) SumCompletedRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)

	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func NewMockReviewRepository(t *testing.T) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, productID)
	if reviews, ok := args.Get(0).([]*entity.Review); ok {
		return reviews, args.Error(1)
	}

	return nil, args.Error(1)
}

// --- Service mocks ---

type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateToken(userID uuid.UUID, role entity.Role) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) TokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// --- Transaction fakes ---

// fakeRepoFactory hands the workflow the same mocks the test configured.
type fakeRepoFactory struct {
	cart    repository.CartRepository
	order   repository.OrderRepository
	product repository.ProductRepository
}

func (f *fakeRepoFactory) CartRepo() repository.CartRepository       { return f.cart }
func (f *fakeRepoFactory) OrderRepo() repository.OrderRepository     { return f.order }
func (f *fakeRepoFactory) ProductRepo() repository.ProductRepository { return f.product }

// fakeTxManager runs the workflow function directly. The returned error
// stands in for commit-or-rollback: a non-nil result means nothing committed.
type fakeTxManager struct {
	factory repository.RepositoryFactory
	execErr error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.execErr != nil {
		return m.execErr
	}

	return fn(m.factory)
}
