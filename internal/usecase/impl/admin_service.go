package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface. Role enforcement
// happens in the delivery layer; this service assumes an admin caller.
type adminService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Statistics returns the dashboard aggregates. The five reads are
// independent; slight skew between them is acceptable for a dashboard.
func (srv *adminService) Statistics(ctx context.Context) (*usecase.StatisticsOutput, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalProducts, err := srv.productRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	totalOrders, err := srv.orderRepo.Count(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	pendingStatus := entity.OrderStatusPending
	pendingOrders, err := srv.orderRepo.Count(ctx, &pendingStatus)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending orders")
	}

	totalRevenue, err := srv.orderRepo.SumCompletedRevenue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	return &usecase.StatisticsOutput{
		TotalUsers:    totalUsers,
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		PendingOrders: pendingOrders,
		TotalRevenue:  totalRevenue,
	}, nil
}

// ListProducts returns a page of products including out-of-stock ones.
func (srv *adminService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultCatalogPageSize
	}

	filter := repository.ProductFilter{
		CategoryID: input.CategoryID,
		Search:     input.Search,
		InStock:    false,
		Page:       page,
		Limit:      limit,
	}

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products for admin")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.ListProductsOutput{
		Products:   products,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// CreateProduct adds a product to the catalog.
func (srv *adminService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Price.IsNegative() || input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price and stock must be non-negative")
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		Image:       input.Image,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct overwrites a product's catalog fields.
func (srv *adminService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if input.Price.IsNegative() || input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price and stock must be non-negative")
	}

	product := &entity.Product{
		ID:          productID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		Image:       input.Image,
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product update failed")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	updated, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload product after update")
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", productID))

	return updated, nil
}

// DeleteProduct removes a product from the catalog.
func (srv *adminService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product delete failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// ListOrders returns every order with the customer's name and email.
func (srv *adminService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// UpdateOrderStatus replaces an order's status. Any member of the status
// enum is accepted from any current status; there is no transition table.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	orderStatus := entity.OrderStatus(status)
	if !orderStatus.IsValid() {
		return domainerrors.ErrInvalidOrderStatus.WrapMessage("status update rejected")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, orderStatus); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound.WrapMessage("status update failed")
		}

		return errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.String("status", status))

	return nil
}

// ListUsers returns every account, newest first.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListCategories returns all categories ordered by name.
func (srv *adminService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
