package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. PlaceOrder is the only
// multi-statement write in the system and runs through the transaction
// manager; the reads use a direct repository instance.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder converts the user's cart into an order. Everything happens in
// one transaction: the price snapshot, the order insert, the per-line stock
// decrements and the cart clearing commit together or not at all. A failed
// decrement aborts the whole checkout, so stock never goes negative and the
// cart survives untouched for a retry.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Starting checkout", slog.Any("userID", userID))

	var placedOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		orderRepo := repoFactory.OrderRepo()
		productRepo := repoFactory.ProductRepo()

		cartItems, err := cartRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to read cart for checkout")
		}
		if len(cartItems) == 0 {
			return domainerrors.ErrEmptyCart.WrapMessage("checkout rejected")
		}

		order := buildOrderFromCart(userID, input, cartItems)

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, item := range cartItems {
			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrStockConflict) {
					return srv.classifyStockConflict(ctx, productRepo, item)
				}

				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		if err := cartRepo.ClearByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart after checkout")
		}

		placedOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("userID", userID),
		slog.Any("orderID", placedOrder.ID),
		slog.String("total", placedOrder.TotalAmount.String()))

	return placedOrder, nil
}

// classifyStockConflict turns a rejected decrement into the right domain
// error: the product either disappeared since it was carted, or it exists
// with too little stock.
func (srv *orderService) classifyStockConflict(ctx context.Context, productRepo repository.ProductRepository, item *entity.CartItem) error {
	product, err := productRepo.FindByID(ctx, item.ProductID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductUnavailable.
			WithDetails(fmt.Sprintf("%q was removed from the catalog", item.ProductName))
	}
	if err != nil {
		return errors.Wrap(err, "failed to inspect product after stock conflict")
	}

	return domainerrors.ErrInsufficientStock.
		WithDetails(fmt.Sprintf("only %d of %q available, cart holds %d", product.Stock, product.Name, item.Quantity))
}

// ListOrders returns the user's orders, newest first, with item counts.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one of the user's orders with its line items.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// buildOrderFromCart snapshots the cart into a pending order. Each line
// copies the product price seen by the cart read; the total is the sum of
// those snapshotted lines and is never recomputed afterwards.
func buildOrderFromCart(userID uuid.UUID, input *usecase.PlaceOrderInput, cartItems []*entity.CartItem) *entity.Order {
	total := decimal.Zero
	orderItems := make([]*entity.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		total = total.Add(item.LineTotal())
		orderItems = append(orderItems, &entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.ProductPrice,
		})
	}

	return &entity.Order{
		UserID:          userID,
		TotalAmount:     total,
		ShippingAddress: input.ShippingAddress,
		ShippingCity:    input.ShippingCity,
		ShippingZip:     input.ShippingZip,
		PaymentMethod:   input.PaymentMethod,
		Status:          entity.OrderStatusPending,
		Items:           orderItems,
	}
}
