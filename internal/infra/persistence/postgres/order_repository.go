package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists an order together with its line items. GORM inserts the
// association rows with the parent; when called through the transaction
// manager everything shares the workflow's transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductUnavailable.WrapMessage("order references a missing product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// ListByUser returns the user's orders, newest first, annotated with item counts.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	type orderRow struct {
		model.OrderModel
		ItemCount int
	}

	var rows []*orderRow
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("orders.*, (SELECT COUNT(*) FROM order_items WHERE order_items.order_id = orders.id) AS item_count").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		order := toOrderDomain(&row.OrderModel)
		order.ItemCount = row.ItemCount
		orders = append(orders, order)
	}

	return orders, nil
}

// FindByIDForUser retrieves one order with its line items, scoped to the owner.
func (repo *orderRepository) FindByIDForUser(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListAll returns every order, newest first, joined to the customer identity.
func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order := toOrderDomain(orderM)
		if orderM.User != nil {
			order.CustomerName = orderM.User.Name
			order.CustomerEmail = orderM.User.Email
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// UpdateStatus replaces an order's status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Count returns the total number of orders, optionally restricted to one status.
func (repo *orderRepository) Count(ctx context.Context, status *entity.OrderStatus) (int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// SumCompletedRevenue returns the total amount across completed orders.
func (repo *orderRepository) SumCompletedRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("SUM(total_amount)").
		Where("status = ?", entity.OrderStatusCompleted.String()).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum completed revenue")
	}
	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		ShippingCity:    data.ShippingCity,
		ShippingZip:     data.ShippingZip,
		PaymentMethod:   data.PaymentMethod,
		Status:          entity.OrderStatus(data.Status),
		CreatedAt:       data.CreatedAt,
	}

	for _, itemM := range data.Items {
		item := &entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			Price:     itemM.Price,
		}
		if itemM.Product != nil {
			item.ProductName = itemM.Product.Name
			item.ProductImage = itemM.Product.Image
		}
		order.Items = append(order.Items, item)
	}
	order.ItemCount = len(order.Items)

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:              order.ID,
		UserID:          order.UserID,
		TotalAmount:     order.TotalAmount,
		ShippingAddress: order.ShippingAddress,
		ShippingCity:    order.ShippingCity,
		ShippingZip:     order.ShippingZip,
		PaymentMethod:   order.PaymentMethod,
		Status:          order.Status.String(),
	}

	for _, item := range order.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return orderM
}
