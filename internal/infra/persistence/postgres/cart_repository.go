package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// ListByUser returns the user's cart lines in insertion order, each joined to
// the product's current name, price and image. The order workflow copies the
// price seen here into its order lines.
func (repo *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// FindByUserAndProduct retrieves the single line for a (user, product) pair.
func (repo *cartRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// Create persists a new cart line.
func (repo *cartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("product no longer exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// AddQuantity increments the quantity of an existing (user, product) line.
func (repo *cartRepository) AddQuantity(ctx context.Context, userID, productID uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add cart quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// SetQuantity overwrites the quantity of a line owned by the user.
func (repo *cartRepository) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set cart quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Delete removes a line scoped to its owner. Absent lines are not an error.
func (repo *cartRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart item")
	}

	return nil
}

// FindByID retrieves a line scoped to its owner.
func (repo *cartRepository) FindByID(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	return toCartItemDomain(&itemM), nil
}

// ClearByUser removes every line belonging to the user.
func (repo *cartRepository) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	item := &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
	}
	if data.Product != nil {
		item.ProductName = data.Product.Name
		item.ProductPrice = data.Product.Price
		item.ProductImage = data.Product.Image
	}

	return item
}
