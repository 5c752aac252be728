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

// cartService implements the CartUsecase interface. Stock checks here are
// advisory only; the authoritative check is the conditional decrement inside
// the order workflow.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart lines with a price-joined subtotal.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return buildCartOutput(items), nil
}

// AddToCart adds a product to the cart, incrementing the line when the
// product is already there.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input *usecase.AddToCartInput) (*usecase.CartOutput, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("cannot add missing product to cart")
		}

		return nil, errors.Wrap(err, "failed to find product for cart add")
	}

	requested := input.Quantity
	existing, err := srv.cartRepo.FindByUserAndProduct(ctx, userID, input.ProductID)
	if err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing cart line")
	}
	if existing != nil {
		requested += existing.Quantity
	}

	if product.Stock < requested {
		srv.log(ctx).Debug("Cart add rejected, not enough stock",
			slog.Any("productID", product.ID), slog.Int("stock", product.Stock), slog.Int("requested", requested))

		return nil, domainerrors.ErrInsufficientStock.
			WithDetails(fmt.Sprintf("only %d of %q available", product.Stock, product.Name))
	}

	if existing != nil {
		if err := srv.cartRepo.AddQuantity(ctx, userID, input.ProductID, input.Quantity); err != nil {
			return nil, errors.Wrap(err, "failed to increment cart line")
		}
	} else {
		line := &entity.CartItem{
			UserID:    userID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		}
		if err := srv.cartRepo.Create(ctx, line); err != nil {
			return nil, errors.Wrap(err, "failed to create cart line")
		}
	}

	return srv.GetCart(ctx, userID)
}

// SetItemQuantity overwrites a line's quantity. Zero or below removes the line.
func (srv *cartService) SetItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*usecase.CartOutput, error) {
	if quantity <= 0 {
		if err := srv.cartRepo.Delete(ctx, userID, itemID); err != nil {
			return nil, errors.Wrap(err, "failed to remove cart line")
		}

		return srv.GetCart(ctx, userID)
	}

	line, err := srv.cartRepo.FindByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound.WrapMessage("cannot update cart line")
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}

	product, err := srv.productRepo.FindByID(ctx, line.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product behind cart line no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find product for cart update")
	}
	if product.Stock < quantity {
		return nil, domainerrors.ErrInsufficientStock.
			WithDetails(fmt.Sprintf("only %d of %q available", product.Stock, product.Name))
	}

	if err := srv.cartRepo.SetQuantity(ctx, userID, itemID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound.WrapMessage("cannot update cart line")
		}

		return nil, errors.Wrap(err, "failed to set cart quantity")
	}

	return srv.GetCart(ctx, userID)
}

// RemoveItem deletes a line. Removing an already-removed line succeeds.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := srv.cartRepo.Delete(ctx, userID, itemID); err != nil {
		return errors.Wrap(err, "failed to remove cart line")
	}

	return nil
}

// ClearCart deletes every line in the user's cart.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cartRepo.ClearByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	srv.log(ctx).Debug("Cart cleared", slog.Any("userID", userID))

	return nil
}

// buildCartOutput sums line totals at the joined product prices.
func buildCartOutput(items []*entity.CartItem) *usecase.CartOutput {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	return &usecase.CartOutput{Items: items, Subtotal: subtotal}
}
