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

const defaultCatalogPageSize = 12

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ReviewRepo  repository.ReviewRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		reviewRepo:  params.ReviewRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns a page of in-stock products. Out-of-stock products
// exist only in the admin listing.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
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
		InStock:    true,
		Page:       page,
		Limit:      limit,
	}

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
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

// GetProduct returns a product together with its reviews and their average.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetailOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		srv.log(ctx).Error("Failed to load reviews for product detail", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return &usecase.ProductDetailOutput{
		Product:       product,
		Reviews:       reviews,
		AverageRating: averageRating(reviews),
	}, nil
}

// ListCategories returns all categories ordered by name.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
