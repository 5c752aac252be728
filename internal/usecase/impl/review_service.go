package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReview creates or overwrites the user's review for a product.
func (srv *reviewService) SubmitReview(ctx context.Context, userID uuid.UUID, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("cannot review missing product")
		}

		return nil, errors.Wrap(err, "failed to find product for review")
	}

	review := &entity.Review{
		ProductID: input.ProductID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := srv.reviewRepo.Upsert(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to store review")
	}

	if user, err := srv.userRepo.FindByID(ctx, userID); err == nil {
		review.UserName = user.Name
	}

	srv.log(ctx).Debug("Review stored", slog.Any("userID", userID), slog.Any("productID", input.ProductID))

	return review, nil
}

// ListProductReviews returns a product's reviews with their average rating.
func (srv *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID) (*usecase.ProductReviewsOutput, error) {
	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ProductReviewsOutput{
		Reviews:       reviews,
		AverageRating: averageRating(reviews),
	}, nil
}

// averageRating computes the mean rating rounded to one decimal place.
// An unreviewed product averages zero.
func averageRating(reviews []*entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}
