package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput defines the data required to rate a product.
type SubmitReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// ProductReviewsOutput bundles a product's reviews with their average
// rating, rounded to one decimal place.
type ProductReviewsOutput struct {
	Reviews       []*entity.Review
	AverageRating float64
}

// ReviewUsecase defines the interface for product review operations.
type ReviewUsecase interface {
	// SubmitReview creates or overwrites the user's review for a product.
	SubmitReview(ctx context.Context, userID uuid.UUID, input *SubmitReviewInput) (*entity.Review, error)

	// ListProductReviews returns a product's reviews, newest first.
	ListProductReviews(ctx context.Context, productID uuid.UUID) (*ProductReviewsOutput, error)
}
