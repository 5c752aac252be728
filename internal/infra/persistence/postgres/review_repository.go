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
	"gorm.io/gorm/clause"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert creates the review for a (user, product) pair, or overwrites the
// rating and comment when one already exists. The conflict target is the
// composite unique index on (product_id, user_id).
func (repo *reviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
		}).
		Create(reviewM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("product no longer exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// ListByProduct returns a product's reviews, newest first, joined to the
// reviewer's display name.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		review := &entity.Review{
			ID:        reviewM.ID,
			ProductID: reviewM.ProductID,
			UserID:    reviewM.UserID,
			Rating:    reviewM.Rating,
			Comment:   reviewM.Comment,
			CreatedAt: reviewM.CreatedAt,
			UpdatedAt: reviewM.UpdatedAt,
		}
		if reviewM.User != nil {
			review.UserName = reviewM.User.Name
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}
