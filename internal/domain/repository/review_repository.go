// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
)

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Upsert creates the review for a (user, product) pair, or overwrites
	// the rating and comment when one already exists.
	Upsert(ctx context.Context, review *entity.Review) error

	// ListByProduct returns a product's reviews, newest first, joined to the
	// reviewer's display name.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
