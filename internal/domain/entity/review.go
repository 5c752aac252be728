package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating and comment left by a user on a product. A user holds
// at most one review per product; re-submission overwrites the prior one.
type Review struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Rating    int // 1 to 5 inclusive.
	Comment   string
	UserName  string // Joined display name, populated on reads.
	CreatedAt time.Time
	UpdatedAt time.Time
}
