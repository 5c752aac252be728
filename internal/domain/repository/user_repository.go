// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the standard operations for account persistence.
type UserRepository interface {
	// Create persists a new user account.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Returns ErrUserNotFound if no account uses the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile overwrites the mutable profile fields (name, phone).
	UpdateProfile(ctx context.Context, id uuid.UUID, name, phone string) error

	// UpdatePassword replaces the stored credential hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// ListAll returns every account, newest first. Back-office only.
	ListAll(ctx context.Context) ([]*entity.User, error)

	// Count returns the total number of accounts.
	Count(ctx context.Context) (int64, error)
}
