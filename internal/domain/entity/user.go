// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password hash never leaves the
// persistence and usecase layers; handlers expose only the public fields.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Name         string    // Display name shown on reviews and admin listings.
	Email        string    // Login identifier, unique across all accounts.
	Phone        string    // Contact phone number.
	PasswordHash string    // bcrypt hash of the account credential.
	Role         Role      // Either RoleCustomer or RoleAdmin.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last profile or credential change.
}
