// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"walkey/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrSocialAccountNotFound is returned when no account is linked to a provider identity.
var ErrSocialAccountNotFound = errors.New("social account not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their public handle.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}

// SocialAccountRepository manages the links between users and login providers.
type SocialAccountRepository interface {
	// FindByProvider retrieves the link for a provider identity.
	FindByProvider(ctx context.Context, provider entity.ProviderType, providerID string) (*entity.SocialAccount, error)

	// Upsert inserts the link or, when the provider identity is already linked, re-points it to account.UserID.
	Upsert(ctx context.Context, account *entity.SocialAccount) error
}
