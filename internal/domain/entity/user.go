// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. It contains only identity information.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username  string    // Public handle, used in session history URLs. Not unique.
	Email     string    // Contact email reported by the login provider, may be empty.
	AvatarURL string    // Profile picture URL.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// SocialAccount links a User to an identity at an external login provider.
// The pair (Provider, ProviderID) is unique.
type SocialAccount struct {
	ID         uuid.UUID    // The unique ID for this link record.
	UserID     uuid.UUID    // Links this identity to the User it belongs to.
	Provider   ProviderType // The provider that issued the identity.
	ProviderID string       // The user's unique ID at the provider (e.g., Google's 'sub' claim).
	CreatedAt  time.Time    // Timestamp of when the identity was first linked.
}
