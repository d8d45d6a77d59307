package usecase

import (
	"context"
	"time"

	"walkey/internal/domain/entity"
)

// LoginResult is returned after a successful social login.
type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *entity.User
	IsNewUser   bool
}

// AuthUsecase handles social sign-in.
type AuthUsecase interface {
	// GoogleLogin verifies a Google ID token, creates or refreshes the linked user and issues an access token.
	GoogleLogin(ctx context.Context, idToken string) (*LoginResult, error)
}
