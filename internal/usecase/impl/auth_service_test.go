package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/domain/repository"
	"walkey/internal/domain/service"
	mockRepo "walkey/internal/mocks/repository"
	mockService "walkey/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	userRepo   *mockRepo.MockUserRepository
	socialRepo *mockRepo.MockSocialAccountRepository
	tokens     *mockService.MockTokenService
	google     *mockService.MockOAuthAuthService
}

func newTestAuthService(t *testing.T) (*authService, *authServiceMocks) {
	t.Helper()

	m := &authServiceMocks{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		socialRepo: mockRepo.NewMockSocialAccountRepository(t),
		tokens:     mockService.NewMockTokenService(t),
		google:     mockService.NewMockOAuthAuthService(t),
	}

	svc := NewAuthService(AuthServiceParams{
		TxManager:    m.txManager,
		TokenService: m.tokens,
		GoogleAuth:   m.google,
		Logger:       newDiscardLogger(),
	}).(*authService)

	return svc, m
}

func (m *authServiceMocks) runInTx() {
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).Once()
	m.factory.EXPECT().NewUserRepository().Return(m.userRepo).Once()
	m.factory.EXPECT().NewSocialAccountRepository().Return(m.socialRepo).Once()
}

func googleUser() *service.OAuthUser {
	return &service.OAuthUser{
		ID:            "google-sub-1",
		Email:         "walker@example.com",
		Name:          "walker",
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     "https://example.com/a.png",
		EmailVerified: true,
	}
}

func TestAuthService_GoogleLogin_NewUser(t *testing.T) {
	svc, m := newTestAuthService(t)
	m.runInTx()
	newID := uuid.New()

	m.google.EXPECT().VerifyIDToken(mock.Anything, "id-token").Return(googleUser(), nil).Once()
	m.socialRepo.EXPECT().FindByProvider(mock.Anything, entity.ProviderTypeGoogle, "google-sub-1").
		Return(nil, repository.ErrSocialAccountNotFound).Once()
	m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "walker" && u.Email == "walker@example.com" && u.AvatarURL == "https://example.com/a.png"
	})).RunAndReturn(func(_ context.Context, u *entity.User) error {
		u.ID = newID

		return nil
	}).Once()
	m.socialRepo.EXPECT().Upsert(mock.Anything, &entity.SocialAccount{
		UserID:     newID,
		Provider:   entity.ProviderTypeGoogle,
		ProviderID: "google-sub-1",
	}).Return(nil).Once()
	m.tokens.EXPECT().GenerateAccessToken(newID, "walker").Return("signed", nil).Once()
	m.tokens.EXPECT().GetAccessTokenDuration().Return(7 * 24 * time.Hour).Once()

	result, err := svc.GoogleLogin(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Equal(t, "signed", result.AccessToken)
	assert.Equal(t, 7*24*time.Hour, result.ExpiresIn)
	assert.True(t, result.IsNewUser)
	assert.Equal(t, newID, result.User.ID)
}

func TestAuthService_GoogleLogin_ReturningUser(t *testing.T) {
	svc, m := newTestAuthService(t)
	m.runInTx()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Username: "old name", Email: "walker@example.com"}

	m.google.EXPECT().VerifyIDToken(mock.Anything, "id-token").Return(googleUser(), nil).Once()
	m.socialRepo.EXPECT().FindByProvider(mock.Anything, entity.ProviderTypeGoogle, "google-sub-1").
		Return(&entity.SocialAccount{UserID: userID, Provider: entity.ProviderTypeGoogle, ProviderID: "google-sub-1"}, nil).Once()
	m.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(existing, nil).Once()
	m.userRepo.EXPECT().Update(mock.Anything, existing).Return(nil).Once()
	m.socialRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()
	m.tokens.EXPECT().GenerateAccessToken(userID, "walker").Return("signed", nil).Once()
	m.tokens.EXPECT().GetAccessTokenDuration().Return(time.Hour).Once()

	result, err := svc.GoogleLogin(context.Background(), "id-token")

	require.NoError(t, err)
	assert.False(t, result.IsNewUser)
	assert.Equal(t, "walker", existing.Username)
	assert.Equal(t, "https://example.com/a.png", existing.AvatarURL)
}

func TestAuthService_GoogleLogin_InvalidToken(t *testing.T) {
	svc, m := newTestAuthService(t)
	m.google.EXPECT().VerifyIDToken(mock.Anything, "bad").Return(nil, errors.New("audience mismatch")).Once()

	_, err := svc.GoogleLogin(context.Background(), "bad")

	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_GoogleLogin_TransactionFailure(t *testing.T) {
	svc, m := newTestAuthService(t)
	m.runInTx()
	dbErr := errors.New("unique violation")

	m.google.EXPECT().VerifyIDToken(mock.Anything, "id-token").Return(googleUser(), nil).Once()
	m.socialRepo.EXPECT().FindByProvider(mock.Anything, entity.ProviderTypeGoogle, "google-sub-1").
		Return(nil, repository.ErrSocialAccountNotFound).Once()
	m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr).Once()

	_, err := svc.GoogleLogin(context.Background(), "id-token")

	assert.ErrorIs(t, err, dbErr)
}

func TestApplyOAuthProfile_FallbackUsername(t *testing.T) {
	user := newUserFromOAuth(&service.OAuthUser{ID: "123", Provider: entity.ProviderTypeGoogle})

	assert.Equal(t, "google_123", user.Username)
}
