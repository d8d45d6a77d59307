package impl

import (
	"context"
	"log/slog"

	deliverycontext "walkey/internal/delivery/context"
	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/domain/repository"
	"walkey/internal/domain/service"
	"walkey/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthServiceParams holds the dependencies of the auth service.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	GoogleAuth   service.OAuthAuthService
	Logger       *slog.Logger
}

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	googleAuth   service.OAuthAuthService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		googleAuth:   params.GoogleAuth,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GoogleLogin verifies the ID token and signs the user in. The first login creates the user;
// later logins refresh the profile from the provider. The social link is upserted on
// (provider, provider_id) so concurrent first logins converge on one link.
func (srv *authService) GoogleLogin(ctx context.Context, idToken string) (*usecase.LoginResult, error) {
	oauthUser, err := srv.googleAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid
	}

	var (
		user      *entity.User
		isNewUser bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		socialRepo := repoFactory.NewSocialAccountRepository()

		account, err := socialRepo.FindByProvider(ctx, oauthUser.Provider, oauthUser.ID)
		switch {
		case err == nil:
			user, err = userRepo.FindByID(ctx, account.UserID)
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to find linked user")
			}
		case errors.Is(err, repository.ErrSocialAccountNotFound):
		default:
			return errors.Wrap(err, "failed to find social account")
		}

		if user == nil {
			user = newUserFromOAuth(oauthUser)
			if err := userRepo.Create(ctx, user); err != nil {
				return err
			}
			isNewUser = true
		} else {
			applyOAuthProfile(user, oauthUser)
			if err := userRepo.Update(ctx, user); err != nil {
				return err
			}
		}

		return socialRepo.Upsert(ctx, &entity.SocialAccount{
			UserID:     user.ID,
			Provider:   oauthUser.Provider,
			ProviderID: oauthUser.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User signed in with Google",
		slog.String("user_id", user.ID.String()),
		slog.Bool("new_user", isNewUser))

	return &usecase.LoginResult{
		AccessToken: accessToken,
		ExpiresIn:   srv.tokenService.GetAccessTokenDuration(),
		User:        user,
		IsNewUser:   isNewUser,
	}, nil
}

func newUserFromOAuth(oauthUser *service.OAuthUser) *entity.User {
	user := &entity.User{}
	applyOAuthProfile(user, oauthUser)

	return user
}

// applyOAuthProfile copies provider profile fields, keeping existing values the provider left empty.
func applyOAuthProfile(user *entity.User, oauthUser *service.OAuthUser) {
	if oauthUser.Name != "" {
		user.Username = oauthUser.Name
	}
	if oauthUser.Email != "" {
		user.Email = oauthUser.Email
	}
	if oauthUser.AvatarURL != "" {
		user.AvatarURL = oauthUser.AvatarURL
	}
	if user.Username == "" {
		user.Username = oauthUser.Provider.String() + "_" + oauthUser.ID
	}
}
