package postgres

import (
	"context"

	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/domain/repository"
	"walkey/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves the oldest user with the given handle.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at").
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and copies the generated ID and timestamps back.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the profile fields of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Updates(map[string]any{
			"username":   user.Username,
			"email":      user.Email,
			"avatar_url": user.AvatarURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// socialAccountRepository implements repository.SocialAccountRepository using GORM.
type socialAccountRepository struct {
	db *gorm.DB
}

// NewSocialAccountRepository is the constructor for socialAccountRepository.
func NewSocialAccountRepository(db *gorm.DB) repository.SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

// FindByProvider retrieves the link for a provider identity.
func (repo *socialAccountRepository) FindByProvider(ctx context.Context, provider entity.ProviderType, providerID string) (*entity.SocialAccount, error) {
	var accountM model.SocialAccountModel
	err := repo.db.WithContext(ctx).
		Where("provider_name = ? AND provider_id = ?", provider.String(), providerID).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSocialAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find social account")
	}

	return toSocialAccountDomain(&accountM), nil
}

// Upsert inserts the link, re-pointing an existing (provider, provider_id) pair to the given user.
func (repo *socialAccountRepository) Upsert(ctx context.Context, account *entity.SocialAccount) error {
	accountM := fromSocialAccountDomain(account)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider_name"}, {Name: "provider_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id"}),
		}).
		Create(accountM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("social account references a missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert social account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		AvatarURL: data.AvatarURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		AvatarURL: data.AvatarURL,
	}
}

func toSocialAccountDomain(data *model.SocialAccountModel) *entity.SocialAccount {
	if data == nil {
		return nil
	}

	return &entity.SocialAccount{
		ID:         data.ID,
		UserID:     data.UserID,
		Provider:   entity.ProviderType(data.ProviderName),
		ProviderID: data.ProviderID,
		CreatedAt:  data.CreatedAt,
	}
}

func fromSocialAccountDomain(data *entity.SocialAccount) *model.SocialAccountModel {
	if data == nil {
		return nil
	}

	return &model.SocialAccountModel{
		ID:           data.ID,
		UserID:       data.UserID,
		ProviderName: data.Provider.String(),
		ProviderID:   data.ProviderID,
	}
}
