package impl

import (
	"context"

	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/domain/repository"
	"walkey/internal/usecase"

	"github.com/pkg/errors"
)

type themeService struct {
	themeRepo repository.ThemeRepository
}

// NewThemeService is the constructor for themeService.
func NewThemeService(themeRepo repository.ThemeRepository) usecase.ThemeUsecase {
	return &themeService{themeRepo: themeRepo}
}

// ListThemes returns all themes. An empty catalog is reported as not found.
func (srv *themeService) ListThemes(ctx context.Context) ([]*entity.Theme, error) {
	themes, err := srv.themeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to list themes")
	}
	if len(themes) == 0 {
		return nil, domainerrors.ErrThemeNotFound
	}

	return themes, nil
}
