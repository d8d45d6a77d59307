package handler

import (
	"net/http"

	"walkey/internal/delivery/api/response"
	"walkey/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ThemeHandler serves the theme catalog.
type ThemeHandler struct {
	themeUC usecase.ThemeUsecase
}

// NewThemeHandler is the constructor for ThemeHandler.
func NewThemeHandler(themeUC usecase.ThemeUsecase) *ThemeHandler {
	return &ThemeHandler{themeUC: themeUC}
}

// ListThemes handles GET /api/themes.
func (h *ThemeHandler) ListThemes(c echo.Context) error {
	themes, err := h.themeUC.ListThemes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]ThemeResponse, 0, len(themes))
	for _, t := range themes {
		out = append(out, ThemeResponse{ID: t.ID, Title: t.Title, Description: t.Description})
	}

	return response.Success(c, http.StatusOK, out)
}
