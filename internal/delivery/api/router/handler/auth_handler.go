package handler

import (
	"net/http"

	"walkey/internal/delivery/api/response"
	"walkey/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles social sign-in.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(authUC usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// GoogleLoginRequest carries the ID token obtained by the client from Google Sign-In.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// GoogleLogin handles POST /api/oauth/google.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "요청 본문이 올바르지 않습니다")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	result, err := h.authUC.GoogleLogin(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if result.IsNewUser {
		status = http.StatusCreated
	}

	return response.Success(c, status, &LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		IsNewUser:   result.IsNewUser,
		User:        newUserResponse(result.User),
	})
}
