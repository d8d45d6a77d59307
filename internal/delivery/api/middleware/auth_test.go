package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"walkey/internal/domain/service"
	mockService "walkey/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(tokens *mockService.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "subject is not a uuid",
			header: "Bearer odd",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateToken("odd").
					Return(&service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "42"}}, nil).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateToken("good").Return(&service.Claims{
					Username:         "walker",
					Type:             service.TokenTypeAccess,
					RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
				}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewAuthMiddleware(tokens).Authenticate(func(c echo.Context) error {
				got, ok := GetUserID(c)
				require.True(t, ok)
				assert.Equal(t, userID, got)

				return c.NoContent(http.StatusNoContent)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
