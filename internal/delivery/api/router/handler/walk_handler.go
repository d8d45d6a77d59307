package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"walkey/internal/delivery/api/middleware"
	"walkey/internal/delivery/api/response"
	"walkey/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WalkHandlerParams holds dependencies for WalkHandler, injected by Fx.
type WalkHandlerParams struct {
	fx.In

	WalkUC usecase.WalkUsecase
	Logger *slog.Logger
}

// WalkHandler holds dependencies for walk session handlers.
type WalkHandler struct {
	walkUC usecase.WalkUsecase
	logger *slog.Logger
}

// NewWalkHandler is the constructor for WalkHandler.
func NewWalkHandler(params WalkHandlerParams) *WalkHandler {
	return &WalkHandler{
		walkUC: params.WalkUC,
		logger: params.Logger,
	}
}

// StartSessionRequest is the body of POST /api/users/sessions.
type StartSessionRequest struct {
	RouteID int64 `json:"route_id" validate:"required,gt=0"`
}

// EndSessionRequest is the body of PATCH /api/users/sessions/:id/end.
type EndSessionRequest struct {
	ActualDistance float64 `json:"actual_distance" validate:"gte=0"`
	ActualDuration int     `json:"actual_duration" validate:"gte=0"`
}

// StartSession opens a walk session for the caller.
func (h *WalkHandler) StartSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "토큰의 사용자 정보가 올바르지 않습니다")
	}

	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "요청 본문이 올바르지 않습니다")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	session, err := h.walkUC.StartSession(c.Request().Context(), userID, req.RouteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSessionResponse(session))
}

// EndSession closes one of the caller's sessions.
func (h *WalkHandler) EndSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "토큰의 사용자 정보가 올바르지 않습니다")
	}

	sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "잘못된 세션 ID입니다")
	}

	var req EndSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "요청 본문이 올바르지 않습니다")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	session, err := h.walkUC.EndSession(c.Request().Context(), userID, sessionID, req.ActualDistance, req.ActualDuration)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// GetUserSessions returns the public walk history of a user.
func (h *WalkHandler) GetUserSessions(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.InvalidQuery(c, "사용자 이름이 필요합니다")
	}

	history, err := h.walkUC.GetUserSessions(c.Request().Context(), username)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newWalkHistoryResponse(history))
}
