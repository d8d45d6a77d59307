package handler

import (
	"time"

	"walkey/internal/domain/entity"
	"walkey/internal/usecase"
)

// RouteResponse is the public shape of a walking route.
type RouteResponse struct {
	ID            int64           `json:"id"`
	ThemeID       int             `json:"theme_id"`
	ThemeTitle    string          `json:"theme_title,omitempty"`
	Name          string          `json:"name"`
	EstimatedTime int             `json:"estimated_time"`
	TotalDistance float64         `json:"total_distance"`
	ThumbnailURL  string          `json:"thumbnail_url"`
	Paths         []entity.LatLng `json:"paths"`
	DetailPaths   []entity.LatLng `json:"detail_paths"`
}

func newRouteResponse(route *entity.Route) *RouteResponse {
	if route == nil {
		return nil
	}

	// Unparseable waypoints are left out, as the enricher does.
	paths, _ := route.Waypoints()
	detail := route.DetailPaths
	if detail == nil {
		detail = []entity.LatLng{}
	}

	return &RouteResponse{
		ID:            route.ID,
		ThemeID:       route.ThemeID,
		ThemeTitle:    route.ThemeTitle,
		Name:          route.Name,
		EstimatedTime: route.EstimatedTime,
		TotalDistance: route.TotalDistance,
		ThumbnailURL:  route.ThumbnailURL,
		Paths:         paths,
		DetailPaths:   detail,
	}
}

func newRouteResponses(routes []*entity.Route) []*RouteResponse {
	out := make([]*RouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, newRouteResponse(r))
	}

	return out
}

// ThemeResponse is the public shape of a theme.
type ThemeResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

// SessionResponse is the public shape of a walk session.
type SessionResponse struct {
	ID             int64          `json:"id"`
	RouteID        int64          `json:"route_id"`
	Route          *RouteResponse `json:"route,omitempty"`
	StartTime      time.Time      `json:"start_time"`
	EndTime        *time.Time     `json:"end_time"`
	ActualDistance float64        `json:"actual_distance"`
	ActualDuration int            `json:"actual_duration"`
}

func newSessionResponse(session *entity.WalkSession) *SessionResponse {
	return &SessionResponse{
		ID:             session.ID,
		RouteID:        session.RouteID,
		Route:          newRouteResponse(session.Route),
		StartTime:      session.StartTime,
		EndTime:        session.EndTime,
		ActualDistance: session.ActualDistance,
		ActualDuration: session.ActualDuration,
	}
}

// WalkHistoryResponse groups a user's sessions with their totals.
type WalkHistoryResponse struct {
	SessionInfo entity.WalkSummary `json:"session_info"`
	Sessions    []*SessionResponse `json:"sessions"`
}

func newWalkHistoryResponse(history *usecase.WalkHistory) *WalkHistoryResponse {
	sessions := make([]*SessionResponse, 0, len(history.Sessions))
	for _, s := range history.Sessions {
		sessions = append(sessions, newSessionResponse(s))
	}

	return &WalkHistoryResponse{
		SessionInfo: history.Summary,
		Sessions:    sessions,
	}
}

// LoginResponse is returned after a successful social login.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"` // seconds
	IsNewUser   bool          `json:"is_new_user"`
	User        *UserResponse `json:"user"`
}
