package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"walkey/internal/delivery/api/response"
	"walkey/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler serves route recommendations.
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler.
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// GetRecommendedRoutes handles GET /api/routes?theme=&time=.
func (h *RouteHandler) GetRecommendedRoutes(c echo.Context) error {
	themeID, errTheme := strconv.Atoi(c.QueryParam("theme"))
	minutes, errTime := strconv.Atoi(c.QueryParam("time"))
	if errTheme != nil || errTime != nil {
		return response.InvalidQuery(c, "요청 형식이 올바르지 않습니다")
	}

	routes, err := h.routeUC.GetRecommendedRoutes(c.Request().Context(), themeID, minutes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteResponses(routes))
}

// EnrichRoute handles POST /api/routes/:id/detail-path and reports enrichment failures to the caller.
func (h *RouteHandler) EnrichRoute(c echo.Context) error {
	routeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "잘못된 경로 ID입니다")
	}

	force := false
	if raw := c.QueryParam("force"); raw != "" {
		if force, err = strconv.ParseBool(raw); err != nil {
			return response.InvalidQuery(c, "force 값이 올바르지 않습니다")
		}
	}

	route, err := h.routeUC.EnrichRoute(c.Request().Context(), routeID, force)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteResponse(route))
}
