package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"walkey/config"
	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/domain/repository"
	mockRepo "walkey/internal/mocks/repository"
	mockService "walkey/internal/mocks/service"
	"walkey/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouteService(t *testing.T, repo repository.RouteRepository, enrich bool) (usecase.RouteUsecase, *mockService.MockPedestrianRouter) {
	t.Helper()

	router := mockService.NewMockPedestrianRouter(t)
	cfg := &config.Config{Recommendation: &config.RecommendationConfig{EnrichDetailPaths: enrich}}

	return NewRouteService(RouteServiceParams{
		Config:    cfg,
		RouteRepo: repo,
		Router:    router,
		Logger:    newDiscardLogger(),
	}), router
}

func routeWithDuration(id int64, minutes int) *entity.Route {
	return &entity.Route{
		ID:            id,
		ThemeID:       1,
		EstimatedTime: minutes,
		DetailPaths:   []entity.LatLng{ptA, ptB},
	}
}

func routeIDs(routes []*entity.Route) []int64 {
	ids := make([]int64, 0, len(routes))
	for _, r := range routes {
		ids = append(ids, r.ID)
	}

	return ids
}

// fakeRouteRepo applies the same filter as the SQL query to an in-memory catalog.
type fakeRouteRepo struct {
	routes  []*entity.Route
	updates map[int64][]entity.LatLng
}

func (f *fakeRouteRepo) FindRoutesByTheme(_ context.Context, themeID, minDuration, maxDuration int) ([]*entity.Route, error) {
	var out []*entity.Route
	for _, r := range f.routes {
		if r.ThemeID == themeID && r.EstimatedTime >= minDuration && r.EstimatedTime <= maxDuration {
			out = append(out, r)
		}
	}

	return out, nil
}

func (f *fakeRouteRepo) FindByID(_ context.Context, id int64) (*entity.Route, error) {
	for _, r := range f.routes {
		if r.ID == id {
			return r, nil
		}
	}

	return nil, repository.ErrRouteNotFound
}

func (f *fakeRouteRepo) UpdateDetailPaths(_ context.Context, id int64, path []entity.LatLng) error {
	if f.updates == nil {
		f.updates = map[int64][]entity.LatLng{}
	}
	f.updates[id] = path

	return nil
}

func TestRankRoutes_StableForTies(t *testing.T) {
	routes := []*entity.Route{
		routeWithDuration(1, 35),
		routeWithDuration(2, 30),
		routeWithDuration(3, 35),
		routeWithDuration(4, 32),
		routeWithDuration(5, 30),
	}

	ranked := rankRoutes(routes, 30, usecase.MaxRecommendedRoutes)

	assert.Equal(t, []int64{2, 5, 4, 1, 3}, routeIDs(ranked))
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, routeIDs(routes), "input must not be reordered")
}

func TestRankRoutes_Cap(t *testing.T) {
	var routes []*entity.Route
	for i := range 8 {
		routes = append(routes, routeWithDuration(int64(i+1), 30+i))
	}

	ranked := rankRoutes(routes, 30, usecase.MaxRecommendedRoutes)

	assert.Len(t, ranked, usecase.MaxRecommendedRoutes)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, routeIDs(ranked))
}

func TestRouteService_GetRecommendedRoutes_QueriesToleranceWindow(t *testing.T) {
	repo := mockRepo.NewMockRouteRepository(t)
	svc, _ := newTestRouteService(t, repo, true)
	ctx := context.Background()

	repo.EXPECT().FindRoutesByTheme(ctx, 3, 30, 40).
		Return([]*entity.Route{routeWithDuration(9, 38), routeWithDuration(8, 31)}, nil).Once()

	routes, err := svc.GetRecommendedRoutes(ctx, 3, 30)

	require.NoError(t, err)
	assert.Equal(t, []int64{8, 9}, routeIDs(routes))
}

func TestRouteService_GetRecommendedRoutes_EndToEnd(t *testing.T) {
	repo := &fakeRouteRepo{routes: []*entity.Route{
		routeWithDuration(28, 28),
		routeWithDuration(35, 35),
		routeWithDuration(42, 42),
	}}
	svc, _ := newTestRouteService(t, repo, true)

	routes, err := svc.GetRecommendedRoutes(context.Background(), 1, 30)

	require.NoError(t, err)
	assert.Equal(t, []int64{35}, routeIDs(routes))
	for _, r := range routes {
		assert.GreaterOrEqual(t, r.EstimatedTime, 30)
		assert.LessOrEqual(t, r.EstimatedTime, 30+usecase.DurationToleranceMinutes)
	}
}

func TestRouteService_GetRecommendedRoutes_Empty(t *testing.T) {
	repo := mockRepo.NewMockRouteRepository(t)
	svc, _ := newTestRouteService(t, repo, true)

	repo.EXPECT().FindRoutesByTheme(mock.Anything, 1, 30, 40).Return(nil, nil).Once()

	routes, err := svc.GetRecommendedRoutes(context.Background(), 1, 30)

	require.NoError(t, err)
	assert.NotNil(t, routes)
	assert.Empty(t, routes)
}

func TestRouteService_GetRecommendedRoutes_ReadFailure(t *testing.T) {
	repo := mockRepo.NewMockRouteRepository(t)
	svc, _ := newTestRouteService(t, repo, true)
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find routes by theme")

	repo.EXPECT().FindRoutesByTheme(mock.Anything, 1, 30, 40).Return(nil, dbErr).Once()

	routes, err := svc.GetRecommendedRoutes(context.Background(), 1, 30)

	assert.Nil(t, routes)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestRouteService_GetRecommendedRoutes_EnrichesMissingDetailPaths(t *testing.T) {
	repo := mockRepo.NewMockRouteRepository(t)
	svc, router := newTestRouteService(t, repo, true)

	route := &entity.Route{
		ID:            11,
		EstimatedTime: 30,
		Paths:         []string{`{"lat":37.5,"lng":127}`, `{"lat":37.51,"lng":127.01}`},
	}
	repo.EXPECT().FindRoutesByTheme(mock.Anything, 1, 30, 40).Return([]*entity.Route{route}, nil).Once()
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).
		Return([]entity.LatLng{ptA, ptM1, ptB}, nil).Once()
	repo.EXPECT().UpdateDetailPaths(mock.Anything, int64(11), []entity.LatLng{ptA, ptM1, ptB}).Return(nil).Once()

	routes, err := svc.GetRecommendedRoutes(context.Background(), 1, 30)

	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []entity.LatLng{ptA, ptM1, ptB}, routes[0].DetailPaths)
}

func TestRouteService_GetRecommendedRoutes_OnlyTopRoutesEnriched(t *testing.T) {
	repo := mockRepo.NewMockRouteRepository(t)
	svc, router := newTestRouteService(t, repo, true)

	var candidates []*entity.Route
	for i := range 6 {
		candidates = append(candidates, &entity.Route{
			ID:            int64(i + 1),
			EstimatedTime: 30 + i,
			Paths:         []string{`{"lat":37.5,"lng":127}`, `{"lat":37.51,"lng":127.01}`},
		})
	}
	repo.EXPECT().FindRoutesByTheme(mock.Anything, 1, 30, 40).Return(candidates, nil).Once()
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).Return([]entity.LatLng{ptA, ptB}, nil).Times(5)
	repo.EXPECT().UpdateDetailPaths(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(5)

	routes, err := svc.GetRecommendedRoutes(context.Background(), 1, 30)

	require.NoError(t, err)
	assert.Len(t, routes, 5)
	assert.False(t, candidates[5].HasDetailPath())
}

func TestRouteService_GetRecommendedRoutes_FailuresAreContainedPerRoute(t *testing.T) {
	repo := mockRepo.NewMockRouteRepository(t)
	svc, router := newTestRouteService(t, repo, true)

	failing := &entity.Route{ID: 1, EstimatedTime: 30, Paths: []string{`{"lat":37.5,"lng":127}`, `{"lat":37.51,"lng":127.01}`}}
	tooShort := &entity.Route{ID: 2, EstimatedTime: 31, Paths: []string{`{"lat":37.5,"lng":127}`, `broken`}}
	unsaved := &entity.Route{ID: 3, EstimatedTime: 32, Paths: []string{`{"lat":37.51,"lng":127.01}`, `{"lat":37.52,"lng":127.02}`}}
	healthy := &entity.Route{ID: 4, EstimatedTime: 33, Paths: []string{`[{"lat":37.52,"lng":127.02},{"lat":37.53,"lng":127.03}]`}}

	repo.EXPECT().FindRoutesByTheme(mock.Anything, 1, 30, 40).
		Return([]*entity.Route{failing, tooShort, unsaved, healthy}, nil).Once()

	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).
		Return(nil, domainerrors.NewRoutingServiceError(errors.New("timeout"), -1)).Once()
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptB, ptC).Return([]entity.LatLng{ptB, ptC}, nil).Once()
	repo.EXPECT().UpdateDetailPaths(mock.Anything, int64(3), []entity.LatLng{ptB, ptC}).
		Return(errors.New("deadlock detected")).Once()
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptC, ptD).Return([]entity.LatLng{ptC, ptD}, nil).Once()
	repo.EXPECT().UpdateDetailPaths(mock.Anything, int64(4), []entity.LatLng{ptC, ptD}).Return(nil).Once()

	routes, err := svc.GetRecommendedRoutes(context.Background(), 1, 30)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, routeIDs(routes))
	assert.False(t, failing.HasDetailPath())
	assert.False(t, tooShort.HasDetailPath())
	assert.False(t, unsaved.HasDetailPath())
	assert.Equal(t, []entity.LatLng{ptC, ptD}, healthy.DetailPaths)
}

func TestRouteService_GetRecommendedRoutes_SkipsEnrichedRoutes(t *testing.T) {
	repo := mockRepo.NewMockRouteRepository(t)
	svc, _ := newTestRouteService(t, repo, true)

	repo.EXPECT().FindRoutesByTheme(mock.Anything, 1, 30, 40).
		Return([]*entity.Route{routeWithDuration(1, 30), routeWithDuration(2, 35)}, nil).Twice()

	for range 2 {
		_, err := svc.GetRecommendedRoutes(context.Background(), 1, 30)
		require.NoError(t, err)
	}
	// The router mock has no expectations: any call fails the test.
}

func TestRouteService_GetRecommendedRoutes_EnrichmentDisabled(t *testing.T) {
	repo := mockRepo.NewMockRouteRepository(t)
	svc, _ := newTestRouteService(t, repo, false)

	route := &entity.Route{ID: 1, EstimatedTime: 30, Paths: []string{`{"lat":37.5,"lng":127}`, `{"lat":37.51,"lng":127.01}`}}
	repo.EXPECT().FindRoutesByTheme(mock.Anything, 1, 30, 40).Return([]*entity.Route{route}, nil).Once()

	routes, err := svc.GetRecommendedRoutes(context.Background(), 1, 30)

	require.NoError(t, err)
	assert.Len(t, routes, 1)
	assert.False(t, route.HasDetailPath())
}

func TestRouteService_GetRecommendedRoutes_EnrichmentSurvivesCancellation(t *testing.T) {
	repo := mockRepo.NewMockRouteRepository(t)
	svc, router := newTestRouteService(t, repo, true)

	ctx, cancel := context.WithCancel(context.Background())
	route := &entity.Route{ID: 1, EstimatedTime: 30, Paths: []string{`{"lat":37.5,"lng":127}`, `{"lat":37.51,"lng":127.01}`}}
	repo.EXPECT().FindRoutesByTheme(mock.Anything, 1, 30, 40).
		RunAndReturn(func(context.Context, int, int, int) ([]*entity.Route, error) {
			cancel()

			return []*entity.Route{route}, nil
		}).Once()
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).
		RunAndReturn(func(ctx context.Context, _, _ entity.LatLng) ([]entity.LatLng, error) {
			assert.NoError(t, ctx.Err())

			return []entity.LatLng{ptA, ptB}, nil
		}).Once()
	repo.EXPECT().UpdateDetailPaths(mock.Anything, int64(1), []entity.LatLng{ptA, ptB}).Return(nil).Once()

	_, err := svc.GetRecommendedRoutes(ctx, 1, 30)

	require.NoError(t, err)
	assert.True(t, route.HasDetailPath())
}

func TestRouteService_EnrichRoute(t *testing.T) {
	twoStops := []string{`{"lat":37.5,"lng":127}`, `{"lat":37.51,"lng":127.01}`}

	t.Run("not found", func(t *testing.T) {
		repo := mockRepo.NewMockRouteRepository(t)
		svc, _ := newTestRouteService(t, repo, true)
		repo.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, repository.ErrRouteNotFound).Once()

		_, err := svc.EnrichRoute(context.Background(), 99, false)

		assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
	})

	t.Run("already enriched without force", func(t *testing.T) {
		repo := mockRepo.NewMockRouteRepository(t)
		svc, _ := newTestRouteService(t, repo, true)
		route := routeWithDuration(1, 30)
		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(route, nil).Once()

		got, err := svc.EnrichRoute(context.Background(), 1, false)

		require.NoError(t, err)
		assert.Same(t, route, got)
	})

	t.Run("force recomputes", func(t *testing.T) {
		repo := mockRepo.NewMockRouteRepository(t)
		svc, router := newTestRouteService(t, repo, true)
		route := &entity.Route{ID: 1, Paths: twoStops, DetailPaths: []entity.LatLng{ptC}}
		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(route, nil).Once()
		router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).Return([]entity.LatLng{ptA, ptM1, ptB}, nil).Once()
		repo.EXPECT().UpdateDetailPaths(mock.Anything, int64(1), []entity.LatLng{ptA, ptM1, ptB}).Return(nil).Once()

		got, err := svc.EnrichRoute(context.Background(), 1, true)

		require.NoError(t, err)
		assert.Equal(t, []entity.LatLng{ptA, ptM1, ptB}, got.DetailPaths)
	})

	t.Run("too few waypoints", func(t *testing.T) {
		repo := mockRepo.NewMockRouteRepository(t)
		svc, _ := newTestRouteService(t, repo, true)
		route := &entity.Route{ID: 1, Paths: []string{`{"lat":37.5,"lng":127}`}}
		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(route, nil).Once()

		_, err := svc.EnrichRoute(context.Background(), 1, false)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidWaypointSequence)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 422, appErr.HTTPCode())
	})

	t.Run("waypoints without coordinates", func(t *testing.T) {
		repo := mockRepo.NewMockRouteRepository(t)
		svc, _ := newTestRouteService(t, repo, true)
		route := &entity.Route{ID: 1, Paths: []string{`{}`, `null`}}
		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(route, nil).Once()

		_, err := svc.EnrichRoute(context.Background(), 1, false)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidWaypointSequence)
		assert.False(t, route.HasDetailPath())
	})

	t.Run("routing failure", func(t *testing.T) {
		repo := mockRepo.NewMockRouteRepository(t)
		svc, router := newTestRouteService(t, repo, true)
		route := &entity.Route{ID: 1, Paths: twoStops}
		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(route, nil).Once()
		router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).Return(nil, errors.New("502")).Once()

		_, err := svc.EnrichRoute(context.Background(), 1, false)

		var rse *domainerrors.RoutingServiceError
		assert.ErrorAs(t, err, &rse)
		assert.False(t, route.HasDetailPath())
	})

	t.Run("persistence failure", func(t *testing.T) {
		repo := mockRepo.NewMockRouteRepository(t)
		svc, router := newTestRouteService(t, repo, true)
		route := &entity.Route{ID: 1, Paths: twoStops}
		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(route, nil).Once()
		router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).Return([]entity.LatLng{ptA, ptB}, nil).Once()
		repo.EXPECT().UpdateDetailPaths(mock.Anything, int64(1), []entity.LatLng{ptA, ptB}).Return(errors.New("read-only")).Once()

		_, err := svc.EnrichRoute(context.Background(), 1, false)

		var pe *domainerrors.PersistenceError
		assert.ErrorAs(t, err, &pe)
		assert.False(t, route.HasDetailPath())
	})
}
