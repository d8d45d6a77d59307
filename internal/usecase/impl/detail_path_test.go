package impl

import (
	"context"
	"errors"
	"math"
	"testing"

	"walkey/internal/domain/entity"
	domainerrors "walkey/internal/domain/errors"
	mockService "walkey/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	ptA  = entity.LatLng{Lat: 37.500, Lng: 127.000}
	ptB  = entity.LatLng{Lat: 37.510, Lng: 127.010}
	ptC  = entity.LatLng{Lat: 37.520, Lng: 127.020}
	ptD  = entity.LatLng{Lat: 37.530, Lng: 127.030}
	ptM1 = entity.LatLng{Lat: 37.503, Lng: 127.003}
	ptM2 = entity.LatLng{Lat: 37.506, Lng: 127.006}
	ptM3 = entity.LatLng{Lat: 37.515, Lng: 127.015}
)

func TestMergeDetailPath_InteriorPoints(t *testing.T) {
	router := mockService.NewMockPedestrianRouter(t)
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).
		Return([]entity.LatLng{ptA, ptM1, ptM2, ptB}, nil).Once()

	got, err := MergeDetailPath(context.Background(), router, []entity.LatLng{ptA, ptB})

	require.NoError(t, err)
	assert.Equal(t, []entity.LatLng{ptA, ptM1, ptM2, ptB}, got)
}

func TestMergeDetailPath_DuplicateOfStartIsNotInterior(t *testing.T) {
	router := mockService.NewMockPedestrianRouter(t)
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).
		Return([]entity.LatLng{ptA, ptA, ptB}, nil).Once()

	got, err := MergeDetailPath(context.Background(), router, []entity.LatLng{ptA, ptB})

	require.NoError(t, err)
	assert.Equal(t, []entity.LatLng{ptA, ptB}, got)
}

func TestMergeDetailPath_ShortSegments(t *testing.T) {
	for name, segment := range map[string][]entity.LatLng{
		"two points": {ptA, ptB},
		"one point":  {ptA},
		"empty":      {},
	} {
		t.Run(name, func(t *testing.T) {
			router := mockService.NewMockPedestrianRouter(t)
			router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).Return(segment, nil).Once()

			got, err := MergeDetailPath(context.Background(), router, []entity.LatLng{ptA, ptB})

			require.NoError(t, err)
			assert.Equal(t, []entity.LatLng{ptA, ptB}, got)
		})
	}
}

func TestMergeDetailPath_SegmentBoundaryKeepsStopOnce(t *testing.T) {
	router := mockService.NewMockPedestrianRouter(t)
	// A->B re-touches B before its terminal point; B->C starts with B twice.
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).
		Return([]entity.LatLng{ptA, ptM1, ptB, ptB}, nil).Once()
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptB, ptC).
		Return([]entity.LatLng{ptB, ptB, ptM3, ptC}, nil).Once()

	got, err := MergeDetailPath(context.Background(), router, []entity.LatLng{ptA, ptB, ptC})

	require.NoError(t, err)
	assert.Equal(t, []entity.LatLng{ptA, ptM1, ptB, ptM3, ptC}, got)

	stopCount := 0
	for _, p := range got {
		if p.Equal(ptB) {
			stopCount++
		}
	}
	assert.Equal(t, 1, stopCount)
}

func TestMergeDetailPath_NoConsecutiveDuplicates(t *testing.T) {
	router := mockService.NewMockPedestrianRouter(t)
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).
		Return([]entity.LatLng{ptA, ptM1, ptM1, ptM2, ptM2, ptB}, nil).Once()
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptB, ptC).
		Return([]entity.LatLng{ptB, ptM3, ptM3, ptC}, nil).Once()

	got, err := MergeDetailPath(context.Background(), router, []entity.LatLng{ptA, ptB, ptC})

	require.NoError(t, err)
	assert.Equal(t, []entity.LatLng{ptA, ptM1, ptM2, ptB, ptM3, ptC}, got)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Equal(got[i-1]), "duplicate at %d", i)
	}
}

func TestMergeDetailPath_RoutingFailureDiscardsEverything(t *testing.T) {
	router := mockService.NewMockPedestrianRouter(t)
	upstream := errors.New("tmap responded Bad Gateway")
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).
		Return([]entity.LatLng{ptA, ptM1, ptB}, nil).Once()
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptB, ptC).
		Return(nil, upstream).Once()
	// ptC -> ptD must never be requested.

	got, err := MergeDetailPath(context.Background(), router, []entity.LatLng{ptA, ptB, ptC, ptD})

	assert.Nil(t, got)
	var rse *domainerrors.RoutingServiceError
	require.ErrorAs(t, err, &rse)
	assert.Equal(t, 1, rse.Segment())
	assert.ErrorIs(t, err, upstream)
}

func TestMergeDetailPath_RewrapsRouterRoutingError(t *testing.T) {
	router := mockService.NewMockPedestrianRouter(t)
	cause := context.DeadlineExceeded
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).
		Return(nil, domainerrors.NewRoutingServiceError(cause, -1)).Once()

	_, err := MergeDetailPath(context.Background(), router, []entity.LatLng{ptA, ptB})

	var rse *domainerrors.RoutingServiceError
	require.ErrorAs(t, err, &rse)
	assert.Equal(t, 0, rse.Segment())
	assert.ErrorIs(t, err, cause)
}

func TestMergeDetailPath_InvalidWaypoint(t *testing.T) {
	router := mockService.NewMockPedestrianRouter(t)
	stops := []entity.LatLng{ptA, {Lat: math.NaN(), Lng: 127}, ptC}

	_, err := MergeDetailPath(context.Background(), router, stops)

	var iwe *domainerrors.InvalidWaypointError
	require.ErrorAs(t, err, &iwe)
	assert.Equal(t, 1, iwe.Index)
}

func TestMergeDetailPath_TooFewStops(t *testing.T) {
	router := mockService.NewMockPedestrianRouter(t)

	_, err := MergeDetailPath(context.Background(), router, []entity.LatLng{ptA})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWaypointSequence)

	_, err = MergeDetailPath(context.Background(), router, nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWaypointSequence)
}

func TestMergeDetailPath_DoesNotMutateInput(t *testing.T) {
	router := mockService.NewMockPedestrianRouter(t)
	segment := []entity.LatLng{ptA, ptM1, ptB, ptB}
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).Return(segment, nil).Once()

	stops := []entity.LatLng{ptA, ptB}
	_, err := MergeDetailPath(context.Background(), router, stops)

	require.NoError(t, err)
	assert.Equal(t, []entity.LatLng{ptA, ptB}, stops)
	assert.Equal(t, []entity.LatLng{ptA, ptM1, ptB, ptB}, segment)
}

func TestMergeDetailPath_StopsKeptInOrder(t *testing.T) {
	router := mockService.NewMockPedestrianRouter(t)
	router.EXPECT().GetPedestrianSegment(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, from, to entity.LatLng) ([]entity.LatLng, error) {
			mid := entity.LatLng{Lat: (from.Lat + to.Lat) / 2, Lng: (from.Lng + to.Lng) / 2}

			return []entity.LatLng{from, mid, to}, nil
		}).Times(3)

	stops := []entity.LatLng{ptA, ptB, ptC, ptD}
	got, err := MergeDetailPath(context.Background(), router, stops)

	require.NoError(t, err)
	require.Len(t, got, 7)
	assert.Equal(t, ptA, got[0])
	assert.Equal(t, ptB, got[2])
	assert.Equal(t, ptC, got[4])
	assert.Equal(t, ptD, got[6])
}

func TestMergeDetailPath_RepeatedStopIsKept(t *testing.T) {
	router := mockService.NewMockPedestrianRouter(t)
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptA).Return([]entity.LatLng{ptA}, nil).Once()
	router.EXPECT().GetPedestrianSegment(mock.Anything, ptA, ptB).Return([]entity.LatLng{ptA, ptM1, ptB}, nil).Once()

	got, err := MergeDetailPath(context.Background(), router, []entity.LatLng{ptA, ptA, ptB})

	require.NoError(t, err)
	assert.Equal(t, []entity.LatLng{ptA, ptA, ptM1, ptB}, got)
}
