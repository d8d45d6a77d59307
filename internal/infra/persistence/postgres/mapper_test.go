package postgres

import (
	"testing"
	"time"

	"walkey/internal/domain/entity"
	"walkey/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestToRouteDomain(t *testing.T) {
	row := &model.RouteModel{
		ID:            7,
		ThemeID:       2,
		Theme:         &model.ThemeModel{ID: 2, Title: "한강"},
		Name:          "Riverside",
		EstimatedTime: 35,
		TotalDistance: 2400,
		ThumbnailURL:  "https://example.com/r.png",
		Paths:         pq.StringArray{`{"lat":37.5,"lng":127.0}`, `{"lat":37.6,"lng":127.1}`},
		DetailPaths:   strPtr(`[{"lat":37.5,"lng":127},{"lat":37.55,"lng":127.05}]`),
	}

	route := toRouteDomain(row)
	require.NotNil(t, route)
	assert.Equal(t, int64(7), route.ID)
	assert.Equal(t, "한강", route.ThemeTitle)
	assert.Len(t, route.Paths, 2)
	assert.Equal(t, []entity.LatLng{{Lat: 37.5, Lng: 127}, {Lat: 37.55, Lng: 127.05}}, route.DetailPaths)
	assert.True(t, route.HasDetailPath())
}

func TestToRouteDomain_EmptyAndMalformedDetailPaths(t *testing.T) {
	for name, detail := range map[string]*string{
		"null column":  nil,
		"empty string": strPtr(""),
		"malformed":    strPtr("{not json"),
	} {
		t.Run(name, func(t *testing.T) {
			route := toRouteDomain(&model.RouteModel{ID: 1, DetailPaths: detail})
			require.NotNil(t, route)
			assert.False(t, route.HasDetailPath())
		})
	}
}

func TestToRouteDomain_Nil(t *testing.T) {
	assert.Nil(t, toRouteDomain(nil))
}

func TestWalkSessionMapping(t *testing.T) {
	end := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	session := &entity.WalkSession{
		ID:             3,
		UserID:         uuid.New(),
		RouteID:        7,
		StartTime:      end.Add(-30 * time.Minute),
		EndTime:        &end,
		ActualDistance: 2100,
		ActualDuration: 30,
	}

	back := toWalkSessionDomain(fromWalkSessionDomain(session))
	assert.Equal(t, session, back)
}

func TestSocialAccountMapping(t *testing.T) {
	account := &entity.SocialAccount{
		UserID:     uuid.New(),
		Provider:   entity.ProviderTypeGoogle,
		ProviderID: "sub-1",
	}

	m := fromSocialAccountDomain(account)
	assert.Equal(t, "google", m.ProviderName)
	assert.Equal(t, account.ProviderID, toSocialAccountDomain(m).ProviderID)
}
