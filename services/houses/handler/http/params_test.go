package http

import (
	"net/http"
	"testing"

	"github.com/piresc/jumbaa/internal/pkg/geo"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	testCases := []struct {
		name    string
		query   string
		want    *geo.Point
		wantErr error
	}{
		{name: "no location", query: ""},
		{name: "lat and lon", query: "lat=-1.29&lon=36.82", want: &geo.Point{Latitude: -1.29, Longitude: 36.82}},
		{name: "origin is a location", query: "lat=0&lon=0", want: &geo.Point{}},
		{name: "lat only", query: "lat=1", wantErr: models.ErrValidation},
		{name: "lon only", query: "lon=1", wantErr: models.ErrValidation},
		{name: "not a number", query: "lat=north&lon=1", wantErr: models.ErrValidation},
		{name: "NaN", query: "lat=NaN&lon=1", wantErr: geo.ErrInvalidReference},
		{name: "infinite", query: "lat=1&lon=Inf", wantErr: geo.ErrInvalidReference},
		{name: "out of range", query: "lat=95&lon=1", wantErr: geo.ErrInvalidReference},
		{name: "bad geohash", query: "geohash=kzf0ai", wantErr: geo.ErrInvalidGeohash},
		{name: "geohash with lat", query: "geohash=kzf0&lat=1&lon=1", wantErr: models.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodGet, "/houses/feed?"+tc.query, "")

			got, err := parseReference(c)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseReference_Geohash(t *testing.T) {
	c, _ := newJSONContext(http.MethodGet, "/houses/feed?geohash=kzf0tuubu", "")

	got, err := parseReference(c)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, -1.2921, got.Latitude, 0.0001)
	assert.InDelta(t, 36.8219, got.Longitude, 0.0001)
}

func TestParseFilter(t *testing.T) {
	c, _ := newJSONContext(http.MethodGet, "/houses?q=+Kilimani+&bedrooms=2", "")
	filter, err := parseFilter(c)
	require.NoError(t, err)
	assert.Equal(t, "Kilimani", filter.Query)
	require.NotNil(t, filter.Bedrooms)
	assert.Equal(t, 2, *filter.Bedrooms)

	c, _ = newJSONContext(http.MethodGet, "/houses", "")
	filter, err = parseFilter(c)
	require.NoError(t, err)
	assert.Nil(t, filter.Bedrooms)

	for _, bad := range []string{"two", "-1", "2.5"} {
		c, _ = newJSONContext(http.MethodGet, "/houses?bedrooms="+bad, "")
		_, err = parseFilter(c)
		assert.ErrorIs(t, err, models.ErrValidation, bad)
	}
}
