package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/jumbaa/internal/pkg/geo"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

// parseReference reads the reference point of a proximity request from either
// lat and lon or a geohash. It returns nil when the client sent no location.
func parseReference(c echo.Context) (*geo.Point, error) {
	rawLat := strings.TrimSpace(c.QueryParam("lat"))
	rawLon := strings.TrimSpace(c.QueryParam("lon"))
	hash := strings.TrimSpace(c.QueryParam("geohash"))

	hasCoords := rawLat != "" || rawLon != ""
	switch {
	case hash != "" && hasCoords:
		return nil, models.NewDomainError(models.ErrValidation, "use either geohash or lat and lon")
	case hash != "":
		p, err := geo.Decode(hash)
		if err != nil {
			return nil, models.NewDomainError(geo.ErrInvalidGeohash, "geohash is invalid")
		}
		return &p, nil
	case !hasCoords:
		return nil, nil
	case rawLat == "" || rawLon == "":
		return nil, models.NewDomainError(models.ErrValidation, "lat and lon must be given together")
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, models.NewDomainError(models.ErrValidation, "lat must be a number")
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return nil, models.NewDomainError(models.ErrValidation, "lon must be a number")
	}

	p := geo.Point{Latitude: lat, Longitude: lon}
	if !p.Valid() {
		return nil, models.NewDomainError(geo.ErrInvalidReference, "lat and lon must be finite and in range")
	}
	return &p, nil
}

// parseFilter reads the search box and the bedroom chip of the feed
func parseFilter(c echo.Context) (models.HouseFilter, error) {
	filter := models.HouseFilter{Query: strings.TrimSpace(c.QueryParam("q"))}

	if raw := strings.TrimSpace(c.QueryParam("bedrooms")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, models.NewDomainError(models.ErrValidation, "bedrooms must be a non-negative integer")
		}
		filter.Bedrooms = &n
	}
	return filter, nil
}
