package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/mmcloughlin/geohash"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// GeohashPrecision is the number of characters used when encoding listings
const GeohashPrecision uint = 9

var (
	ErrInvalidReference = errors.New("invalid reference point")
	ErrInvalidRadius    = errors.New("invalid radius")
	ErrInvalidGeohash   = errors.New("invalid geohash")
)

// Point represents a geographical point with latitude and longitude in degrees
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both coordinates are finite and inside their ranges
func (p Point) Valid() bool {
	return validCoordinates(p.Latitude, p.Longitude)
}

func validCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Distance calculates the distance between two points in kilometers using the Haversine formula
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Encode converts a point to a geohash string
func Encode(p Point) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, GeohashPrecision)
}

// Decode converts a geohash string to the center point of its cell
func Decode(hash string) (Point, error) {
	if err := geohash.Validate(hash); err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrInvalidGeohash, err)
	}
	lat, lon := geohash.Decode(hash)
	return Point{Latitude: lat, Longitude: lon}, nil
}
