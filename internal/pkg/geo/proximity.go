package geo

import (
	"fmt"
	"math"
	"sort"
)

// Located is a record that may carry a position. ok is false when the record
// has no usable coordinates.
type Located interface {
	Coordinates() (lat, lon float64, ok bool)
}

// Match pairs a record with its distance from the reference point
type Match[T Located] struct {
	Record     T
	DistanceKm float64
}

// FilterWithinRadius returns the records whose great-circle distance from ref
// is at most radiusKm, in input order. Records with missing, non-finite or
// out-of-range coordinates are skipped.
func FilterWithinRadius[T Located](ref Point, records []T, radiusKm float64) ([]T, error) {
	matches, err := MatchWithinRadius(ref, records, radiusKm)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Record)
	}
	return out, nil
}

// MatchWithinRadius behaves like FilterWithinRadius but keeps the computed distances
func MatchWithinRadius[T Located](ref Point, records []T, radiusKm float64) ([]Match[T], error) {
	if !ref.Valid() {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrInvalidReference, ref.Latitude, ref.Longitude)
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radiusKm)
	}

	out := make([]Match[T], 0)
	for _, r := range records {
		lat, lon, ok := r.Coordinates()
		if !ok || !validCoordinates(lat, lon) {
			continue
		}

		d := Distance(ref, Point{Latitude: lat, Longitude: lon})
		if d <= radiusKm {
			out = append(out, Match[T]{Record: r, DistanceKm: d})
		}
	}
	return out, nil
}

// SortByDistance returns a copy of matches ordered nearest first. Ties keep
// their relative order.
func SortByDistance[T Located](matches []Match[T]) []Match[T] {
	sorted := make([]Match[T], len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DistanceKm < sorted[j].DistanceKm
	})
	return sorted
}
