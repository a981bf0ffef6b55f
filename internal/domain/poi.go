package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// PointOfInterest is a named geolocated entity on the map.
// JSON field names are fixed by the collection API contract.
type PointOfInterest struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	NameEn      *string  `json:"name_en,omitempty"`
	Description *string  `json:"description,omitempty"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Category    string   `json:"category,omitempty"`
	Elevation   *float64 `json:"elevation,omitempty"`
	IconURL     *string  `json:"iconurl,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
}

// Position returns the POI coordinates as a Point.
func (p PointOfInterest) Position() Point {
	return Point{Latitude: p.Latitude, Longitude: p.Longitude}
}

// IsFeatured reports whether the POI carries the featured flag.
func (p PointOfInterest) IsFeatured() bool {
	return p.Featured != nil && *p.Featured
}

// Activity is an opaque secondary record; only the count of activities
// is consumed by the map subsystem.
type Activity = json.RawMessage

// poiRecord mirrors PointOfInterest with optional coordinates so that an
// absent latitude or longitude is detected instead of decoding to zero.
type poiRecord struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	NameEn      *string  `json:"name_en"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Category    string   `json:"category"`
	Elevation   *float64 `json:"elevation"`
	IconURL     *string  `json:"iconurl"`
	Featured    *bool    `json:"featured"`
}

// DecodePOIs parses a JSON POI collection and enforces the load-time
// invariants via ValidateCatalog. Coordinates must be present on every
// record; absence is a data error of the source.
func DecodePOIs(data []byte) ([]PointOfInterest, error) {
	var records []poiRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode poi collection: %w", err)
	}

	pois := make([]PointOfInterest, 0, len(records))
	for _, rec := range records {
		if rec.Latitude == nil || rec.Longitude == nil {
			return nil, fmt.Errorf("poi %d: missing coordinates", rec.ID)
		}
		pois = append(pois, PointOfInterest{
			ID:          rec.ID,
			Name:        rec.Name,
			NameEn:      rec.NameEn,
			Description: rec.Description,
			Latitude:    *rec.Latitude,
			Longitude:   *rec.Longitude,
			Category:    rec.Category,
			Elevation:   rec.Elevation,
			IconURL:     rec.IconURL,
			Featured:    rec.Featured,
		})
	}

	if err := ValidateCatalog(pois); err != nil {
		return nil, err
	}

	return pois, nil
}

// ValidateCatalog checks the load-time invariants of a catalog snapshot:
// ids must be unique and coordinates must be present and finite.
// A violation is a data error of the source, not a runtime fault.
func ValidateCatalog(pois []PointOfInterest) error {
	seen := make(map[int64]struct{}, len(pois))
	for _, p := range pois {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate poi id %d", p.ID)
		}
		seen[p.ID] = struct{}{}

		if math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) ||
			math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) {
			return fmt.Errorf("poi %d: non-finite coordinates", p.ID)
		}
		if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
			return fmt.Errorf("poi %d: coordinates out of range (%f, %f)", p.ID, p.Latitude, p.Longitude)
		}
	}
	return nil
}

// FilterByCategory returns the POIs matching the given category, preserving
// catalog order. A nil category means no filtering. POIs with an unknown or
// empty category are kept in the unfiltered view and never match a specific
// category.
func FilterByCategory(pois []PointOfInterest, category *string) []PointOfInterest {
	if category == nil {
		return pois
	}
	out := make([]PointOfInterest, 0, len(pois))
	for _, p := range pois {
		if p.Category == *category {
			out = append(out, p)
		}
	}
	return out
}

// SearchLimit caps the number of search matches returned.
const SearchLimit = 7

// SearchByName returns up to SearchLimit POIs whose name or name_en contains
// the query, case-insensitively, in catalog order. Names are Vietnamese-script
// so lowering must be Unicode-aware. The empty query matches nothing.
func SearchByName(pois []PointOfInterest, query string) []PointOfInterest {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []PointOfInterest
	for _, p := range pois {
		nameVi := strings.ToLower(p.Name)
		nameEn := ""
		if p.NameEn != nil {
			nameEn = strings.ToLower(*p.NameEn)
		}
		if strings.Contains(nameVi, q) || (nameEn != "" && strings.Contains(nameEn, q)) {
			out = append(out, p)
			if len(out) == SearchLimit {
				break
			}
		}
	}
	return out
}
