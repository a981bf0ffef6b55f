package dto

import "github.com/nuibaden/tourism-service/internal/domain"

// Selection sources map the presentation events onto one operation:
// a marker click keeps the viewport, a search pick recenters it.
const (
	SelectSourceMarker = "marker"
	SelectSourceSearch = "search"
)

// SelectPOIRequest drives marker-click and search-pick selection.
type SelectPOIRequest struct {
	POIID  int64  `json:"poi_id" validate:"required"`
	Source string `json:"source" validate:"omitempty,oneof=marker search"`
}

// SetCategoryRequest drives the category filter. A null category clears
// the filter.
type SetCategoryRequest struct {
	Category *string `json:"category" validate:"omitempty,max=64"`
}

// LocateRequest relays the outcome of the one-shot platform geolocation
// attempt. Coordinates are required only on success.
type LocateRequest struct {
	Status    string   `json:"status" validate:"required,oneof=ok denied unsupported"`
	Latitude  *float64 `json:"latitude" validate:"required_if=Status ok,omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required_if=Status ok,omitempty,min=-180,max=180"`
}

// ToResult converts the wire form into the domain geolocation result.
func (r LocateRequest) ToResult() domain.GeolocationResult {
	res := domain.GeolocationResult{Status: domain.GeolocationStatus(r.Status)}
	if r.Status == string(domain.GeolocationOK) && r.Latitude != nil && r.Longitude != nil {
		res.Position = &domain.Point{Latitude: *r.Latitude, Longitude: *r.Longitude}
	}
	return res
}
