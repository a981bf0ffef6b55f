package dto

import "github.com/nuibaden/tourism-service/internal/domain"

// POIView is a POI as rendered on the map: the domain record plus its
// resolved marker icon.
type POIView struct {
	domain.PointOfInterest
	Icon string `json:"icon"`
}

// CatalogSnapshot is the result of one combined catalog load.
type CatalogSnapshot struct {
	POIs            []domain.PointOfInterest `json:"pois"`
	ActivitiesCount int                      `json:"activities_count"`
}

// MapState is the rendering snapshot of one map session.
type MapState struct {
	SessionID       string          `json:"session_id"`
	POIs            []POIView       `json:"pois"`
	ActivitiesCount int             `json:"activities_count"`
	SelectedPOI     *POIView        `json:"selected_poi,omitempty"`
	HighlightedID   *int64          `json:"highlighted_id,omitempty"`
	Viewport        domain.Viewport `json:"viewport"`
	Category        *string         `json:"category,omitempty"`
}

// SearchResponse lists the POIs matching a name query, in catalog order.
type SearchResponse struct {
	Results []POIView `json:"results"`
	Total   int       `json:"total"`
}

// Notice is a dismissable user-facing message that accompanies an
// otherwise successful response.
type Notice struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LocateResponse is the state after a geolocation attempt, with a notice
// when the attempt failed.
type LocateResponse struct {
	State  *MapState `json:"state"`
	Notice *Notice   `json:"notice,omitempty"`
}
