package domain

import "time"

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Viewport is the map's current center coordinate and zoom level.
type Viewport struct {
	Center Point `json:"center"`
	Zoom   int   `json:"zoom"`
}

const (
	// DefaultZoom is the zoom level of a freshly mounted map.
	DefaultZoom = 13

	// FocusZoom is used when recentering on a search pick or device position.
	FocusZoom = 16
)

// FallbackCenter is the application's home region, used when the catalog
// is empty.
var FallbackCenter = Point{Latitude: 11.3127, Longitude: 106.1303}

// InitialViewport derives the starting viewport from the catalog: the first
// POI's coordinates at DefaultZoom, or FallbackCenter for an empty catalog.
func InitialViewport(pois []PointOfInterest) Viewport {
	if len(pois) > 0 {
		return Viewport{Center: pois[0].Position(), Zoom: DefaultZoom}
	}
	return Viewport{Center: FallbackCenter, Zoom: DefaultZoom}
}

// Statistics aggregates counts over the loaded collections.
type Statistics struct {
	POIs        POIStats       `json:"pois"`
	Collections map[string]int `json:"collections"`
	LastUpdated time.Time      `json:"last_updated"`
}

// POIStats is the POI slice of Statistics.
type POIStats struct {
	Total      int            `json:"total"`
	Featured   int            `json:"featured"`
	ByCategory map[string]int `json:"by_category"`
}
