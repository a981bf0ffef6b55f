// Package icon resolves marker icons for the presentation layer.
// Per-marker image failures are recovered here by substituting the
// default icon; they never reach the map core and are never retried.
package icon

import "github.com/nuibaden/tourism-service/internal/domain"

// Resolver picks the icon URL for a POI, with a fixed default.
type Resolver struct {
	defaultURL string
}

// NewResolver creates a Resolver with the given default icon URL.
func NewResolver(defaultURL string) *Resolver {
	return &Resolver{defaultURL: defaultURL}
}

// Resolve returns the POI's override icon, or the default when absent.
func (r *Resolver) Resolve(poi domain.PointOfInterest) string {
	if poi.IconURL != nil && *poi.IconURL != "" {
		return *poi.IconURL
	}
	return r.defaultURL
}

// Fallback maps a URL that failed to load to the default icon.
func (r *Resolver) Fallback(_ string) string {
	return r.defaultURL
}

// DefaultURL exposes the configured default icon.
func (r *Resolver) DefaultURL() string {
	return r.defaultURL
}
