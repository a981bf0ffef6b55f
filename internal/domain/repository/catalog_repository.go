package repository

import (
	"context"

	"github.com/nuibaden/tourism-service/internal/domain"
)

// CatalogRepository is the data-serving collaborator for the map subsystem.
// Implementations load from disk or from a remote URL; both validate the
// catalog invariants before returning.
type CatalogRepository interface {
	// GetPOIs returns the full POI collection.
	GetPOIs(ctx context.Context) ([]domain.PointOfInterest, error)

	// GetActivities returns the opaque activity collection.
	GetActivities(ctx context.Context) ([]domain.Activity, error)
}
