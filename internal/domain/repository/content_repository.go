package repository

import (
	"context"

	"github.com/nuibaden/tourism-service/internal/domain"
)

// ContentRepository serves the list-page collections.
type ContentRepository interface {
	// GetServices returns the tourist service collection.
	GetServices(ctx context.Context) ([]domain.Service, error)

	// GetEvents returns the event collection.
	GetEvents(ctx context.Context) ([]domain.Event, error)

	// GetTours returns the tour collection.
	GetTours(ctx context.Context) ([]domain.Tour, error)

	// GetRestaurants returns the restaurant collection.
	GetRestaurants(ctx context.Context) ([]domain.Restaurant, error)
}
