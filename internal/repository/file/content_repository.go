package file

import (
	"context"

	"github.com/nuibaden/tourism-service/internal/domain"
	"github.com/nuibaden/tourism-service/internal/domain/repository"
)

type contentRepository struct {
	store *Store
}

// NewContentRepository creates the file-backed content repository.
func NewContentRepository(store *Store) repository.ContentRepository {
	return &contentRepository{store: store}
}

func (r *contentRepository) GetServices(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	found, err := r.store.readCollection("services", &services)
	if err != nil {
		return nil, err
	}
	if !found {
		return r.store.defaults.Services, nil
	}
	return services, nil
}

func (r *contentRepository) GetEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	found, err := r.store.readCollection("events", &events)
	if err != nil {
		return nil, err
	}
	if !found {
		return r.store.defaults.Events, nil
	}
	return events, nil
}

func (r *contentRepository) GetTours(ctx context.Context) ([]domain.Tour, error) {
	var tours []domain.Tour
	found, err := r.store.readCollection("tours", &tours)
	if err != nil {
		return nil, err
	}
	if !found {
		return r.store.defaults.Tours, nil
	}
	return tours, nil
}

func (r *contentRepository) GetRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	found, err := r.store.readCollection("restaurants", &restaurants)
	if err != nil {
		return nil, err
	}
	if !found {
		return r.store.defaults.Restaurants, nil
	}
	return restaurants, nil
}
