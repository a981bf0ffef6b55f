package file

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nuibaden/tourism-service/internal/domain"
	"github.com/nuibaden/tourism-service/internal/domain/repository"
)

type catalogRepository struct {
	store *Store
}

// NewCatalogRepository creates the file-backed catalog repository.
func NewCatalogRepository(store *Store) repository.CatalogRepository {
	return &catalogRepository{store: store}
}

func (r *catalogRepository) GetPOIs(ctx context.Context) ([]domain.PointOfInterest, error) {
	var raw json.RawMessage
	found, err := r.store.readCollection("poi", &raw)
	if err != nil {
		return nil, err
	}
	if !found {
		return r.store.defaults.POIs, nil
	}

	pois, err := domain.DecodePOIs(raw)
	if err != nil {
		return nil, fmt.Errorf("poi collection: %w", err)
	}
	return pois, nil
}

func (r *catalogRepository) GetActivities(ctx context.Context) ([]domain.Activity, error) {
	var activities []domain.Activity
	found, err := r.store.readCollection("activities", &activities)
	if err != nil {
		return nil, err
	}
	if !found {
		return r.store.defaults.Activities, nil
	}
	return activities, nil
}
