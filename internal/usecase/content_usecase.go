package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/nuibaden/tourism-service/internal/domain/repository"
	apperrors "github.com/nuibaden/tourism-service/internal/pkg/errors"
)

// Collection names served by the content API.
const (
	CollectionPOI         = "poi"
	CollectionActivities  = "activities"
	CollectionServices    = "services"
	CollectionEvents      = "events"
	CollectionTours       = "tours"
	CollectionRestaurants = "restaurants"
)

// ContentUseCase renders the collection endpoints: bare JSON arrays, with an
// optional Redis-backed response cache in front of the repositories.
type ContentUseCase struct {
	catalogRepo repository.CatalogRepository
	contentRepo repository.ContentRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewContentUseCase creates a new ContentUseCase. cacheRepo may be nil, which
// disables caching.
func NewContentUseCase(
	catalogRepo repository.CatalogRepository,
	contentRepo repository.ContentRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ContentUseCase {
	return &ContentUseCase{
		catalogRepo: catalogRepo,
		contentRepo: contentRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Collection returns the rendered JSON array for the named collection.
func (uc *ContentUseCase) Collection(ctx context.Context, name string) ([]byte, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetCollection(ctx, name)
		if err == nil && cached != nil {
			return cached, nil
		}
		// Cache failure only costs the hit; the repositories remain the
		// source of truth.
	}

	data, err := uc.fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(data)
	if err != nil {
		uc.logger.Error("Failed to marshal collection", zap.String("collection", name), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetCollection(ctx, name, body, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache collection", zap.String("collection", name), zap.Error(err))
		}
	}

	return body, nil
}

func (uc *ContentUseCase) fetch(ctx context.Context, name string) (interface{}, error) {
	var (
		data interface{}
		err  error
	)

	switch name {
	case CollectionPOI:
		data, err = uc.catalogRepo.GetPOIs(ctx)
	case CollectionActivities:
		data, err = uc.catalogRepo.GetActivities(ctx)
	case CollectionServices:
		data, err = uc.contentRepo.GetServices(ctx)
	case CollectionEvents:
		data, err = uc.contentRepo.GetEvents(ctx)
	case CollectionTours:
		data, err = uc.contentRepo.GetTours(ctx)
	case CollectionRestaurants:
		data, err = uc.contentRepo.GetRestaurants(ctx)
	default:
		return nil, apperrors.ErrInvalidRequest
	}

	if err != nil {
		uc.logger.Error("Failed to load collection", zap.String("collection", name), zap.Error(err))
		return nil, apperrors.ErrLoadFailure
	}
	return data, nil
}
