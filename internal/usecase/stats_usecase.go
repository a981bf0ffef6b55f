package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nuibaden/tourism-service/internal/domain"
	"github.com/nuibaden/tourism-service/internal/domain/repository"
	apperrors "github.com/nuibaden/tourism-service/internal/pkg/errors"
)

// StatsUseCase aggregates counts over the loaded collections. The featured
// flag on POIs is consumed only here.
type StatsUseCase struct {
	catalogRepo repository.CatalogRepository
	contentRepo repository.ContentRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewStatsUseCase creates a new StatsUseCase. cacheRepo may be nil.
func NewStatsUseCase(
	catalogRepo repository.CatalogRepository,
	contentRepo repository.ContentRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		catalogRepo: catalogRepo,
		contentRepo: contentRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetStatistics computes the aggregate counts, serving from cache when one
// is configured and warm.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetStats(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	pois, err := uc.catalogRepo.GetPOIs(ctx)
	if err != nil {
		uc.logger.Error("Failed to load POIs for stats", zap.Error(err))
		return nil, apperrors.ErrLoadFailure
	}

	activities, err := uc.catalogRepo.GetActivities(ctx)
	if err != nil {
		uc.logger.Error("Failed to load activities for stats", zap.Error(err))
		return nil, apperrors.ErrLoadFailure
	}

	services, err := uc.contentRepo.GetServices(ctx)
	if err != nil {
		uc.logger.Error("Failed to load services for stats", zap.Error(err))
		return nil, apperrors.ErrLoadFailure
	}

	events, err := uc.contentRepo.GetEvents(ctx)
	if err != nil {
		uc.logger.Error("Failed to load events for stats", zap.Error(err))
		return nil, apperrors.ErrLoadFailure
	}

	tours, err := uc.contentRepo.GetTours(ctx)
	if err != nil {
		uc.logger.Error("Failed to load tours for stats", zap.Error(err))
		return nil, apperrors.ErrLoadFailure
	}

	restaurants, err := uc.contentRepo.GetRestaurants(ctx)
	if err != nil {
		uc.logger.Error("Failed to load restaurants for stats", zap.Error(err))
		return nil, apperrors.ErrLoadFailure
	}

	byCategory := make(map[string]int)
	featured := 0
	for _, p := range pois {
		if p.Category != "" {
			byCategory[p.Category]++
		}
		if p.IsFeatured() {
			featured++
		}
	}

	stats := &domain.Statistics{
		POIs: domain.POIStats{
			Total:      len(pois),
			Featured:   featured,
			ByCategory: byCategory,
		},
		Collections: map[string]int{
			CollectionActivities:  len(activities),
			CollectionServices:    len(services),
			CollectionEvents:      len(events),
			CollectionTours:       len(tours),
			CollectionRestaurants: len(restaurants),
		},
		LastUpdated: time.Now().UTC(),
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
		}
	}

	return stats, nil
}
