package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nuibaden/tourism-service/internal/domain"
	"github.com/nuibaden/tourism-service/internal/domain/repository"
	apperrors "github.com/nuibaden/tourism-service/internal/pkg/errors"
	"github.com/nuibaden/tourism-service/internal/usecase/dto"
)

// CatalogUseCase performs the combined catalog load that backs a map
// session: the POI collection and the activity count are fetched
// concurrently and both must succeed before any data is exposed.
type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
	logger      *zap.Logger
}

// NewCatalogUseCase creates a new CatalogUseCase.
func NewCatalogUseCase(
	catalogRepo repository.CatalogRepository,
	logger *zap.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// LoadSnapshot fetches POIs and activities concurrently. A failure of
// either fetch fails the whole load; no partial snapshot is returned and
// the caller must not retry automatically.
func (uc *CatalogUseCase) LoadSnapshot(ctx context.Context) (*dto.CatalogSnapshot, error) {
	var (
		pois       []domain.PointOfInterest
		activities []domain.Activity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		pois, err = uc.catalogRepo.GetPOIs(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		activities, err = uc.catalogRepo.GetActivities(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("Catalog load failed", zap.Error(err))
		return nil, apperrors.ErrLoadFailure
	}

	return &dto.CatalogSnapshot{
		POIs:            pois,
		ActivitiesCount: len(activities),
	}, nil
}
