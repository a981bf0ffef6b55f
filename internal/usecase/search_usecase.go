package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/nuibaden/tourism-service/internal/domain"
	"github.com/nuibaden/tourism-service/internal/domain/repository"
	apperrors "github.com/nuibaden/tourism-service/internal/pkg/errors"
	"github.com/nuibaden/tourism-service/internal/pkg/icon"
	"github.com/nuibaden/tourism-service/internal/usecase/dto"
)

// SearchUseCase serves the stateless catalog search endpoint. Session-bound
// search reuses the same matching over the session's own snapshot.
type SearchUseCase struct {
	catalogRepo repository.CatalogRepository
	icons       *icon.Resolver
	logger      *zap.Logger
}

// NewSearchUseCase creates a new SearchUseCase.
func NewSearchUseCase(
	catalogRepo repository.CatalogRepository,
	icons *icon.Resolver,
	logger *zap.Logger,
) *SearchUseCase {
	return &SearchUseCase{
		catalogRepo: catalogRepo,
		icons:       icons,
		logger:      logger,
	}
}

// Search matches the query against poi names, case-insensitively, in
// catalog order, capped at domain.SearchLimit results.
func (uc *SearchUseCase) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	pois, err := uc.catalogRepo.GetPOIs(ctx)
	if err != nil {
		uc.logger.Error("Failed to load catalog for search", zap.Error(err))
		return nil, apperrors.ErrLoadFailure
	}

	matches := domain.SearchByName(pois, query)

	results := make([]dto.POIView, 0, len(matches))
	for _, p := range matches {
		results = append(results, dto.POIView{
			PointOfInterest: p,
			Icon:            uc.icons.Resolve(p),
		})
	}

	return &dto.SearchResponse{
		Results: results,
		Total:   len(results),
	}, nil
}
