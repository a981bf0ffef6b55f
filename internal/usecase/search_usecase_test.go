package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nuibaden/tourism-service/internal/domain"
	apperrors "github.com/nuibaden/tourism-service/internal/pkg/errors"
	"github.com/nuibaden/tourism-service/internal/pkg/icon"
	"github.com/nuibaden/tourism-service/internal/usecase"
)

func TestSearchUseCase_Search(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	icons := icon.NewResolver("https://example.com/marker.png")

	t.Run("matches with resolved icons", func(t *testing.T) {
		repo := &stubCatalogRepo{pois: sessionCatalog()}
		uc := usecase.NewSearchUseCase(repo, icons, logger)

		resp, err := uc.Search(ctx, "bà")
		require.NoError(t, err)
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, "Chùa Bà", resp.Results[0].Name)
		assert.Equal(t, "https://example.com/marker.png", resp.Results[0].Icon)
	})

	t.Run("icon override wins", func(t *testing.T) {
		override := "https://example.com/pagoda.png"
		repo := &stubCatalogRepo{pois: []domain.PointOfInterest{
			{ID: 1, Name: "Chùa Bà", Latitude: 11.36, Longitude: 106.16, IconURL: &override},
		}}
		uc := usecase.NewSearchUseCase(repo, icons, logger)

		resp, err := uc.Search(ctx, "chùa")
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, override, resp.Results[0].Icon)
	})

	t.Run("empty query", func(t *testing.T) {
		repo := &stubCatalogRepo{pois: sessionCatalog()}
		uc := usecase.NewSearchUseCase(repo, icons, logger)

		resp, err := uc.Search(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.Empty(t, resp.Results)
	})

	t.Run("catalog failure", func(t *testing.T) {
		repo := &stubCatalogRepo{poisErr: errors.New("boom")}
		uc := usecase.NewSearchUseCase(repo, icons, logger)

		_, err := uc.Search(ctx, "bà")
		assert.ErrorIs(t, err, apperrors.ErrLoadFailure)
	})
}
