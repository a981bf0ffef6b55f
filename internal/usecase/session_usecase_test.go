package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nuibaden/tourism-service/internal/domain"
	apperrors "github.com/nuibaden/tourism-service/internal/pkg/errors"
	"github.com/nuibaden/tourism-service/internal/pkg/icon"
	"github.com/nuibaden/tourism-service/internal/usecase"
	"github.com/nuibaden/tourism-service/internal/usecase/dto"
)

// highlightTTL is kept short so expiry tests run in milliseconds.
const highlightTTL = 30 * time.Millisecond

type stubCatalogRepo struct {
	pois          []domain.PointOfInterest
	activities    []domain.Activity
	poisErr       error
	activitiesErr error
}

func (r *stubCatalogRepo) GetPOIs(_ context.Context) ([]domain.PointOfInterest, error) {
	if r.poisErr != nil {
		return nil, r.poisErr
	}
	return r.pois, nil
}

func (r *stubCatalogRepo) GetActivities(_ context.Context) ([]domain.Activity, error) {
	if r.activitiesErr != nil {
		return nil, r.activitiesErr
	}
	return r.activities, nil
}

func strPtr(s string) *string { return &s }

func sessionCatalog() []domain.PointOfInterest {
	return []domain.PointOfInterest{
		{ID: 1, Name: "Chùa Bà", NameEn: strPtr("Ba Pagoda"), Latitude: 11.3670, Longitude: 106.1680, Category: domain.CategoryReligious},
		{ID: 2, Name: "Đỉnh Núi Bà Đen", NameEn: strPtr("Ba Den Mountain Peak"), Latitude: 11.3780, Longitude: 106.1710, Category: domain.CategoryViewpoint},
		{ID: 3, Name: "Nhà ga cáp treo", NameEn: strPtr("Cable Car Station"), Latitude: 11.3570, Longitude: 106.1650, Category: domain.CategoryCable},
	}
}

func newTestManager(t *testing.T, ttl time.Duration) *usecase.MapSessionManager {
	t.Helper()

	repo := &stubCatalogRepo{
		pois:       sessionCatalog(),
		activities: []domain.Activity{json.RawMessage(`{"id":1}`)},
	}
	logger := zap.NewNop()
	catalogUC := usecase.NewCatalogUseCase(repo, logger)
	icons := icon.NewResolver("https://example.com/marker.png")

	return usecase.NewMapSessionManager(catalogUC, icons, logger, ttl)
}

func mustCreate(t *testing.T, m *usecase.MapSessionManager) (*usecase.MapSession, dto.MapState) {
	t.Helper()

	state, err := m.Create(context.Background())
	require.NoError(t, err)
	s, err := m.Get(state.SessionID)
	require.NoError(t, err)
	return s, *state
}

func TestMapSessionManager_Create(t *testing.T) {
	t.Run("initial state", func(t *testing.T) {
		m := newTestManager(t, highlightTTL)

		state, err := m.Create(context.Background())
		require.NoError(t, err)

		assert.NotEmpty(t, state.SessionID)
		assert.Len(t, state.POIs, 3)
		assert.Equal(t, 1, state.ActivitiesCount)
		assert.Nil(t, state.SelectedPOI)
		assert.Nil(t, state.HighlightedID)
		assert.Nil(t, state.Category)
		assert.Equal(t, domain.DefaultZoom, state.Viewport.Zoom)
		assert.Equal(t, sessionCatalog()[0].Position(), state.Viewport.Center)
		assert.Equal(t, 1, m.Count())
	})

	t.Run("load failure creates no session", func(t *testing.T) {
		repo := &stubCatalogRepo{poisErr: errors.New("boom")}
		logger := zap.NewNop()
		m := usecase.NewMapSessionManager(
			usecase.NewCatalogUseCase(repo, logger),
			icon.NewResolver("https://example.com/marker.png"),
			logger,
			highlightTTL,
		)

		_, err := m.Create(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrLoadFailure)
		assert.Equal(t, 0, m.Count())
	})

	t.Run("activities failure fails the whole load", func(t *testing.T) {
		repo := &stubCatalogRepo{pois: sessionCatalog(), activitiesErr: errors.New("boom")}
		logger := zap.NewNop()
		m := usecase.NewMapSessionManager(
			usecase.NewCatalogUseCase(repo, logger),
			icon.NewResolver("https://example.com/marker.png"),
			logger,
			highlightTTL,
		)

		_, err := m.Create(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrLoadFailure)
	})

	t.Run("empty catalog falls back to home region", func(t *testing.T) {
		repo := &stubCatalogRepo{}
		logger := zap.NewNop()
		m := usecase.NewMapSessionManager(
			usecase.NewCatalogUseCase(repo, logger),
			icon.NewResolver("https://example.com/marker.png"),
			logger,
			highlightTTL,
		)

		state, err := m.Create(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.FallbackCenter, state.Viewport.Center)
		assert.Equal(t, domain.DefaultZoom, state.Viewport.Zoom)
	})
}

func TestMapSession_Select(t *testing.T) {
	t.Run("marker click selects and highlights without moving the map", func(t *testing.T) {
		m := newTestManager(t, highlightTTL)
		s, initial := mustCreate(t, m)

		state, err := s.Select(2, dto.SelectSourceMarker)
		require.NoError(t, err)

		require.NotNil(t, state.SelectedPOI)
		assert.Equal(t, int64(2), state.SelectedPOI.ID)
		require.NotNil(t, state.HighlightedID)
		assert.Equal(t, int64(2), *state.HighlightedID)
		assert.Equal(t, initial.Viewport, state.Viewport)
	})

	t.Run("search pick recenters at focus zoom", func(t *testing.T) {
		m := newTestManager(t, highlightTTL)
		s, _ := mustCreate(t, m)

		state, err := s.Select(3, dto.SelectSourceSearch)
		require.NoError(t, err)

		assert.Equal(t, domain.FocusZoom, state.Viewport.Zoom)
		assert.Equal(t, sessionCatalog()[2].Position(), state.Viewport.Center)
	})

	t.Run("unknown poi", func(t *testing.T) {
		m := newTestManager(t, highlightTTL)
		s, _ := mustCreate(t, m)

		_, err := s.Select(99, dto.SelectSourceMarker)
		assert.ErrorIs(t, err, apperrors.ErrPOINotFound)
	})
}

func TestMapSession_HighlightExpiry(t *testing.T) {
	t.Run("highlight expires, selection stays", func(t *testing.T) {
		m := newTestManager(t, highlightTTL)
		s, _ := mustCreate(t, m)

		_, err := s.Select(1, dto.SelectSourceMarker)
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			return s.State().HighlightedID == nil
		}, time.Second, 5*time.Millisecond)

		state := s.State()
		require.NotNil(t, state.SelectedPOI)
		assert.Equal(t, int64(1), state.SelectedPOI.ID)
	})

	t.Run("reselect supersedes the pending expiry", func(t *testing.T) {
		ttl := 200 * time.Millisecond
		m := newTestManager(t, ttl)
		s, _ := mustCreate(t, m)

		_, err := s.Select(1, dto.SelectSourceMarker)
		require.NoError(t, err)

		// Re-arm halfway through. The second highlight must survive the
		// first timer's deadline.
		time.Sleep(ttl / 2)
		_, err = s.Select(2, dto.SelectSourceMarker)
		require.NoError(t, err)

		time.Sleep(ttl * 3 / 4)
		state := s.State()
		require.NotNil(t, state.HighlightedID)
		assert.Equal(t, int64(2), *state.HighlightedID)

		assert.Eventually(t, func() bool {
			return s.State().HighlightedID == nil
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("dismiss keeps an active highlight running", func(t *testing.T) {
		m := newTestManager(t, highlightTTL)
		s, _ := mustCreate(t, m)

		_, err := s.Select(1, dto.SelectSourceMarker)
		require.NoError(t, err)

		state := s.Dismiss()
		assert.Nil(t, state.SelectedPOI)
		require.NotNil(t, state.HighlightedID)
		assert.Equal(t, int64(1), *state.HighlightedID)

		assert.Eventually(t, func() bool {
			return s.State().HighlightedID == nil
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("close cancels the pending expiry", func(t *testing.T) {
		m := newTestManager(t, highlightTTL)
		s, state := mustCreate(t, m)

		_, err := s.Select(1, dto.SelectSourceMarker)
		require.NoError(t, err)

		require.NoError(t, m.Close(state.SessionID))
		_, err = m.Get(state.SessionID)
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

		// The timer callback, if it still fires, must be a no-op.
		time.Sleep(highlightTTL * 2)
		_, err = s.Select(1, dto.SelectSourceMarker)
		assert.ErrorIs(t, err, apperrors.ErrSessionClosed)
	})
}

func TestMapSession_SetCategory(t *testing.T) {
	m := newTestManager(t, highlightTTL)
	s, initial := mustCreate(t, m)

	cat := domain.CategoryReligious
	state := s.SetCategory(&cat)
	require.Len(t, state.POIs, 1)
	assert.Equal(t, int64(1), state.POIs[0].ID)
	assert.Equal(t, initial.Viewport, state.Viewport)

	// Unknown category degrades to an empty list, still no error.
	unknown := "submarine"
	state = s.SetCategory(&unknown)
	assert.Empty(t, state.POIs)
	assert.Equal(t, initial.Viewport, state.Viewport)

	state = s.SetCategory(nil)
	assert.Len(t, state.POIs, 3)
}

func TestMapSession_Search(t *testing.T) {
	m := newTestManager(t, highlightTTL)
	s, _ := mustCreate(t, m)

	// The search scans the full catalog even while a filter is active.
	cat := domain.CategoryReligious
	s.SetCategory(&cat)

	results := s.Search("cáp treo")
	require.Len(t, results, 1)
	assert.Equal(t, int64(3), results[0].ID)
	assert.Equal(t, "https://example.com/marker.png", results[0].Icon)

	assert.Empty(t, s.Search(""))
}

func TestMapSession_Locate(t *testing.T) {
	t.Run("success recenters at focus zoom", func(t *testing.T) {
		m := newTestManager(t, highlightTTL)
		s, _ := mustCreate(t, m)

		state, notice, err := s.Locate(domain.GeolocationResult{
			Status:   domain.GeolocationOK,
			Position: &domain.Point{Latitude: 11.30, Longitude: 106.10},
		})
		require.NoError(t, err)
		assert.Nil(t, notice)
		assert.Equal(t, domain.FocusZoom, state.Viewport.Zoom)
		assert.Equal(t, 11.30, state.Viewport.Center.Latitude)
	})

	t.Run("denied yields notice and leaves viewport", func(t *testing.T) {
		m := newTestManager(t, highlightTTL)
		s, initial := mustCreate(t, m)

		state, notice, err := s.Locate(domain.GeolocationResult{Status: domain.GeolocationDenied})
		require.NoError(t, err)
		require.NotNil(t, notice)
		assert.Equal(t, apperrors.ErrGeolocationDenied.Code, notice.Code)
		assert.Equal(t, initial.Viewport, state.Viewport)
	})

	t.Run("unsupported yields notice", func(t *testing.T) {
		m := newTestManager(t, highlightTTL)
		s, initial := mustCreate(t, m)

		state, notice, err := s.Locate(domain.GeolocationResult{Status: domain.GeolocationUnsupported})
		require.NoError(t, err)
		require.NotNil(t, notice)
		assert.Equal(t, apperrors.ErrGeolocationUnsupported.Code, notice.Code)
		assert.Equal(t, initial.Viewport, state.Viewport)
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		m := newTestManager(t, highlightTTL)
		s, _ := mustCreate(t, m)

		_, _, err := s.Locate(domain.GeolocationResult{
			Status:   domain.GeolocationOK,
			Position: &domain.Point{Latitude: 999, Longitude: 106.10},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
	})
}

func TestMapSessionManager_SweepIdle(t *testing.T) {
	m := newTestManager(t, highlightTTL)
	_, state := mustCreate(t, m)
	require.Equal(t, 1, m.Count())

	// A cutoff in the past keeps fresh sessions alive.
	assert.Equal(t, 0, m.SweepIdle(time.Now().Add(-time.Minute)))
	assert.Equal(t, 1, m.Count())

	// A future cutoff reaps everything.
	assert.Equal(t, 1, m.SweepIdle(time.Now().Add(time.Minute)))
	assert.Equal(t, 0, m.Count())

	_, err := m.Get(state.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestMapSessionManager_Shutdown(t *testing.T) {
	m := newTestManager(t, highlightTTL)
	s, _ := mustCreate(t, m)

	m.Shutdown()
	assert.Equal(t, 0, m.Count())

	_, err := s.Select(1, dto.SelectSourceMarker)
	assert.ErrorIs(t, err, apperrors.ErrSessionClosed)

	// Registration after shutdown is refused even when the load succeeds.
	_, err = m.Create(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSessionClosed)
}
