package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nuibaden/tourism-service/internal/domain"
	apperrors "github.com/nuibaden/tourism-service/internal/pkg/errors"
	"github.com/nuibaden/tourism-service/internal/pkg/icon"
	"github.com/nuibaden/tourism-service/internal/pkg/utils"
	"github.com/nuibaden/tourism-service/internal/usecase/dto"
)

// MapSessionManager owns the live map sessions. A session is the server-side
// counterpart of one mounted map view: it holds the loaded catalog snapshot,
// the selection/highlight state and the viewport.
type MapSessionManager struct {
	catalogUC    *CatalogUseCase
	icons        *icon.Resolver
	logger       *zap.Logger
	highlightTTL time.Duration

	mu       sync.RWMutex
	sessions map[string]*MapSession
	closed   bool
}

// NewMapSessionManager creates a new MapSessionManager. highlightTTL is how
// long a marker highlight stays active before its scheduled expiry fires.
func NewMapSessionManager(
	catalogUC *CatalogUseCase,
	icons *icon.Resolver,
	logger *zap.Logger,
	highlightTTL time.Duration,
) *MapSessionManager {
	return &MapSessionManager{
		catalogUC:    catalogUC,
		icons:        icons,
		logger:       logger,
		highlightTTL: highlightTTL,
		sessions:     make(map[string]*MapSession),
	}
}

// Create performs the combined catalog load and, on success, registers a new
// session. A load that completes after Shutdown is discarded: the session is
// never registered and no state escapes.
func (m *MapSessionManager) Create(ctx context.Context) (*dto.MapState, error) {
	snapshot, err := m.catalogUC.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	s := &MapSession{
		id:              uuid.NewString(),
		pois:            snapshot.POIs,
		activitiesCount: snapshot.ActivitiesCount,
		viewport:        domain.InitialViewport(snapshot.POIs),
		highlightTTL:    m.highlightTTL,
		icons:           m.icons,
		logger:          m.logger,
		lastActive:      time.Now(),
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, apperrors.ErrSessionClosed
	}
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.logger.Info("Map session created",
		zap.String("session_id", s.id),
		zap.Int("pois", len(snapshot.POIs)),
		zap.Int("activities", snapshot.ActivitiesCount),
	)

	state := s.State()
	return &state, nil
}

// Get returns a live session and refreshes its idle clock.
func (m *MapSessionManager) Get(id string) (*MapSession, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	s.touch()
	return s, nil
}

// Close tears one session down, cancelling any pending highlight expiry.
func (m *MapSessionManager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return apperrors.ErrSessionNotFound
	}

	s.Close()
	m.logger.Info("Map session closed", zap.String("session_id", id))
	return nil
}

// SweepIdle closes every session idle since before the cutoff and returns
// how many were closed.
func (m *MapSessionManager) SweepIdle(cutoff time.Time) int {
	m.mu.Lock()
	var idle []*MapSession
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			idle = append(idle, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range idle {
		s.Close()
	}
	return len(idle)
}

// Count returns the number of live sessions.
func (m *MapSessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Shutdown closes every session and refuses further registration.
func (m *MapSessionManager) Shutdown() {
	m.mu.Lock()
	m.closed = true
	sessions := make([]*MapSession, 0, len(m.sessions))
	for id, s := range m.sessions {
		sessions = append(sessions, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	m.logger.Info("All map sessions closed", zap.Int("count", len(sessions)))
}

// MapSession tracks the state of one mounted map view. All transitions run
// to completion under the session mutex; the highlight expiry is the only
// scheduled callback and is owned by the session.
type MapSession struct {
	id              string
	pois            []domain.PointOfInterest
	activitiesCount int
	highlightTTL    time.Duration
	icons           *icon.Resolver
	logger          *zap.Logger

	mu             sync.Mutex
	category       *string
	selected       *domain.PointOfInterest
	highlightedID  *int64
	highlightTimer *time.Timer
	highlightSeq   uint64
	viewport       domain.Viewport
	lastActive     time.Time
	closed         bool
}

// ID returns the session identifier.
func (s *MapSession) ID() string {
	return s.id
}

// State returns the rendering snapshot: the filtered POI list, the activity
// count, the current selection and highlight, and the viewport.
func (s *MapSession) State() dto.MapState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *MapSession) stateLocked() dto.MapState {
	filtered := domain.FilterByCategory(s.pois, s.category)

	views := make([]dto.POIView, 0, len(filtered))
	for _, p := range filtered {
		views = append(views, dto.POIView{
			PointOfInterest: p,
			Icon:            s.icons.Resolve(p),
		})
	}

	state := dto.MapState{
		SessionID:       s.id,
		POIs:            views,
		ActivitiesCount: s.activitiesCount,
		Viewport:        s.viewport,
		Category:        s.category,
	}
	if s.selected != nil {
		state.SelectedPOI = &dto.POIView{
			PointOfInterest: *s.selected,
			Icon:            s.icons.Resolve(*s.selected),
		}
	}
	if s.highlightedID != nil {
		id := *s.highlightedID
		state.HighlightedID = &id
	}
	return state
}

// Select makes the POI the current selection and starts a fresh highlight.
// A search pick additionally recenters the viewport at FocusZoom; a marker
// click never moves the map.
func (s *MapSession) Select(poiID int64, source string) (*dto.MapState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, apperrors.ErrSessionClosed
	}

	poi, ok := s.findPOI(poiID)
	if !ok {
		return nil, apperrors.ErrPOINotFound
	}

	s.selected = &poi
	s.armHighlightLocked(poi.ID)

	if source == dto.SelectSourceSearch {
		s.viewport = domain.Viewport{Center: poi.Position(), Zoom: domain.FocusZoom}
	}

	state := s.stateLocked()
	return &state, nil
}

// Dismiss clears the selection. A still-active highlight keeps running.
func (s *MapSession) Dismiss() *dto.MapState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil

	state := s.stateLocked()
	return &state
}

// SetCategory changes the category filter. The viewport is never touched by
// filtering, and an unknown category simply yields an empty list.
func (s *MapSession) SetCategory(category *string) *dto.MapState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.category = category

	state := s.stateLocked()
	return &state
}

// Search matches the query against the session's full catalog snapshot,
// ignoring the category filter.
func (s *MapSession) Search(query string) []dto.POIView {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := domain.SearchByName(s.pois, query)
	views := make([]dto.POIView, 0, len(matches))
	for _, p := range matches {
		views = append(views, dto.POIView{
			PointOfInterest: p,
			Icon:            s.icons.Resolve(p),
		})
	}
	return views
}

// Locate applies a one-shot geolocation outcome. Success recenters the
// viewport at FocusZoom; denied or unsupported leaves the viewport
// untouched and yields a dismissable notice.
func (s *MapSession) Locate(result domain.GeolocationResult) (*dto.MapState, *dto.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, nil, apperrors.ErrSessionClosed
	}

	var notice *dto.Notice

	switch result.Status {
	case domain.GeolocationOK:
		if result.Position == nil || !utils.ValidateCoordinates(result.Position.Latitude, result.Position.Longitude) {
			return nil, nil, apperrors.ErrInvalidCoordinates
		}
		s.viewport = domain.Viewport{Center: *result.Position, Zoom: domain.FocusZoom}
	case domain.GeolocationDenied:
		notice = &dto.Notice{
			Code:    apperrors.ErrGeolocationDenied.Code,
			Message: apperrors.ErrGeolocationDenied.Message,
		}
	case domain.GeolocationUnsupported:
		notice = &dto.Notice{
			Code:    apperrors.ErrGeolocationUnsupported.Code,
			Message: apperrors.ErrGeolocationUnsupported.Message,
		}
	default:
		return nil, nil, apperrors.ErrInvalidRequest
	}

	state := s.stateLocked()
	return &state, notice, nil
}

// Close cancels any pending highlight expiry and marks the session dead.
// A timer callback that already fired becomes a no-op.
func (s *MapSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	if s.highlightTimer != nil {
		s.highlightTimer.Stop()
		s.highlightTimer = nil
	}
	s.highlightedID = nil
	s.selected = nil
}

// armHighlightLocked starts the highlight for the given POI id, cancelling
// any pending expiry first so exactly one timer is ever outstanding.
func (s *MapSession) armHighlightLocked(id int64) {
	if s.highlightTimer != nil {
		s.highlightTimer.Stop()
	}

	s.highlightedID = &id
	s.highlightSeq++
	seq := s.highlightSeq

	s.highlightTimer = time.AfterFunc(s.highlightTTL, func() {
		s.expireHighlight(seq)
	})
}

// expireHighlight clears the highlight unless a newer one superseded the
// timer or the session was torn down while the callback was in flight.
func (s *MapSession) expireHighlight(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || seq != s.highlightSeq {
		return
	}

	s.highlightedID = nil
	s.highlightTimer = nil
}

func (s *MapSession) findPOI(id int64) (domain.PointOfInterest, bool) {
	for _, p := range s.pois {
		if p.ID == id {
			return p, true
		}
	}
	return domain.PointOfInterest{}, false
}

func (s *MapSession) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *MapSession) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
