package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nuibaden/tourism-service/internal/pkg/errors"
	"github.com/nuibaden/tourism-service/internal/pkg/utils"
	"github.com/nuibaden/tourism-service/internal/pkg/validator"
	"github.com/nuibaden/tourism-service/internal/usecase"
	"github.com/nuibaden/tourism-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapSessionHandler exposes the map session API: each route maps one
// presentation event onto the session state machine.
type MapSessionHandler struct {
	sessions *usecase.MapSessionManager
	logger   *zap.Logger
}

// NewMapSessionHandler creates a new MapSessionHandler.
func NewMapSessionHandler(sessions *usecase.MapSessionManager, logger *zap.Logger) *MapSessionHandler {
	return &MapSessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// CreateSession godoc
// @Summary Mount a map view
// @Description Performs the combined catalog load and opens a session.
// @Tags Map
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/map/sessions [post]
func (h *MapSessionHandler) CreateSession(c *fiber.Ctx) error {
	state, err := h.sessions.Create(c.Context())
	if err != nil {
		h.logger.Error("Failed to create map session", zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, state, &utils.Meta{Total: len(state.POIs)})
}

// GetSession godoc
// @Summary Current map state snapshot
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/sessions/{id} [get]
func (h *MapSessionHandler) GetSession(c *fiber.Ctx) error {
	s, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	state := s.State()
	return utils.SendSuccess(c, state, &utils.Meta{Total: len(state.POIs)})
}

// Select godoc
// @Summary Select a POI (marker click or search pick)
// @Tags Map
// @Accept json
// @Produce json
// @Param request body dto.SelectPOIRequest true "Selection"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/sessions/{id}/select [post]
func (h *MapSessionHandler) Select(c *fiber.Ctx) error {
	s, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SelectPOIRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	state, err := s.Select(req.POIID, req.Source)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// Dismiss godoc
// @Summary Dismiss the selection panel
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/sessions/{id}/dismiss [post]
func (h *MapSessionHandler) Dismiss(c *fiber.Ctx) error {
	s, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, s.Dismiss(), nil)
}

// SetCategory godoc
// @Summary Change the category filter
// @Description Null clears the filter. Filtering never moves the viewport.
// @Tags Map
// @Accept json
// @Produce json
// @Param request body dto.SetCategoryRequest true "Category"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/sessions/{id}/category [post]
func (h *MapSessionHandler) SetCategory(c *fiber.Ctx) error {
	s, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SetCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	return utils.SendSuccess(c, s.SetCategory(req.Category), nil)
}

// Search godoc
// @Summary Search the session catalog by name
// @Tags Map
// @Produce json
// @Param q query string false "Query"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/sessions/{id}/search [get]
func (h *MapSessionHandler) Search(c *fiber.Ctx) error {
	s, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	results := s.Search(c.Query("q"))
	return utils.SendSuccess(c, dto.SearchResponse{
		Results: results,
		Total:   len(results),
	}, &utils.Meta{Total: len(results)})
}

// Locate godoc
// @Summary Apply a one-shot device geolocation outcome
// @Description Success recenters the viewport; denied or unsupported
// @Description returns the unchanged state with a dismissable notice.
// @Tags Map
// @Accept json
// @Produce json
// @Param request body dto.LocateRequest true "Geolocation outcome"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/sessions/{id}/locate [post]
func (h *MapSessionHandler) Locate(c *fiber.Ctx) error {
	s, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.LocateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	state, notice, err := s.Locate(req.ToResult())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.LocateResponse{
		State:  state,
		Notice: notice,
	}, nil)
}

// CloseSession godoc
// @Summary Unmount a map view
// @Description Tears the session down and cancels any pending highlight.
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/sessions/{id} [delete]
func (h *MapSessionHandler) CloseSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.sessions.Close(id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"closed": id}, nil)
}
