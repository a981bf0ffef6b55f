package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nuibaden/tourism-service/internal/domain"
	"github.com/nuibaden/tourism-service/internal/pkg/utils"
	"github.com/nuibaden/tourism-service/internal/usecase"
	"go.uber.org/zap"
)

// ContentHandler serves the collection API. These endpoints return bare
// JSON arrays; the browser client consumes them exactly in that shape.
type ContentHandler struct {
	contentUC *usecase.ContentUseCase
	logger    *zap.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentUC *usecase.ContentUseCase, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		contentUC: contentUC,
		logger:    logger,
	}
}

// GetInfo godoc
// @Summary Application identity
// @Tags Content
// @Produce json
// @Success 200 {object} domain.Info
// @Router /api/info [get]
func (h *ContentHandler) GetInfo(c *fiber.Ctx) error {
	return c.JSON(domain.Info{
		Name:   "Núi Bà Đen Tourism App",
		Status: "Running",
	})
}

// GetPOI godoc
// @Summary POI collection
// @Tags Content
// @Produce json
// @Success 200 {array} domain.PointOfInterest
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/poi [get]
func (h *ContentHandler) GetPOI(c *fiber.Ctx) error {
	return h.collection(c, usecase.CollectionPOI)
}

// GetActivities godoc
// @Summary Activity collection
// @Tags Content
// @Produce json
// @Success 200 {array} object
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/activities [get]
func (h *ContentHandler) GetActivities(c *fiber.Ctx) error {
	return h.collection(c, usecase.CollectionActivities)
}

// GetServices godoc
// @Summary Service collection
// @Tags Content
// @Produce json
// @Success 200 {array} domain.Service
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/services [get]
func (h *ContentHandler) GetServices(c *fiber.Ctx) error {
	return h.collection(c, usecase.CollectionServices)
}

// GetEvents godoc
// @Summary Event collection
// @Tags Content
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/events [get]
func (h *ContentHandler) GetEvents(c *fiber.Ctx) error {
	return h.collection(c, usecase.CollectionEvents)
}

// GetTours godoc
// @Summary Tour collection
// @Tags Content
// @Produce json
// @Success 200 {array} domain.Tour
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/tours [get]
func (h *ContentHandler) GetTours(c *fiber.Ctx) error {
	return h.collection(c, usecase.CollectionTours)
}

// GetRestaurants godoc
// @Summary Restaurant collection
// @Tags Content
// @Produce json
// @Success 200 {array} domain.Restaurant
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/restaurants [get]
func (h *ContentHandler) GetRestaurants(c *fiber.Ctx) error {
	return h.collection(c, usecase.CollectionRestaurants)
}

func (h *ContentHandler) collection(c *fiber.Ctx, name string) error {
	data, err := h.contentUC.Collection(c.Context(), name)
	if err != nil {
		h.logger.Error("Failed to serve collection", zap.String("collection", name), zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}
