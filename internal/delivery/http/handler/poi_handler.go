package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nuibaden/tourism-service/internal/domain"
	"github.com/nuibaden/tourism-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// POIHandler serves POI metadata that is fixed at build time.
type POIHandler struct {
	logger *zap.Logger
}

// NewPOIHandler creates a new POIHandler.
func NewPOIHandler(logger *zap.Logger) *POIHandler {
	return &POIHandler{
		logger: logger,
	}
}

// GetCategories godoc
// @Summary POI category descriptors
// @Description Returns the fixed category table with icon and color.
// @Tags POI
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/poi/categories [get]
func (h *POIHandler) GetCategories(c *fiber.Ctx) error {
	categories := domain.Categories()

	return utils.SendSuccess(c, fiber.Map{
		"categories": categories,
	}, &utils.Meta{
		Total: len(categories),
	})
}
