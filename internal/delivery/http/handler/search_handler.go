package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nuibaden/tourism-service/internal/pkg/utils"
	"github.com/nuibaden/tourism-service/internal/usecase"
	"go.uber.org/zap"
)

// SearchHandler serves the stateless catalog search.
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Search POIs by name
// @Description Case-insensitive substring match on name and name_en,
// @Description catalog order, at most 7 results.
// @Tags Search
// @Produce json
// @Param q query string false "Query"
// @Success 200 {object} utils.SuccessResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	result, err := h.searchUC.Search(c.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("Search failed", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
