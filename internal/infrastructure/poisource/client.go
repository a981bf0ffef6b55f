// Package poisource implements the catalog repository over a remote HTTP
// collection source serving the same JSON arrays as the collection API.
package poisource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nuibaden/tourism-service/internal/config"
	"github.com/nuibaden/tourism-service/internal/domain"
	"github.com/nuibaden/tourism-service/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates a remote catalog source reading from cfg.URL.
func NewClient(cfg *config.SourceConfig, logger *zap.Logger) repository.CatalogRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.URL,
		logger:  logger,
	}
}

func (c *client) GetPOIs(ctx context.Context) ([]domain.PointOfInterest, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/poi", &raw); err != nil {
		return nil, err
	}

	pois, err := domain.DecodePOIs(raw)
	if err != nil {
		c.logger.Error("Remote POI collection failed validation", zap.Error(err))
		return nil, fmt.Errorf("poi collection: %w", err)
	}

	return pois, nil
}

func (c *client) GetActivities(ctx context.Context) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := c.getJSON(ctx, "/activities", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *client) getJSON(ctx context.Context, path string, out interface{}) error {
	url := c.baseURL + path

	c.logger.Debug("Fetching remote collection", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Collection source returned error",
			zap.String("url", url),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("source error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode collection", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
