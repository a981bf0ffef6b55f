package repository

import (
	"context"
	"time"

	"github.com/nuibaden/tourism-service/internal/domain"
)

// CacheRepository defines the optional response cache. A nil CacheRepository
// is valid everywhere one is accepted and disables caching.
type CacheRepository interface {
	// Get returns the cached value for key, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetCollection returns a cached collection body by name.
	GetCollection(ctx context.Context, name string) ([]byte, error)

	// SetCollection stores a rendered collection body.
	SetCollection(ctx context.Context, name string, data []byte, ttl time.Duration) error

	// GetStats returns cached statistics, or nil on a miss.
	GetStats(ctx context.Context) (*domain.Statistics, error)

	// SetStats stores computed statistics.
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error
}
