package poisource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nuibaden/tourism-service/internal/config"
)

func TestClient_GetPOIs(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/poi", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"id": 1, "name": "Chùa Bà", "name_en": "Ba Pagoda", "latitude": 11.367, "longitude": 106.168, "category": "religious"},
				{"id": 2, "name": "Bãi đỗ xe", "latitude": 11.354, "longitude": 106.163, "category": "parking"}
			]`))
		}))
		defer server.Close()

		c := NewClient(&config.SourceConfig{URL: server.URL, RequestTimeout: 5 * time.Second}, logger)

		pois, err := c.GetPOIs(context.Background())
		require.NoError(t, err)
		require.Len(t, pois, 2)
		assert.Equal(t, "Chùa Bà", pois[0].Name)
		assert.Equal(t, 11.367, pois[0].Latitude)
	})

	t.Run("upstream error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		c := NewClient(&config.SourceConfig{URL: server.URL, RequestTimeout: 5 * time.Second}, logger)

		_, err := c.GetPOIs(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("invalid payload fails validation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id": 1, "name": "Chùa Bà", "latitude": 11.367}]`))
		}))
		defer server.Close()

		c := NewClient(&config.SourceConfig{URL: server.URL, RequestTimeout: 5 * time.Second}, logger)

		_, err := c.GetPOIs(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing coordinates")
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		c := NewClient(&config.SourceConfig{URL: server.URL, RequestTimeout: 5 * time.Second}, logger)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.GetPOIs(ctx)
		assert.Error(t, err)
	})
}

func TestClient_GetActivities(t *testing.T) {
	logger := zap.NewNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "name": "Leo núi"}, {"id": 2, "name": "Chạy bộ"}]`))
	}))
	defer server.Close()

	c := NewClient(&config.SourceConfig{URL: server.URL, RequestTimeout: 5 * time.Second}, logger)

	activities, err := c.GetActivities(context.Background())
	require.NoError(t, err)
	assert.Len(t, activities, 2)
}
