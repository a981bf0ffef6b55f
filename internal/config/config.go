package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Source  SourceConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Session SessionConfig
	Map     MapConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// DataConfig points the file-backed repositories at their data directory.
type DataConfig struct {
	Dir string
}

// SourceConfig configures the optional remote collection source. When URL is
// empty the service loads from disk and fixture defaults instead.
type SourceConfig struct {
	URL            string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled            bool
	CollectionCacheTTL time.Duration
	StatsCacheTTL      time.Duration
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// MapConfig carries the map-page constants. Defaults follow the product
// behavior: a 2 s marker highlight and the stock Leaflet marker icon.
type MapConfig struct {
	HighlightTTL   time.Duration
	DefaultIconURL string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Environment-only configuration is fine; a present but broken
		// .env file is not.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Data: DataConfig{
			Dir: viper.GetString("DATA_DIR"),
		},
		Source: SourceConfig{
			URL:            viper.GetString("SOURCE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("SOURCE_REQUEST_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:            viper.GetBool("CACHE_ENABLED"),
			CollectionCacheTTL: time.Duration(viper.GetInt("COLLECTION_CACHE_TTL")) * time.Second,
			StatsCacheTTL:      time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Session: SessionConfig{
			TTL:           time.Duration(viper.GetInt("SESSION_TTL")) * time.Second,
			SweepInterval: time.Duration(viper.GetInt("SESSION_SWEEP_INTERVAL")) * time.Second,
		},
		Map: MapConfig{
			HighlightTTL:   time.Duration(viper.GetInt("HIGHLIGHT_TTL")) * time.Millisecond,
			DefaultIconURL: viper.GetString("DEFAULT_ICON_URL"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "./data"
	}
	if cfg.Source.RequestTimeout == 0 {
		cfg.Source.RequestTimeout = 10 * time.Second
	}
	if cfg.Cache.CollectionCacheTTL == 0 {
		cfg.Cache.CollectionCacheTTL = 300 * time.Second
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 60 * time.Second
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 30 * time.Minute
	}
	if cfg.Session.SweepInterval == 0 {
		cfg.Session.SweepInterval = time.Minute
	}
	if cfg.Map.HighlightTTL == 0 {
		cfg.Map.HighlightTTL = 2000 * time.Millisecond
	}
	if cfg.Map.DefaultIconURL == "" {
		cfg.Map.DefaultIconURL = "https://unpkg.com/leaflet@1.9.4/dist/images/marker-icon.png"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
