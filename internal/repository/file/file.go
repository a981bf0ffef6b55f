// Package file implements the collection repositories over JSON files on
// disk, with an injected fixture set backing any collection that has no
// data file.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nuibaden/tourism-service/internal/config"
	"github.com/nuibaden/tourism-service/internal/fixture"
	"go.uber.org/zap"
)

// Store resolves collection files under the configured data directory.
type Store struct {
	dir      string
	defaults fixture.Set
	logger   *zap.Logger
}

// NewStore creates a Store over cfg.Dir with the given default content.
func NewStore(cfg *config.DataConfig, defaults fixture.Set, logger *zap.Logger) *Store {
	return &Store{
		dir:      cfg.Dir,
		defaults: defaults,
		logger:   logger,
	}
}

// readCollection decodes <dir>/<name>.json into out. It reports found=false
// when the file does not exist, so the caller can fall back to defaults; any
// other failure is a load error.
func (s *Store) readCollection(name string, out interface{}) (bool, error) {
	path := filepath.Join(s.dir, name+".json")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.logger.Debug("Collection file absent, using defaults", zap.String("collection", name))
		return false, nil
	}
	if err != nil {
		s.logger.Error("Failed to read collection file",
			zap.String("collection", name),
			zap.String("path", path),
			zap.Error(err),
		)
		return false, fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Error("Failed to decode collection file",
			zap.String("collection", name),
			zap.String("path", path),
			zap.Error(err),
		)
		return false, fmt.Errorf("decode %s: %w", name, err)
	}

	return true, nil
}
