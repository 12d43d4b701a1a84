package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/ankoehn/ai-content-writer/errors"
	"github.com/ankoehn/ai-content-writer/logger"
	"github.com/ankoehn/ai-content-writer/models"
)

// Store persists the content history as a single JSON file. Every mutation
// rewrites the whole file; there is no incremental or transactional path.
// A process-local mutex serializes access; the design assumes no other
// process mutates the same file concurrently.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore builds a store around the given history file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the whole persisted collection. A missing file yields an empty
// collection. A malformed file is reported as CORRUPT_STATE alongside an
// empty collection, so the application degrades instead of crashing.
func (s *Store) Load() ([]models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]models.ContentRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Log.Infof("history file %s not found, returning empty history", s.path)
			return []models.ContentRecord{}, nil
		}
		return []models.ContentRecord{}, apperrors.NewCorruptState(err)
	}

	var records []models.ContentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Log.Errorf("error loading history: %v", err)
		return []models.ContentRecord{}, apperrors.NewCorruptState(err)
	}
	if records == nil {
		records = []models.ContentRecord{}
	}
	logger.Log.Infof("loaded %d content items from history", len(records))
	return records, nil
}

// Save serializes and overwrites the entire persisted collection.
func (s *Store) Save(records []models.ContentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(records)
}

func (s *Store) save(records []models.ContentRecord) error {
	if records == nil {
		records = []models.ContentRecord{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return apperrors.NewPersist(err)
	}
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.NewPersist(err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return apperrors.NewPersist(err)
	}
	logger.Log.Infof("saved %d content items to %s", len(records), s.path)
	return nil
}

// Append adds one record to the collection and persists the whole file.
// A corrupt existing file is logged and treated as empty, matching Load.
func (s *Store) Append(record models.ContentRecord) ([]models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		logger.Log.Warnf("appending onto degraded history: %v", err)
	}
	records = append(records, record)
	if err := s.save(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Remove filters out the record with the given id and persists the result.
// An absent id is a warning no-op, not an error; removed reports whether
// anything matched.
func (s *Store) Remove(id string) (records []models.ContentRecord, removed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err = s.load()
	if err != nil {
		return records, false, err
	}

	filtered := records[:0:0]
	for _, r := range records {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == len(records) {
		logger.Log.Warnf("content with id %s not found in history", id)
		return records, false, nil
	}
	if err := s.save(filtered); err != nil {
		return records, true, err
	}
	logger.Log.Infof("removed content with id %s", id)
	return filtered, true, nil
}
