package services

import (
	"context"

	"github.com/ankoehn/ai-content-writer/dto"
	apperrors "github.com/ankoehn/ai-content-writer/errors"
	"github.com/ankoehn/ai-content-writer/exporter"
	"github.com/ankoehn/ai-content-writer/generator"
	"github.com/ankoehn/ai-content-writer/history"
	"github.com/ankoehn/ai-content-writer/logger"
	"github.com/ankoehn/ai-content-writer/models"
)

// ContentService encapsulates the application flow behind the HTTP handlers
// and maps domain records to DTOs.
type ContentService struct {
	gen   *generator.Generator
	store *history.Store
}

func NewContentService(gen *generator.Generator, store *history.Store) *ContentService {
	return &ContentService{gen: gen, store: store}
}

// Generate runs the full pipeline for one request and returns the persisted
// record.
func (s *ContentService) Generate(ctx context.Context, in dto.GenerateContentRequestDTO) (*dto.ContentDTO, error) {
	record, err := s.gen.Generate(ctx, in.ToModel())
	if err != nil {
		return nil, err
	}
	d := dto.NewContentDTO(*record)
	return &d, nil
}

// List returns the whole history, newest last (insertion order equals
// chronological order). A corrupt history file degrades to an empty list.
func (s *ContentService) List(ctx context.Context) ([]dto.ContentDTO, error) {
	records, err := s.loadDegraded()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContentDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.NewContentDTO(r))
	}
	return out, nil
}

// GetByID returns a single record by its id.
func (s *ContentService) GetByID(ctx context.Context, id string) (*dto.ContentDTO, error) {
	records, err := s.loadDegraded()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.ID == id {
			d := dto.NewContentDTO(r)
			return &d, nil
		}
	}
	return nil, apperrors.NewNotFound(id)
}

// Delete removes a record. The store treats an absent id as a warning
// no-op; at the API edge it becomes NOT_FOUND.
func (s *ContentService) Delete(ctx context.Context, id string) error {
	_, removed, err := s.store.Remove(id)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.NewNotFound(id)
	}
	return nil
}

// Export renders the current history snapshot as an xlsx workbook.
func (s *ContentService) Export(ctx context.Context) ([]byte, string, error) {
	records, err := s.loadDegraded()
	if err != nil {
		return nil, "", err
	}
	return exporter.ToExcel(records)
}

// loadDegraded reads the history and fails open on corrupt state: the error
// is logged and an empty collection is served.
func (s *ContentService) loadDegraded() ([]models.ContentRecord, error) {
	records, err := s.store.Load()
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCorruptState) {
			logger.Log.Errorf("serving empty history: %v", err)
			return []models.ContentRecord{}, nil
		}
		return nil, err
	}
	return records, nil
}
