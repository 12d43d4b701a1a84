package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ankoehn/ai-content-writer/errors"
	"github.com/ankoehn/ai-content-writer/history"
	"github.com/ankoehn/ai-content-writer/models"
	"github.com/ankoehn/ai-content-writer/services"
)

func newService(t *testing.T) (*services.ContentService, *history.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	store := history.NewStore(path)
	// the generator is not exercised by these tests
	return services.NewContentService(nil, store), store, path
}

func TestListFailsOpenOnCorruptHistory(t *testing.T) {
	svc, _, path := newService(t)
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, store, _ := newService(t)
	_, err := store.Append(models.ContentRecord{ID: "20250101120000", ContentSubject: "electric bikes"})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), "20250101120000")
	require.NoError(t, err)
	assert.Equal(t, "electric bikes", got.ContentSubject)

	_, err = svc.GetByID(context.Background(), "19990101000000")
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestDeleteAbsentIDIsNotFound(t *testing.T) {
	svc, _, _ := newService(t)

	err := svc.Delete(context.Background(), "19990101000000")
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestExportCorruptHistoryDegradesToEmptyError(t *testing.T) {
	svc, _, path := newService(t)
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, _, err := svc.Export(context.Background())
	assert.True(t, apperrors.Is(err, apperrors.ErrExportEmpty))
}
