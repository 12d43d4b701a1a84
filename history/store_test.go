package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ankoehn/ai-content-writer/errors"
	"github.com/ankoehn/ai-content-writer/history"
	"github.com/ankoehn/ai-content-writer/models"
)

func newRecord(id, subject string) models.ContentRecord {
	return models.ContentRecord{
		ID:              id,
		Timestamp:       "2025-01-01 12:00:00",
		Campaign:        "Launch",
		ContentSubject:  subject,
		TargetAudience:  "urban commuters",
		BlogContent:     "blog text",
		LinkedInContent: "linkedin text",
		XContent:        "x text",
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	store := history.NewStore(filepath.Join(t.TempDir(), "content.json"))

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history", "content.json")
	store := history.NewStore(path)

	want := []models.ContentRecord{newRecord("20250101120000", "electric bikes")}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveAfterLoadIsByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	store := history.NewStore(path)

	require.NoError(t, store.Save([]models.ContentRecord{
		newRecord("20250101120000", "electric bikes"),
		newRecord("20250101120001", "cargo bikes"),
	}))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Save(loaded))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoadCorruptFileFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := history.NewStore(path)
	records, err := store.Load()

	assert.True(t, apperrors.Is(err, apperrors.ErrCorruptState))
	assert.Empty(t, records)
}

func TestAppendPersistsWholeCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	store := history.NewStore(path)

	first, err := store.Append(newRecord("20250101120000", "electric bikes"))
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := store.Append(newRecord("20250101120001", "cargo bikes"))
	require.NoError(t, err)
	require.Len(t, second, 2)
	// insertion order equals chronological order
	assert.Equal(t, "20250101120000", second[0].ID)
	assert.Equal(t, "20250101120001", second[1].ID)

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, second, reloaded)
}

func TestRemovePresentID(t *testing.T) {
	store := history.NewStore(filepath.Join(t.TempDir(), "content.json"))
	_, err := store.Append(newRecord("20250101120000", "electric bikes"))
	require.NoError(t, err)
	_, err = store.Append(newRecord("20250101120001", "cargo bikes"))
	require.NoError(t, err)

	records, removed, err := store.Remove("20250101120000")
	require.NoError(t, err)
	assert.True(t, removed)
	require.Len(t, records, 1)
	assert.Equal(t, "20250101120001", records[0].ID)

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, records, reloaded)
}

func TestRemoveAbsentIDIsNoOp(t *testing.T) {
	store := history.NewStore(filepath.Join(t.TempDir(), "content.json"))
	_, err := store.Append(newRecord("20250101120000", "electric bikes"))
	require.NoError(t, err)

	records, removed, err := store.Remove("19990101000000")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, records, 1)
}
