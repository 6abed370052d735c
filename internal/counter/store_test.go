package counter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/pkg/models"
)

func TestLoad_MissingFile_ReturnsZeroRecord(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "data", "invoice_counter.json"))

	record := store.Load()

	assert.Equal(t, 0, record.Get(models.CategoryInvoice))
	assert.Equal(t, 0, record.Get(models.CategoryReceipt))
}

func TestLoad_CorruptFile_ReturnsZeroRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice_counter.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewStore(path)
	record := store.Load()

	assert.Equal(t, 0, record.Get(models.CategoryInvoice))
	assert.Equal(t, 0, record.Get(models.CategoryReceipt))
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "invoice_counter.json"))

	record := NewRecord()
	record[models.CategoryInvoice] = 12
	record[models.CategoryReceipt] = 3
	require.NoError(t, store.Save(record))

	loaded := store.Load()
	assert.Equal(t, 12, loaded.Get(models.CategoryInvoice))
	assert.Equal(t, 3, loaded.Get(models.CategoryReceipt))
}

func TestSave_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "invoice_counter.json")
	store := NewStore(path)

	require.NoError(t, store.Save(NewRecord()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoad_WireFormat(t *testing.T) {
	// The on-disk format is a plain JSON object keyed by category name
	path := filepath.Join(t.TempDir(), "invoice_counter.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Invoice": 7, "Receipt": 2}`), 0644))

	store := NewStore(path)
	record := store.Load()

	assert.Equal(t, 7, record.Get(models.CategoryInvoice))
	assert.Equal(t, 2, record.Get(models.CategoryReceipt))
}

func TestLoad_PartialRecord_MissingCategoryIsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice_counter.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Invoice": 7}`), 0644))

	store := NewStore(path)
	record := store.Load()

	assert.Equal(t, 7, record.Get(models.CategoryInvoice))
	assert.Equal(t, 0, record.Get(models.CategoryReceipt))
}
