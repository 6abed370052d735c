package numbering

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/internal/counter"
	"invoicegen/pkg/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(counter.NewStore(filepath.Join(t.TempDir(), "data", "invoice_counter.json")))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "INV005", Format(5, models.CategoryInvoice))
	assert.Equal(t, "REC123", Format(123, models.CategoryReceipt))
	assert.Equal(t, "INV001", Format(1, models.CategoryInvoice))
	assert.Equal(t, "REC1000", Format(1000, models.CategoryReceipt))
}

func TestPeek_FreshStore(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, 0, svc.Peek(models.CategoryInvoice))
	assert.Equal(t, 0, svc.Peek(models.CategoryReceipt))
}

func TestAllocateNext_Sequential(t *testing.T) {
	svc := newTestService(t)

	for i := 1; i <= 5; i++ {
		dn, err := svc.AllocateNext(models.CategoryInvoice)
		require.NoError(t, err)
		assert.Equal(t, i, dn.Value)
		assert.Equal(t, fmt.Sprintf("INV%03d", i), dn.Formatted)
	}
	assert.Equal(t, 5, svc.Peek(models.CategoryInvoice))
}

func TestAllocateNext_CategoriesIndependent(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AllocateNext(models.CategoryInvoice)
	require.NoError(t, err)
	_, err = svc.AllocateNext(models.CategoryInvoice)
	require.NoError(t, err)

	dn, err := svc.AllocateNext(models.CategoryReceipt)
	require.NoError(t, err)

	assert.Equal(t, "REC001", dn.Formatted)
	assert.Equal(t, 2, svc.Peek(models.CategoryInvoice))
	assert.Equal(t, 1, svc.Peek(models.CategoryReceipt))
}

func TestExists_IsHighWaterMarkTest(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Reset(models.CategoryInvoice, 5))

	// Every number up to the mark exists, even ones never actually issued
	for n := 0; n <= 5; n++ {
		assert.True(t, svc.Exists(n, models.CategoryInvoice), "number %d", n)
	}
	assert.False(t, svc.Exists(6, models.CategoryInvoice))
	assert.False(t, svc.Exists(1, models.CategoryReceipt))
}

func TestSetExact_RejectsConsumedWithoutForce(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Reset(models.CategoryInvoice, 10))

	ok, err := svc.SetExact(10, models.CategoryInvoice, false)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 10, svc.Peek(models.CategoryInvoice))

	ok, err = svc.SetExact(3, models.CategoryInvoice, false)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 10, svc.Peek(models.CategoryInvoice))
}

func TestSetExact_RaisesMarkAboveIt(t *testing.T) {
	svc := newTestService(t)

	ok, err := svc.SetExact(5, models.CategoryInvoice, false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, svc.Peek(models.CategoryInvoice))
}

func TestSetExact_ForceNeverLowersMark(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Reset(models.CategoryInvoice, 10))

	ok, err := svc.SetExact(4, models.CategoryInvoice, true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10, svc.Peek(models.CategoryInvoice))

	// Force still raises the mark when the number is above it
	ok, err = svc.SetExact(15, models.CategoryInvoice, true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 15, svc.Peek(models.CategoryInvoice))
}

func TestSetExact_FullScenario(t *testing.T) {
	// Fresh store: allocate, jump forward, collide, force
	svc := newTestService(t)

	dn, err := svc.AllocateNext(models.CategoryInvoice)
	require.NoError(t, err)
	assert.Equal(t, "INV001", dn.Formatted)
	assert.Equal(t, 1, svc.Peek(models.CategoryInvoice))

	ok, err := svc.SetExact(5, models.CategoryInvoice, false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, svc.Peek(models.CategoryInvoice))

	ok, err = svc.SetExact(5, models.CategoryInvoice, false)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 5, svc.Peek(models.CategoryInvoice))

	ok, err = svc.SetExact(5, models.CategoryInvoice, true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, svc.Peek(models.CategoryInvoice))
}

func TestReset_ThenAllocate(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Reset(models.CategoryInvoice, 19))

	dn, err := svc.AllocateNext(models.CategoryInvoice)
	require.NoError(t, err)
	assert.Equal(t, "INV020", dn.Formatted)
}

func TestAllocateNext_AfterCorruptFileStartsFromOne(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice_counter.json")
	require.NoError(t, writeFile(path, "{broken"))

	svc := NewService(counter.NewStore(path))

	dn, err := svc.AllocateNext(models.CategoryInvoice)
	require.NoError(t, err)
	assert.Equal(t, "INV001", dn.Formatted)
}
