package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pesaje-api/internal/domain"
	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/sqlite"
)

func openStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pesaje.db")
	store, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func seedSuppliers(t *testing.T, store *sqlite.Store) []*entity.Supplier {
	t.Helper()
	list := []*entity.Supplier{
		{Name: "Thiên Thành", Plate: "79-VA-18175", Quota: 10, QuotaWeight: decimal.NewFromInt(100), DefaultUnitLabel: "48", DefaultWeight: decimal.NewFromInt(15)},
		{Name: "Satomura", Plate: "51-CD-98765", Quota: 14, QuotaWeight: decimal.NewFromInt(300), DefaultUnitLabel: "50", DefaultWeight: decimal.RequireFromString("33.3")},
	}
	require.NoError(t, store.Suppliers().CreateBatch(context.Background(), list))
	return list
}

func newRecord(supplierID int64, weight string) *entity.Record {
	return &entity.Record{
		SupplierID:     supplierID,
		SequenceLabel:  "01",
		Weight:         decimal.RequireFromString(weight),
		Classification: entity.ClassificationII,
		Attributes:     entity.Attributes{LargeEyes: true, Passed: true},
		Defects:        entity.Defects{Loss20: true},
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
}

func TestSuppliers_CreateListGet(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	seeded := seedSuppliers(t, store)
	assert.Equal(t, int64(1), seeded[0].ID)
	assert.Equal(t, int64(2), seeded[1].ID)

	list, err := store.Suppliers().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Thiên Thành", list[0].Name)
	assert.True(t, decimal.RequireFromString("33.3").Equal(list[1].DefaultWeight))

	got, err := store.Suppliers().GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 14, got.Quota)

	missing, err := store.Suppliers().GetByID(ctx, 9)
	require.NoError(t, err)
	assert.Nil(t, missing)

	n, err := store.Suppliers().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecords_AppendRoundTrip(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	seedSuppliers(t, store)

	rec := newRecord(1, "5.25")
	require.NoError(t, store.Records().Append(ctx, rec))
	assert.Equal(t, int64(1), rec.ID)

	list, err := store.Records().ListBySupplier(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0]
	assert.True(t, decimal.RequireFromString("5.25").Equal(got.Weight))
	assert.Equal(t, entity.ClassificationII, got.Classification)
	assert.Equal(t, rec.Attributes, got.Attributes)
	assert.Equal(t, rec.Defects, got.Defects)
	assert.Equal(t, "01", got.SequenceLabel)
}

func TestRecords_UnknownSupplierRejected(t *testing.T) {
	store, _ := openStore(t)
	seedSuppliers(t, store)

	err := store.Records().Append(context.Background(), newRecord(77, "1"))
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "supplier_id", verr.Field)
}

func TestRecords_PaginationAndCount(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	seedSuppliers(t, store)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Records().Append(ctx, newRecord(1, "2")))
	}
	require.NoError(t, store.Records().Append(ctx, newRecord(2, "3")))

	page, err := store.Records().ListBySupplier(ctx, 1, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(3), page[0].ID)
	assert.Equal(t, int64(4), page[1].ID)

	n, err := store.Records().CountBySupplier(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestRecords_ConcurrentAppendsGetDistinctIDs(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	seedSuppliers(t, store)

	const n = 20
	var mu sync.Mutex
	ids := make(map[int64]bool)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := newRecord(1, "1")
			if err := store.Records().Append(ctx, rec); err == nil {
				mu.Lock()
				ids[rec.ID] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, ids, n)
}

func TestOpen_Reopen_PersistsRecords(t *testing.T) {
	store, path := openStore(t)
	ctx := context.Background()
	seedSuppliers(t, store)
	require.NoError(t, store.Records().Append(ctx, newRecord(1, "4")))
	require.NoError(t, store.Close())

	reopened, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	n, err := reopened.Records().CountBySupplier(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rec := newRecord(1, "4")
	require.NoError(t, reopened.Records().Append(ctx, rec))
	assert.Equal(t, int64(2), rec.ID, "los IDs siguen creciendo tras reabrir")
}
