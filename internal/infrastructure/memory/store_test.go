package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/memory"
)

func TestRecordRepository_ConcurrentAppendUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRecordRepository()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := &entity.Record{SupplierID: 1, Weight: decimal.NewFromInt(1), Classification: entity.ClassificationI}
			assert.NoError(t, repo.Append(ctx, rec))
			ids <- rec.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "ID repetido %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	count, err := repo.CountBySupplier(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, n, count)
}

func TestRecordRepository_Paging(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRecordRepository()
	for _, sid := range []int64{1, 2, 1, 1} {
		require.NoError(t, repo.Append(ctx, &entity.Record{SupplierID: sid}))
	}

	all, err := repo.ListBySupplier(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 3, 4}, []int64{all[0].ID, all[1].ID, all[2].ID})

	page, err := repo.ListBySupplier(ctx, 1, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(3), page[0].ID)
}

func TestSupplierRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSupplierRepository()
	require.NoError(t, repo.CreateBatch(ctx, []*entity.Supplier{{Name: "B", Quota: 2}, {Name: "A", Quota: 1}}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].Name, "orden por ID, no por nombre")

	s, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, s)
}
