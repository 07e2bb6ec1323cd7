package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

type supplierDoc struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Plate            string          `json:"plate"`
	Quota            int             `json:"quota"`
	QuotaWeight      decimal.Decimal `json:"quota_weight"`
	DefaultUnitLabel string          `json:"default_unit_label"`
	DefaultWeight    decimal.Decimal `json:"default_weight"`
	CreatedAt        time.Time       `json:"created_at"`
}

// SupplierRepo catálogo de proveedores sobre Badger.
type SupplierRepo struct {
	store *Store
}

// List recorre el prefijo supplier/ (orden por ID).
func (r *SupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	err := r.store.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefixSupplier, PrefetchValues: true, PrefetchSize: 32})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var doc supplierDoc
			if err := it.Item().Value(func(v []byte) error { return json.Unmarshal(v, &doc) }); err != nil {
				return err
			}
			list = append(list, doc.toEntity())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return list, nil
}

// GetByID devuelve nil, nil si no existe.
func (r *SupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	var doc supplierDoc
	err := r.store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(supplierKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error { return json.Unmarshal(v, &doc) })
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return doc.toEntity(), nil
}

// Count número de proveedores (solo llaves).
func (r *SupplierRepo) Count(_ context.Context) (int, error) {
	n, err := countPrefix(r.store.db, prefixSupplier)
	if err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return n, nil
}

// CreateBatch escribe todos los proveedores en una transacción.
func (r *SupplierRepo) CreateBatch(_ context.Context, suppliers []*entity.Supplier) error {
	now := time.Now().UTC()
	ids := make([]int64, len(suppliers))
	for i := range suppliers {
		id, err := nextID(r.store.supplierSeq)
		if err != nil {
			return fmt.Errorf("supplier id: %w", err)
		}
		ids[i] = id
	}
	err := r.store.db.Update(func(txn *badger.Txn) error {
		for i, s := range suppliers {
			doc := supplierDoc{
				ID: ids[i], Name: s.Name, Plate: s.Plate, Quota: s.Quota,
				QuotaWeight: s.QuotaWeight, DefaultUnitLabel: s.DefaultUnitLabel,
				DefaultWeight: s.DefaultWeight, CreatedAt: now,
			}
			value, err := json.Marshal(doc)
			if err != nil {
				return err
			}
			if err := txn.Set(supplierKey(doc.ID), value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert suppliers: %w", err)
	}
	for i, s := range suppliers {
		s.ID = ids[i]
		s.CreatedAt = now
	}
	return nil
}

func (d supplierDoc) toEntity() *entity.Supplier {
	return &entity.Supplier{
		ID: d.ID, Name: d.Name, Plate: d.Plate, Quota: d.Quota,
		QuotaWeight: d.QuotaWeight, DefaultUnitLabel: d.DefaultUnitLabel,
		DefaultWeight: d.DefaultWeight, CreatedAt: d.CreatedAt,
	}
}

func countPrefix(db *badger.DB, prefix []byte) (int, error) {
	n := 0
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: false})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}
