package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pesaje-api/internal/domain"
	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

type recordDoc struct {
	ID             int64                 `json:"id"`
	SupplierID     int64                 `json:"supplier_id"`
	SequenceLabel  string                `json:"sequence_label"`
	Weight         decimal.Decimal       `json:"weight"`
	Classification entity.Classification `json:"classification"`
	Attributes     entity.Attributes     `json:"attributes"`
	Defects        entity.Defects        `json:"defects"`
	CreatedAt      time.Time             `json:"created_at"`
}

// RecordRepo log de registros sobre Badger.
type RecordRepo struct {
	store *Store
}

// Append escribe el registro y su entrada de índice en la misma transacción:
// o existen ambos o ninguno.
func (r *RecordRepo) Append(_ context.Context, record *entity.Record) error {
	id, err := nextID(r.store.recordSeq)
	if err != nil {
		return fmt.Errorf("record id: %w", err)
	}
	doc := recordDoc{
		ID: id, SupplierID: record.SupplierID, SequenceLabel: record.SequenceLabel,
		Weight: record.Weight, Classification: record.Classification,
		Attributes: record.Attributes, Defects: record.Defects, CreatedAt: record.CreatedAt,
	}
	value, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	err = r.store.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(supplierKey(record.SupplierID)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return domain.NewValidationError("supplier_id", "proveedor inexistente")
			}
			return err
		}
		if err := txn.Set(recordKey(id), value); err != nil {
			return err
		}
		return txn.Set(indexKey(record.SupplierID, id), nil)
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return verr
		}
		return fmt.Errorf("insert record: %w", err)
	}
	record.ID = id
	return nil
}

// ListBySupplier recorre el índice del proveedor y carga cada registro.
func (r *RecordRepo) ListBySupplier(_ context.Context, supplierID int64, limit, offset int) ([]*entity.Record, error) {
	var list []*entity.Record
	err := r.store.db.View(func(txn *badger.Txn) error {
		prefix := indexPrefix(supplierID)
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: false})
		defer it.Close()
		skipped := 0
		for it.Rewind(); it.Valid(); it.Next() {
			if skipped < offset {
				skipped++
				continue
			}
			if limit > 0 && len(list) >= limit {
				break
			}
			var id int64
			if _, err := fmt.Sscanf(string(it.Item().Key()[len(prefix):]), "%d", &id); err != nil {
				return fmt.Errorf("índice corrupto: %w", err)
			}
			item, err := txn.Get(recordKey(id))
			if err != nil {
				return err
			}
			var doc recordDoc
			if err := item.Value(func(v []byte) error { return json.Unmarshal(v, &doc) }); err != nil {
				return err
			}
			list = append(list, doc.toEntity())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return list, nil
}

// CountBySupplier cuenta las entradas del índice del proveedor.
func (r *RecordRepo) CountBySupplier(_ context.Context, supplierID int64) (int, error) {
	n, err := countPrefix(r.store.db, indexPrefix(supplierID))
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

func (d recordDoc) toEntity() *entity.Record {
	return &entity.Record{
		ID: d.ID, SupplierID: d.SupplierID, SequenceLabel: d.SequenceLabel,
		Weight: d.Weight, Classification: d.Classification,
		Attributes: d.Attributes, Defects: d.Defects, CreatedAt: d.CreatedAt,
	}
}
