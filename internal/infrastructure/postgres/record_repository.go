package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Pesaje-api/internal/domain"
	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

// RecordRepo log de registros sobre PostgreSQL (usable con pool o tx).
// El ID lo asigna BIGSERIAL: único y creciente aun con inserciones concurrentes.
type RecordRepo struct {
	q Querier
}

// NewRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecordRepository(q Querier) *RecordRepo {
	return &RecordRepo{q: q}
}

// Append inserta el registro en una sola sentencia (atómica) y devuelve el ID asignado.
func (r *RecordRepo) Append(ctx context.Context, record *entity.Record) error {
	attrs, err := json.Marshal(record.Attributes)
	if err != nil {
		return fmt.Errorf("marshal attributes: %w", err)
	}
	defects, err := json.Marshal(record.Defects)
	if err != nil {
		return fmt.Errorf("marshal defects: %w", err)
	}
	query := `
		INSERT INTO records (supplier_id, sequence_label, weight, classification, attributes, defects, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err = r.q.QueryRow(ctx, query,
		record.SupplierID, record.SequenceLabel, record.Weight, string(record.Classification),
		attrs, defects, record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("supplier_id", "proveedor inexistente")
		}
		if isCheckViolation(err) {
			return domain.NewValidationError("record", "peso o clasificación fuera de rango")
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// ListBySupplier registros del proveedor en orden de llegada.
func (r *RecordRepo) ListBySupplier(ctx context.Context, supplierID int64, limit, offset int) ([]*entity.Record, error) {
	query := `
		SELECT id, supplier_id, sequence_label, weight, classification, attributes, defects, created_at
		FROM records WHERE supplier_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := r.q.Query(ctx, query, supplierID, lim, offset)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()
	var list []*entity.Record
	for rows.Next() {
		var rec entity.Record
		var class string
		var attrs, defects []byte
		if err := rows.Scan(
			&rec.ID, &rec.SupplierID, &rec.SequenceLabel, &rec.Weight, &class,
			&attrs, &defects, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Classification = entity.Classification(class)
		if err := json.Unmarshal(attrs, &rec.Attributes); err != nil {
			return nil, fmt.Errorf("unmarshal attributes: %w", err)
		}
		if err := json.Unmarshal(defects, &rec.Defects); err != nil {
			return nil, fmt.Errorf("unmarshal defects: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// CountBySupplier número de registros durables del proveedor.
func (r *RecordRepo) CountBySupplier(ctx context.Context, supplierID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM records WHERE supplier_id = $1`, supplierID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}
