package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/jhoicas/Pesaje-api/internal/domain"
	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

// RecordRepo log de registros sobre SQLite. AUTOINCREMENT garantiza IDs
// estrictamente crecientes que no se reutilizan.
type RecordRepo struct {
	db *sql.DB
}

// Append inserta el registro; con synchronous=FULL queda en disco al confirmar.
func (r *RecordRepo) Append(ctx context.Context, record *entity.Record) error {
	attrs, err := json.Marshal(record.Attributes)
	if err != nil {
		return fmt.Errorf("marshal attributes: %w", err)
	}
	defects, err := json.Marshal(record.Defects)
	if err != nil {
		return fmt.Errorf("marshal defects: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO records (supplier_id, sequence_label, weight, classification, attributes, defects, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.SupplierID, record.SequenceLabel, record.Weight.String(), string(record.Classification),
		string(attrs), string(defects), record.CreatedAt,
	)
	if err != nil {
		var sqlErr sqlite3.Error
		if errors.As(err, &sqlErr) && sqlErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return domain.NewValidationError("supplier_id", "proveedor inexistente")
		}
		return fmt.Errorf("insert record: %w", err)
	}
	if record.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	return nil
}

// ListBySupplier registros del proveedor en orden de llegada. limit <= 0 = sin límite.
func (r *RecordRepo) ListBySupplier(ctx context.Context, supplierID int64, limit, offset int) ([]*entity.Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, supplier_id, sequence_label, weight, classification, attributes, defects, created_at
		FROM records WHERE supplier_id = ? ORDER BY id LIMIT ? OFFSET ?`,
		supplierID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()
	var list []*entity.Record
	for rows.Next() {
		var rec entity.Record
		var class, attrs, defects string
		if err := rows.Scan(
			&rec.ID, &rec.SupplierID, &rec.SequenceLabel, &rec.Weight, &class,
			&attrs, &defects, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Classification = entity.Classification(class)
		if err := json.Unmarshal([]byte(attrs), &rec.Attributes); err != nil {
			return nil, fmt.Errorf("unmarshal attributes: %w", err)
		}
		if err := json.Unmarshal([]byte(defects), &rec.Defects); err != nil {
			return nil, fmt.Errorf("unmarshal defects: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// CountBySupplier número de registros del proveedor.
func (r *RecordRepo) CountBySupplier(ctx context.Context, supplierID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE supplier_id = ?`, supplierID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}
